package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/validation"
)

// CreateAccount adds an account, selects it and, when name is not blank,
// renames it.
func (as *AccountService) CreateAccount(name string) model.Account {
	id := as.store.Create()
	if _, ok := validation.NormalizeName(name); ok {
		as.store.Rename(id, name)
	}

	as.logger.Info("account created", zap.String("id", string(id)))
	as.persist()

	acc, _ := as.store.Account(id)
	return acc
}

func (as *AccountService) SelectAccount(id model.AccountID) bool {
	return as.apply(as.store.Select(id), "account selected", id)
}

func (as *AccountService) RenameAccount(id model.AccountID, name string) (model.Account, bool) {
	ok := as.apply(as.store.Rename(id, name), "account renamed", id)
	acc, _ := as.store.Account(id)
	return acc, ok
}

// SetAmount stores the parsed amount. The result carries the warning shown
// to the user when the input had to be coerced.
func (as *AccountService) SetAmount(id model.AccountID, raw string) (validation.Result, bool) {
	res, ok := as.store.SetAmount(id, raw)
	if ok && res.Warning != "" {
		as.logger.Debug("amount coerced", zap.String("id", string(id)), zap.String("input", raw))
	}
	return res, as.apply(ok, "amount updated", id)
}

func (as *AccountService) SetMultiplier(id model.AccountID, raw string) (validation.Result, bool) {
	res, ok := as.store.SetMultiplier(id, raw)
	if ok && res.Warning != "" {
		as.logger.Debug("multiplier coerced", zap.String("id", string(id)), zap.String("input", raw))
	}
	return res, as.apply(ok, "multiplier updated", id)
}

func (as *AccountService) Increment(id model.AccountID) (model.Account, bool) {
	ok := as.apply(as.store.Increment(id), "count incremented", id)
	acc, _ := as.store.Account(id)
	return acc, ok
}

func (as *AccountService) Decrement(id model.AccountID) (model.Account, bool) {
	ok := as.apply(as.store.Decrement(id), "count decremented", id)
	acc, _ := as.store.Account(id)
	return acc, ok
}

func (as *AccountService) ResetCount(id model.AccountID) (model.Account, bool) {
	ok := as.apply(as.store.ResetCount(id), "count reset", id)
	acc, _ := as.store.Account(id)
	return acc, ok
}

func (as *AccountService) DeleteAccount(id model.AccountID) bool {
	return as.apply(as.store.Delete(id), "account deleted", id)
}

// Save writes the current state synchronously, after any pending background
// writes, and returns the storage error.
func (as *AccountService) Save(ctx context.Context) error {
	if err := as.persister.Flush(ctx); err != nil {
		return err
	}
	if err := as.saver.Save(as.store.Snapshot()); err != nil {
		as.logger.Warn("explicit save failed", zap.Error(err))
		return fmt.Errorf("failed to save data: %w", err)
	}
	as.logger.Info("data saved", zap.Int("accounts", as.store.Len()))
	return nil
}

func (as *AccountService) apply(ok bool, msg string, id model.AccountID) bool {
	if !ok {
		as.logger.Debug("ignored operation on unknown account", zap.String("op", msg), zap.String("id", string(id)))
		return false
	}
	as.logger.Debug(msg, zap.String("id", string(id)))
	as.persist()
	return true
}
