package service

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/tally"
)

// AccountService runs every account operation as "mutate the store, then
// persist in the background". It must be used from a single goroutine.
type AccountService struct {
	store     *tally.Store
	saver     Saver
	persister *Persister
	logger    *zap.Logger
}

func NewAccountService(st *tally.Store, saver Saver, logger *zap.Logger) *AccountService {
	return &AccountService{
		store:     st,
		saver:     saver,
		persister: NewPersister(saver, logger),
		logger:    logger.Named("account"),
	}
}

func (as *AccountService) GetAllAccounts() []model.Account {
	return as.store.Accounts()
}

func (as *AccountService) GetAccount(id model.AccountID) (model.Account, bool) {
	return as.store.Account(id)
}

func (as *AccountService) GetCurrentAccount() (model.Account, bool) {
	return as.store.Current()
}

func (as *AccountService) CurrentID() (model.AccountID, bool) {
	return as.store.CurrentID()
}

func (as *AccountService) Total(id model.AccountID) (float64, bool) {
	return as.store.DerivedTotal(id)
}

func (as *AccountService) NextSequence() int64 {
	return as.store.NextSequence()
}

// Resolve maps user input to an account id. Blank input means the current
// account; otherwise ref is tried as an id, a 1-based position and finally a
// case-insensitive name.
func (as *AccountService) Resolve(ref string) (model.AccountID, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return as.store.CurrentID()
	}

	if _, ok := as.store.Account(model.AccountID(ref)); ok {
		return model.AccountID(ref), true
	}

	accounts := as.store.Accounts()

	if pos, err := strconv.Atoi(ref); err == nil && pos >= 1 && pos <= len(accounts) {
		return accounts[pos-1].ID, true
	}

	for _, acc := range accounts {
		if strings.EqualFold(acc.Name, ref) {
			return acc.ID, true
		}
	}

	return "", false
}

// Failures delivers background save errors.
func (as *AccountService) Failures() <-chan SaveFailure {
	return as.persister.Failures()
}

// Flush waits for scheduled background writes.
func (as *AccountService) Flush(ctx context.Context) error {
	return as.persister.Flush(ctx)
}

// Settle flushes background writes and returns the failures reported so far.
func (as *AccountService) Settle(ctx context.Context) ([]SaveFailure, error) {
	err := as.persister.Flush(ctx)

	var failures []SaveFailure
	for {
		select {
		case f := <-as.persister.Failures():
			failures = append(failures, f)
		default:
			return failures, err
		}
	}
}

func (as *AccountService) Close(ctx context.Context) error {
	return as.persister.Close(ctx)
}

func (as *AccountService) persist() {
	as.persister.Schedule(as.store.Snapshot())
}
