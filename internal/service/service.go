package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
	"github.com/hance08/tally/internal/tally"
)

// Gateway is the persistence capability the service needs.
type Gateway interface {
	Load() (model.Snapshot, error)
	Save(model.Snapshot) error
}

type Service struct {
	Account *AccountService
	Config  *config.Config
}

// NewService loads the persisted store through gw and wires the async
// persistence pipeline. Missing or unreadable data starts an empty store.
func NewService(gw Gateway, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		Account: NewAccountService(loadStore(gw, logger), gw, logger),
		Config:  cfg,
	}
}

// Close flushes pending writes and stops the background writer.
func (s *Service) Close(ctx context.Context) error {
	return s.Account.Close(ctx)
}

func loadStore(gw Gateway, logger *zap.Logger) *tally.Store {
	snap, err := gw.Load()
	switch {
	case err == nil:
		st := tally.FromSnapshot(snap)
		logger.Debug("loaded snapshot", zap.Int("accounts", st.Len()), zap.Int64("next_sequence", st.NextSequence()))
		return st
	case errors.Is(err, store.ErrRecordNotFound):
		logger.Info("no saved data, starting empty")
	case errors.Is(err, store.ErrMalformedSnapshot):
		logger.Warn("saved data is malformed, starting empty", zap.Error(err))
	default:
		logger.Warn("failed to load saved data, starting empty", zap.Error(err))
	}
	return tally.New()
}
