package app

import (
	"context"
	"io/fs"
	"strings"
	"time"

	"github.com/hance08/tally/internal/config"
	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/service"
)

// Loader opens the App on first use, so commands that fail flag parsing
// never touch storage.
type Loader struct {
	Config     *config.Config
	Migrations fs.FS

	app     *App
	cleanup func()
}

func NewLoader(migrations fs.FS) *Loader {
	return &Loader{Config: config.NewDefault(), Migrations: migrations}
}

func (l *Loader) App() (*App, error) {
	if l.app != nil {
		return l.app, nil
	}

	a, cleanup, err := NewApp(l.Config, l.Migrations)
	if err != nil {
		return nil, err
	}
	l.app, l.cleanup = a, cleanup
	return a, nil
}

// Close flushes and closes the App if it was opened.
func (l *Loader) Close() {
	if l.cleanup != nil {
		l.cleanup()
		l.cleanup = nil
	}
	l.app = nil
}

func (a *App) Accounts() *service.AccountService {
	return a.Service.Account
}

// Target resolves the account a command should act on. An empty ref means
// the current account.
func (a *App) Target(ref string) (model.AccountID, bool) {
	return a.Service.Account.Resolve(strings.TrimSpace(ref))
}

// Settle waits for background writes and returns the failures to report.
func (a *App) Settle() []service.SaveFailure {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	failures, err := a.Service.Account.Settle(ctx)
	if err != nil {
		failures = append(failures, service.SaveFailure{Err: err, At: time.Now()})
	}
	return failures
}
