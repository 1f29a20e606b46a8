package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/store"
)

var errDiskFull = errors.New("disk full")

// memGateway is an in-memory Gateway that can be told to fail or block.
type memGateway struct {
	mu      sync.Mutex
	saved   []model.Snapshot
	loadErr error
	loaded  *model.Snapshot
	fail    bool
	gate    chan struct{}       // when set, Save waits for a receive
	started chan model.Snapshot // when set, Save reports each call before waiting
}

func (g *memGateway) Load() (model.Snapshot, error) {
	if g.loadErr != nil {
		return model.Snapshot{}, g.loadErr
	}
	if g.loaded == nil {
		return model.Snapshot{}, store.ErrRecordNotFound
	}
	return *g.loaded, nil
}

func (g *memGateway) Save(snap model.Snapshot) error {
	if g.started != nil {
		g.started <- snap
	}
	if g.gate != nil {
		<-g.gate
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.fail {
		return errDiskFull
	}
	g.saved = append(g.saved, snap)
	return nil
}

func (g *memGateway) setFail(fail bool) {
	g.mu.Lock()
	g.fail = fail
	g.mu.Unlock()
}

func (g *memGateway) writes() []model.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]model.Snapshot, len(g.saved))
	copy(out, g.saved)
	return out
}

func (g *memGateway) last(t *testing.T) model.Snapshot {
	t.Helper()
	w := g.writes()
	require.NotEmpty(t, w, "nothing was saved")
	return w[len(w)-1]
}

func newTestService(t *testing.T, gw *memGateway) *Service {
	t.Helper()
	svc := NewService(gw, nil, zaptest.NewLogger(t))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = svc.Close(ctx)
	})
	return svc
}

func flush(t *testing.T, as *AccountService) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, as.Flush(ctx))
}
