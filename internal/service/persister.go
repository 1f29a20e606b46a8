package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hance08/tally/internal/model"
)

// Saver writes a snapshot to durable storage.
type Saver interface {
	Save(model.Snapshot) error
}

// SaveFailure reports a background write that did not make it to storage.
type SaveFailure struct {
	Err      error
	At       time.Time
	Accounts int
}

const failureBuffer = 16

// Persister writes snapshots on a background goroutine. Snapshots scheduled
// while a write is in flight coalesce, so only the newest one is written.
// Failed writes are reported on Failures and are not retried.
type Persister struct {
	saver    Saver
	logger   *zap.Logger
	failures chan SaveFailure

	mu        sync.Mutex
	latest    model.Snapshot
	scheduled uint64 // generation of latest
	attempted uint64 // generation of the last write attempt
	progress  chan struct{}

	wake chan struct{}
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

func NewPersister(saver Saver, logger *zap.Logger) *Persister {
	p := &Persister{
		saver:    saver,
		logger:   logger.Named("persist"),
		failures: make(chan SaveFailure, failureBuffer),
		progress: make(chan struct{}),
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go p.run()
	return p
}

// Schedule queues snap for writing and returns immediately.
func (p *Persister) Schedule(snap model.Snapshot) {
	p.mu.Lock()
	p.latest = snap.Clone()
	p.scheduled++
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// Failures delivers write errors. Events are dropped when nobody drains it.
func (p *Persister) Failures() <-chan SaveFailure {
	return p.failures
}

// Flush blocks until every snapshot scheduled before the call was attempted.
func (p *Persister) Flush(ctx context.Context) error {
	p.mu.Lock()
	target := p.scheduled
	p.mu.Unlock()

	for {
		p.mu.Lock()
		if p.attempted >= target {
			p.mu.Unlock()
			return nil
		}
		ch := p.progress
		p.mu.Unlock()

		select {
		case <-ch:
		case <-p.done:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close flushes pending writes and stops the worker.
func (p *Persister) Close(ctx context.Context) error {
	err := p.Flush(ctx)
	p.once.Do(func() { close(p.stop) })
	<-p.done
	return err
}

func (p *Persister) run() {
	defer close(p.done)

	for {
		select {
		case <-p.stop:
			return
		case <-p.wake:
		}

		p.mu.Lock()
		if p.attempted >= p.scheduled {
			p.mu.Unlock()
			continue
		}
		snap, gen := p.latest, p.scheduled
		p.mu.Unlock()

		p.write(snap)

		p.mu.Lock()
		p.attempted = gen
		close(p.progress)
		p.progress = make(chan struct{})
		p.mu.Unlock()
	}
}

func (p *Persister) write(snap model.Snapshot) {
	if err := p.saver.Save(snap); err != nil {
		p.logger.Warn("failed to persist snapshot", zap.Error(err), zap.Int("accounts", len(snap.Accounts)))

		failure := SaveFailure{Err: err, At: time.Now(), Accounts: len(snap.Accounts)}
		select {
		case p.failures <- failure:
		default:
			p.logger.Warn("dropped save failure event, nobody is listening")
		}
		return
	}

	p.logger.Debug("snapshot persisted", zap.Int("accounts", len(snap.Accounts)))
}
