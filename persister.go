package numfmt

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultPersistTimeout = 5 * time.Second

// persister writes preference changes in the background. Pending writes are
// coalesced per kind, so only the latest value of each preference is saved.
type persister struct {
	bridge  *PreferenceBridge
	logger  *zap.Logger
	timeout time.Duration

	mu      sync.Mutex
	pending map[PreferenceKind]string
	order   []PreferenceKind
	busy    bool
	closed  bool
	waiters []chan struct{}

	wake    chan struct{}
	quit    chan struct{}
	stopped chan struct{}
}

func newPersister(bridge *PreferenceBridge, logger *zap.Logger, timeout time.Duration) *persister {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultPersistTimeout
	}

	p := &persister{
		bridge:  bridge,
		logger:  logger,
		timeout: timeout,
		pending: make(map[PreferenceKind]string, 2),
		wake:    make(chan struct{}, 1),
		quit:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go p.run()
	return p
}

// enqueue schedules a write and returns immediately.
func (p *persister) enqueue(kind PreferenceKind, value string) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Warn("preference write after close dropped",
			zap.String("kind", string(kind)),
			zap.String("value", value))
		return
	}
	if _, queued := p.pending[kind]; !queued {
		p.order = append(p.order, kind)
	}
	p.pending[kind] = value
	p.mu.Unlock()

	select {
	case p.wake <- struct{}{}:
	default:
	}
}

// flush blocks until every write enqueued so far has been attempted.
func (p *persister) flush(ctx context.Context) error {
	p.mu.Lock()
	if len(p.order) == 0 && !p.busy {
		p.mu.Unlock()
		return nil
	}
	done := make(chan struct{})
	p.waiters = append(p.waiters, done)
	p.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close drains pending writes and stops the worker.
func (p *persister) close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	close(p.quit)

	select {
	case <-p.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *persister) run() {
	defer close(p.stopped)

	for {
		select {
		case <-p.wake:
			p.drain()
		case <-p.quit:
			p.drain()
			return
		}
	}
}

func (p *persister) drain() {
	for {
		p.mu.Lock()
		if len(p.order) == 0 {
			p.busy = false
			waiters := p.waiters
			p.waiters = nil
			p.mu.Unlock()

			for _, w := range waiters {
				close(w)
			}
			return
		}

		kind := p.order[0]
		p.order = p.order[1:]
		value := p.pending[kind]
		delete(p.pending, kind)
		p.busy = true
		p.mu.Unlock()

		p.write(kind, value)
	}
}

func (p *persister) write(kind PreferenceKind, value string) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if err := p.bridge.Save(ctx, kind, value); err != nil {
		p.logger.Warn("preference persistence failed",
			zap.String("kind", string(kind)),
			zap.String("value", value),
			zap.Error(err))
		return
	}

	p.logger.Debug("preference persisted",
		zap.String("kind", string(kind)),
		zap.String("value", value))
}
