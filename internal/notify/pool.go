package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Pool runs a fixed number of dispatch workers over a bounded queue.
// Submit never blocks the caller: when the queue is full the notice is
// dropped with a warning, matching the fire-and-forget contract of
// booking side effects.
type Pool struct {
	d       *Dispatcher
	queue   chan Notice
	workers int
	log     *slog.Logger

	wg       sync.WaitGroup
	stopOnce sync.Once
}

func NewPool(d *Dispatcher, workers, queueSize int, log *slog.Logger) *Pool {
	if workers < 1 {
		workers = 2
	}
	if queueSize < 1 {
		queueSize = 64
	}
	return &Pool{
		d:       d,
		queue:   make(chan Notice, queueSize),
		workers: workers,
		log:     log,
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for n := range p.queue {
		if err := p.d.Dispatch(context.Background(), n); err != nil {
			p.log.Warn("notify: dispatch failed",
				"channel", n.Channel,
				"user_id", n.UserID,
				"err", err,
			)
		}
	}
}

// Submit enqueues a notice. Returns false if the queue is full and the
// notice was dropped.
func (p *Pool) Submit(n Notice) bool {
	select {
	case p.queue <- n:
		return true
	default:
		p.log.Warn("notify: queue full, dropping notice",
			"channel", n.Channel,
			"user_id", n.UserID,
		)
		return false
	}
}

// Stop closes the queue and waits for in-flight dispatches, or gives up
// when ctx expires.
func (p *Pool) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.queue) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
