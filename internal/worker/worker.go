// Package worker runs webhook payload processing off the request path.
// The HTTP handler acknowledges deliveries immediately and hands the body
// to a bounded queue; a single consumer goroutine drains it.
package worker

import (
	"context"
	"log/slog"
	"sync"
)

// Processor handles one notification body.
type Processor interface {
	Process(ctx context.Context, body []byte) error
}

type Pool struct {
	processor Processor
	logger    *slog.Logger

	queue  chan []byte
	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

func NewPool(processor Processor, queueSize int, logger *slog.Logger) *Pool {
	return &Pool{
		processor: processor,
		logger:    logger.With("component", "worker"),
		queue:     make(chan []byte, queueSize),
		done:      make(chan struct{}),
	}
}

// Start launches the consumer goroutine. Processing errors are logged,
// never propagated; the push hub has already been answered.
func (p *Pool) Start(ctx context.Context) {
	go func() {
		defer close(p.done)
		for body := range p.queue {
			if err := p.processor.Process(ctx, body); err != nil {
				p.logger.Error("notification processing failed", "error", err)
			}
		}
	}()
}

// Enqueue hands a payload to the consumer without blocking. When the
// queue is full the payload is dropped; the hub retries undelivered
// notifications on its own schedule.
func (p *Pool) Enqueue(body []byte) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false
	}
	select {
	case p.queue <- body:
		return true
	default:
		p.logger.Warn("queue full, dropping notification", "queue_size", cap(p.queue))
		return false
	}
}

// Stop closes the queue and waits for the consumer to drain it.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()
	<-p.done
}
