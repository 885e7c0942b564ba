package utils

import (
	"context"
	"time"
)

// Pacer enforces a minimum interval between consecutive calls. It is not
// safe for concurrent use.
type Pacer struct {
	interval time.Duration
	last     time.Time
}

// NewPacer creates a Pacer with the given minimum interval.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Mark records now as the moment of the last paced event.
func (p *Pacer) Mark() {
	p.last = time.Now()
}

// Wait blocks until the interval has elapsed since the last Mark, or until
// ctx is done. Without a prior Mark it waits the full interval.
func (p *Pacer) Wait(ctx context.Context) error {
	remaining := p.interval
	if !p.last.IsZero() {
		remaining -= time.Since(p.last)
	}
	if remaining <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
