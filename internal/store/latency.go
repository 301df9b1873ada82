package store

import (
	"context"
	"time"
)

// Latency is the presentational delay applied before each operation completes.
// It carries no retry or timeout meaning.
type Latency struct {
	List   time.Duration
	Get    time.Duration
	Create time.Duration
	Apply  time.Duration
}

// DefaultLatency mirrors the response times of the hosted board.
func DefaultLatency() Latency {
	return Latency{
		List:   500 * time.Millisecond,
		Get:    300 * time.Millisecond,
		Create: 800 * time.Millisecond,
		Apply:  1000 * time.Millisecond,
	}
}

// NoLatency disables every delay.
func NoLatency() Latency {
	return Latency{}
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
