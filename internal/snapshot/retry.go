package snapshot

import (
	"context"
	"log"
	"time"

	"lanwatch/internal/domain"
)

// CollectFunc produces one snapshot attempt.
type CollectFunc func(context.Context) (*domain.NetworkSnapshot, error)

// CollectWithRetry runs collect, re-running with backoff while the neighbor
// tables are still empty (they fill slowly after a sweep or a fresh boot).
// The number of attempts is len(delays)+1. A collection error aborts
// immediately; the last attempt's snapshot is returned regardless of how
// many devices it found. Context cancellation during a backoff returns the
// most recent snapshot.
func CollectWithRetry(ctx context.Context, collect CollectFunc, delays []time.Duration) (*domain.NetworkSnapshot, error) {
	attempts := len(delays) + 1

	for attempt := 0; ; attempt++ {
		snap, err := collect(ctx)
		if err != nil {
			return nil, err
		}
		if snap.TotalNeighbors() > 0 || attempt == attempts-1 {
			return snap, nil
		}

		delay := delays[attempt]
		log.Printf("No devices visible yet, retrying in %v (attempt %d/%d)",
			delay, attempt+1, attempts)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return snap, nil
		}
	}
}
