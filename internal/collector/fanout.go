package collector

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"lanwatch/internal/domain"
)

// neighborResult holds one interface's lookup outcome.
type neighborResult struct {
	entries []domain.NeighborEntry
	err     error
}

// NeighborLookups issues neighbor reads for all interfaces concurrently and
// returns a lookup function over the gathered results. Concurrency here is
// purely a latency optimization: the snapshot builder re-sorts everything,
// so completion order never leaks into the output.
func NeighborLookups(ctx context.Context, interfaces []domain.Interface) func(domain.InterfaceName) ([]domain.NeighborEntry, error) {
	var mu sync.Mutex
	results := make(map[domain.InterfaceName]neighborResult, len(interfaces))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, iface := range interfaces {
		g.Go(func() error {
			entries, err := Neighbors(ctx, iface.Name)
			mu.Lock()
			results[iface.Name] = neighborResult{entries: entries, err: err}
			mu.Unlock()
			// Per-interface failures are data, not errors; the group only
			// aborts on context cancellation.
			return nil
		})
	}
	_ = g.Wait()

	return func(name domain.InterfaceName) ([]domain.NeighborEntry, error) {
		res, ok := results[name]
		if !ok {
			return nil, &CollectionError{Source: "neighbor table for " + name.String(), Err: ctx.Err()}
		}
		return res.entries, res.err
	}
}
