// Package snapshot merges collector output into a validated NetworkSnapshot
// and classifies per-interface health. Both passes are pure: no OS queries,
// fully deterministic given their input.
package snapshot

import (
	"sort"

	"lanwatch/internal/domain"
)

// NeighborLookup returns the neighbor entries observed on one interface,
// or an error when the neighbor source for that interface could not be read.
type NeighborLookup func(domain.InterfaceName) ([]domain.NeighborEntry, error)

// Build merges enumerated interfaces with per-interface neighbor lookups.
// One interface's lookup failure never aborts the snapshot: the interface
// is kept with an empty neighbor list and the failure recorded in Failed,
// which the classifier turns into an Unreachable health.
func Build(interfaces []domain.Interface, lookup NeighborLookup) *domain.NetworkSnapshot {
	sorted := make([]domain.Interface, len(interfaces))
	copy(sorted, interfaces)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name.String() < sorted[j].Name.String()
	})

	snap := &domain.NetworkSnapshot{
		Interfaces: sorted,
		Neighbors:  make(map[domain.InterfaceName][]domain.NeighborEntry, len(sorted)),
		Failed:     make(map[domain.InterfaceName]string),
	}

	for _, iface := range sorted {
		entries, err := lookup(iface.Name)
		if err != nil {
			snap.Neighbors[iface.Name] = nil
			snap.Failed[iface.Name] = err.Error()
			continue
		}
		snap.Neighbors[iface.Name] = normalize(entries)
	}

	return snap
}

// normalize deduplicates entries by IP, keeping the most recently observed
// (last) entry, then sorts by IP.
func normalize(entries []domain.NeighborEntry) []domain.NeighborEntry {
	byIP := make(map[string]domain.NeighborEntry, len(entries))
	for _, entry := range entries {
		byIP[entry.IP.String()] = entry
	}

	out := make([]domain.NeighborEntry, 0, len(byIP))
	for _, entry := range byIP {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].IP.Compare(out[j].IP) < 0
	})
	return out
}
