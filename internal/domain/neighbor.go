package domain

import "strings"

// NeighborState is a neighbor table entry's reachability as reported by
// the kernel, folded into four states.
type NeighborState string

const (
	NeighborReachable NeighborState = "reachable"
	NeighborStale     NeighborState = "stale"
	NeighborFailed    NeighborState = "failed"
	NeighborUnknown   NeighborState = "unknown"
)

// MapNeighborState folds a source-specific state name (ip-neigh NUD states,
// uppercase or lowercase) into the four-state enum. Names the mapping does
// not recognize become NeighborUnknown, never dropped.
func MapNeighborState(raw string) NeighborState {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "REACHABLE", "PERMANENT", "NOARP":
		return NeighborReachable
	case "STALE", "DELAY", "PROBE":
		return NeighborStale
	case "FAILED", "INCOMPLETE":
		return NeighborFailed
	default:
		return NeighborUnknown
	}
}

// NeighborEntry is one observed device on an interface's segment.
// IP is the entry's identity within an interface; MAC may be absent for
// unresolved entries. Vendor and Hostname are best-effort enrichment and
// empty when unknown.
type NeighborEntry struct {
	Iface    InterfaceName
	IP       IPAddress
	MAC      *MacAddress
	State    NeighborState
	Vendor   string
	Hostname string
}
