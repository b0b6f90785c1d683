package domain

// NetworkSnapshot is the full set of interfaces and neighbor entries
// collected in one invocation. Interfaces are sorted by name and each
// neighbor list by IP, so identical system state renders identically.
//
// Invariant: every key of Neighbors and Failed corresponds to an entry in
// Interfaces. Neighbors observed on interfaces the system could not
// enumerate are dropped, never fabricated.
type NetworkSnapshot struct {
	Interfaces []Interface
	Neighbors  map[InterfaceName][]NeighborEntry
	// Failed records per-interface neighbor collection failures. An entry
	// here forces the interface's health to Unreachable.
	Failed map[InterfaceName]string

	Gateway    *IPAddress
	DNSServers []IPAddress
}

// NeighborCount returns the number of neighbor entries for an interface.
func (s *NetworkSnapshot) NeighborCount(name InterfaceName) int {
	return len(s.Neighbors[name])
}

// TotalNeighbors returns the number of neighbor entries across all
// interfaces.
func (s *NetworkSnapshot) TotalNeighbors() int {
	total := 0
	for _, entries := range s.Neighbors {
		total += len(entries)
	}
	return total
}

// IsGateway reports whether ip is the default gateway.
func (s *NetworkSnapshot) IsGateway(ip IPAddress) bool {
	return s.Gateway != nil && s.Gateway.Compare(ip) == 0
}

// Health summarizes the state of an interface's neighbor entries.
type Health string

const (
	HealthHealthy     Health = "healthy"
	HealthDegraded    Health = "degraded"
	HealthEmpty       Health = "empty"
	HealthUnreachable Health = "unreachable"
)

// severity orders healths from best to worst for aggregation.
var severity = map[Health]int{
	HealthHealthy:     0,
	HealthDegraded:    1,
	HealthEmpty:       2,
	HealthUnreachable: 3,
}

// Worse returns the worse of two healths.
func (h Health) Worse(other Health) Health {
	if severity[other] > severity[h] {
		return other
	}
	return h
}

// ClassifiedSnapshot is a NetworkSnapshot annotated with a per-interface
// health classification.
type ClassifiedSnapshot struct {
	NetworkSnapshot
	HealthByInterface map[InterfaceName]Health
}

// Worst returns the worst health across displayable interfaces. With no
// displayable interfaces it reports HealthEmpty.
func (c *ClassifiedSnapshot) Worst() Health {
	worst := HealthHealthy
	seen := false
	for _, iface := range c.Interfaces {
		if !iface.Displayable() {
			continue
		}
		seen = true
		worst = worst.Worse(c.HealthByInterface[iface.Name])
	}
	if !seen {
		return HealthEmpty
	}
	return worst
}

// ActiveCount returns the number of displayable interfaces whose health is
// Healthy or Degraded, i.e. interfaces with at least one live device.
func (c *ClassifiedSnapshot) ActiveCount() int {
	count := 0
	for _, iface := range c.Interfaces {
		if !iface.Displayable() {
			continue
		}
		switch c.HealthByInterface[iface.Name] {
		case HealthHealthy, HealthDegraded:
			count++
		}
	}
	return count
}
