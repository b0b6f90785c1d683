package snapshot

import "lanwatch/internal/domain"

// Classify derives a health classification for each interface. Rules are
// evaluated in order, first match wins:
//
//  1. operational state down          -> unreachable
//  2. neighbor collection failed      -> unreachable
//  3. no neighbors                    -> empty
//  4. every neighbor reachable        -> healthy
//  5. anything else                   -> degraded
func Classify(snap *domain.NetworkSnapshot) *domain.ClassifiedSnapshot {
	classified := &domain.ClassifiedSnapshot{
		NetworkSnapshot:   *snap,
		HealthByInterface: make(map[domain.InterfaceName]domain.Health, len(snap.Interfaces)),
	}

	for _, iface := range snap.Interfaces {
		classified.HealthByInterface[iface.Name] = classifyOne(snap, iface)
	}

	return classified
}

func classifyOne(snap *domain.NetworkSnapshot, iface domain.Interface) domain.Health {
	if iface.State == domain.OperDown {
		return domain.HealthUnreachable
	}
	if _, failed := snap.Failed[iface.Name]; failed {
		return domain.HealthUnreachable
	}

	entries := snap.Neighbors[iface.Name]
	if len(entries) == 0 {
		return domain.HealthEmpty
	}

	for _, entry := range entries {
		if entry.State != domain.NeighborReachable {
			return domain.HealthDegraded
		}
	}
	return domain.HealthHealthy
}
