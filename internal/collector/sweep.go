package collector

import (
	"context"
	"log"
	"time"

	nmap "github.com/Ullaakut/nmap/v3"

	"lanwatch/internal/domain"
)

// Sweep ping-scans each unique /24 reachable through the given interfaces so
// the kernel neighbor table is populated before it is read. Best effort: any
// failure is logged and swallowed, the snapshot is built from whatever the
// tables already contain.
func Sweep(ctx context.Context, interfaces []domain.Interface, timeout time.Duration) {
	targets := sweepTargets(interfaces)
	if len(targets) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	scanner, err := nmap.NewScanner(
		ctx,
		nmap.WithTargets(targets...),
		nmap.WithPingScan(),
	)
	if err != nil {
		log.Printf("Sweep: scanner unavailable: %v", err)
		return
	}

	result, warnings, err := scanner.Run()
	if err != nil {
		log.Printf("Sweep: scan failed: %v", err)
		return
	}
	if warnings != nil && len(*warnings) > 0 {
		log.Printf("Sweep: warnings: %v", *warnings)
	}
	if result != nil {
		log.Printf("Sweep: %d hosts answered across %v", len(result.Hosts), targets)
	}
}

// sweepTargets returns the unique /24 prefixes of the interfaces' private
// IPv4 addresses. Loopback and public ranges are never swept.
func sweepTargets(interfaces []domain.Interface) []string {
	seen := make(map[string]struct{})
	var targets []string

	for _, iface := range interfaces {
		if iface.Kind == domain.KindLoopback || iface.State != domain.OperUp {
			continue
		}
		for _, addr := range iface.Addrs {
			if !addr.Is4() || addr.IsLoopback() || !addr.IsPrivate() {
				continue
			}
			prefix, err := addr.Prefix(24)
			if err != nil {
				continue
			}
			cidr := prefix.String()
			if _, ok := seen[cidr]; ok {
				continue
			}
			seen[cidr] = struct{}{}
			targets = append(targets, cidr)
		}
	}

	return targets
}
