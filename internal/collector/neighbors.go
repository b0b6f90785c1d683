package collector

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"lanwatch/internal/domain"
)

// Both neighbor sources are vars so tests can point them at fixtures.
var (
	procNetArpFile = "/proc/net/arp"

	// ip-neigh is used for the IPv6 neighbor cache, which has no procfs table.
	ipNeighCommand = func(ctx context.Context, iface string) ([]byte, error) {
		return exec.CommandContext(ctx, "ip", "-6", "neighbor", "show", "dev", iface).Output()
	}
)

// Neighbors reads the neighbor tables scoped to one interface: the IPv4 ARP
// cache from /proc/net/arp and the IPv6 neighbor cache via ip-neigh. Entries
// without a resolved MAC are retained with a nil MAC. Only failure to open
// both sources is an error; it is non-fatal at the snapshot level.
func Neighbors(ctx context.Context, iface domain.InterfaceName) ([]domain.NeighborEntry, error) {
	var entries []domain.NeighborEntry

	f, arpErr := os.Open(procNetArpFile)
	if arpErr == nil {
		entries = append(entries, parseARPTable(f, iface)...)
		f.Close()
	}

	v6Out, v6Err := ipNeighCommand(ctx, iface.String())
	if v6Err == nil {
		entries = append(entries, parseIPNeigh(v6Out, iface)...)
	}

	if arpErr != nil && v6Err != nil {
		return nil, &CollectionError{Source: "neighbor table for " + iface.String(), Err: arpErr}
	}
	return entries, nil
}

// parseARPTable extracts this interface's entries from /proc/net/arp.
// Format: IP address  HW type  Flags  HW address  Mask  Device
// Flags 0x2 marks a complete entry, 0x0 an unresolved one.
func parseARPTable(r io.Reader, iface domain.InterfaceName) []domain.NeighborEntry {
	var entries []domain.NeighborEntry

	s := bufio.NewScanner(r)
	s.Scan() // skip header
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) < 6 || fields[5] != iface.String() {
			continue
		}

		ip, err := domain.ParseIP(fields[0])
		if err != nil {
			continue
		}

		entry := domain.NeighborEntry{Iface: iface, IP: ip}
		switch fields[2] {
		case "0x2", "0x6":
			entry.State = domain.NeighborReachable
		case "0x0":
			entry.State = domain.NeighborFailed
		default:
			entry.State = domain.NeighborUnknown
		}

		if mac, err := domain.ParseMAC(fields[3]); err == nil && !mac.IsZero() {
			entry.MAC = &mac
		}

		entries = append(entries, entry)
	}

	return entries
}

// parseIPNeigh extracts entries from ip-neigh output, one per line:
//
//	fe80::1 lladdr aa:bb:cc:dd:ee:ff router REACHABLE
//	2001:db8::9 FAILED
//
// NUD state names the mapping does not recognize become unknown entries.
func parseIPNeigh(out []byte, iface domain.InterfaceName) []domain.NeighborEntry {
	var entries []domain.NeighborEntry

	for _, line := range strings.Split(string(out), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		ip, err := domain.ParseIP(fields[0])
		if err != nil {
			continue
		}

		entry := domain.NeighborEntry{
			Iface: iface,
			IP:    ip,
			State: domain.MapNeighborState(fields[len(fields)-1]),
		}
		for i := 1; i < len(fields)-1; i++ {
			if fields[i] == "lladdr" && i+1 < len(fields) {
				if mac, err := domain.ParseMAC(fields[i+1]); err == nil {
					entry.MAC = &mac
				}
				break
			}
		}

		entries = append(entries, entry)
	}

	return entries
}
