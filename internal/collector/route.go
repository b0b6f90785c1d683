package collector

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"lanwatch/internal/domain"
)

const (
	procNetRouteFile = "/proc/net/route"
	resolvConfFile   = "/etc/resolv.conf"
)

// DefaultGateway finds the default route's gateway in /proc/net/route.
// Returns nil without error when no default route exists.
func DefaultGateway() (*domain.IPAddress, error) {
	data, err := os.ReadFile(procNetRouteFile)
	if err != nil {
		return nil, &CollectionError{Source: "route table", Err: err}
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		// Destination 00000000 marks the default route.
		if fields[1] != "00000000" {
			continue
		}
		gw, err := parseHexIPv4(fields[2])
		if err != nil {
			continue
		}
		return &gw, nil
	}

	return nil, nil
}

// parseHexIPv4 decodes the little-endian hex form used by /proc/net/route,
// e.g. 0101A8C0 -> 192.168.1.1.
func parseHexIPv4(hexStr string) (domain.IPAddress, error) {
	if len(hexStr) != 8 {
		return domain.IPAddress{}, fmt.Errorf("bad hex ip length: %q", hexStr)
	}
	value, err := strconv.ParseUint(hexStr, 16, 32)
	if err != nil {
		return domain.IPAddress{}, fmt.Errorf("bad hex ip %q: %w", hexStr, err)
	}
	return domain.ParseIP(fmt.Sprintf("%d.%d.%d.%d",
		byte(value), byte(value>>8), byte(value>>16), byte(value>>24)))
}

// DNSServers parses the nameserver entries out of /etc/resolv.conf. Lines
// the domain layer rejects are dropped.
func DNSServers() []domain.IPAddress {
	data, err := os.ReadFile(resolvConfFile)
	if err != nil {
		return nil
	}

	var servers []domain.IPAddress
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "nameserver ") {
			continue
		}
		raw := strings.TrimSpace(strings.TrimPrefix(line, "nameserver "))
		if ip, err := domain.ParseIP(raw); err == nil {
			servers = append(servers, ip)
		}
	}
	return servers
}
