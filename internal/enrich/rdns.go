package enrich

import (
	"context"
	"net"
	"strings"
	"time"

	"lanwatch/internal/domain"
)

var resolver = &net.Resolver{}

// reverseDNS resolves a PTR name for the address with its own timeout.
// Returns the bare host name, or empty when there is none.
func reverseDNS(ctx context.Context, ip domain.IPAddress, timeout time.Duration) string {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	names, err := resolver.LookupAddr(ctx, ip.String())
	if err != nil || len(names) == 0 {
		return ""
	}

	name := strings.TrimSuffix(names[0], ".")
	// Keep the short name; FQDNs are noise in a tooltip.
	if host, _, found := strings.Cut(name, "."); found {
		return host
	}
	return name
}
