package enrich

import (
	"context"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
)

var mdnsGroupAddr = &net.UDPAddr{IP: net.ParseIP("224.0.0.251"), Port: 5353}

// discoverMDNS sends a DNS-SD service enumeration query to the mDNS
// multicast group and harvests hostnames from the A and AAAA records that
// come back within the timeout. The caller's context deadline bounds the
// read loop when it is tighter than the timeout. Returns a map of IP
// literal to bare hostname; empty on any failure.
func discoverMDNS(ctx context.Context, timeout time.Duration) map[string]string {
	names := make(map[string]string)

	conn, err := net.ListenMulticastUDP("udp4", nil, mdnsGroupAddr)
	if err != nil {
		return names
	}
	defer conn.Close()

	_ = conn.SetReadBuffer(1 << 20)

	query := new(dns.Msg)
	query.SetQuestion(dns.Fqdn("_services._dns-sd._udp.local"), dns.TypePTR)
	packed, err := query.Pack()
	if err != nil {
		return names
	}

	// Send twice; mDNS responders drop queries under load.
	_, _ = conn.WriteToUDP(packed, mdnsGroupAddr)
	time.Sleep(50 * time.Millisecond)
	_, _ = conn.WriteToUDP(packed, mdnsGroupAddr)

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	buf := make([]byte, 65536)

	for time.Now().Before(deadline) {
		if ctx.Err() != nil {
			return names
		}
		_ = conn.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
		n, _, err := conn.ReadFromUDP(buf)
		if err != nil {
			continue
		}

		msg := new(dns.Msg)
		if err := msg.Unpack(buf[:n]); err != nil {
			continue
		}

		for _, rr := range append(msg.Answer, msg.Extra...) {
			switch record := rr.(type) {
			case *dns.A:
				names[record.A.String()] = hostFromRecordName(record.Hdr.Name)
			case *dns.AAAA:
				names[record.AAAA.String()] = hostFromRecordName(record.Hdr.Name)
			}
		}
	}

	return names
}

// hostFromRecordName strips the trailing dot and .local suffix, keeping the
// bare machine name.
func hostFromRecordName(name string) string {
	name = strings.TrimSuffix(name, ".")
	name = strings.TrimSuffix(name, ".local")
	return name
}
