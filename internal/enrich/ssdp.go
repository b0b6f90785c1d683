package enrich

import (
	"bufio"
	"context"
	"net"
	"strings"
	"time"
)

const ssdpSearchRequest = "M-SEARCH * HTTP/1.1\r\n" +
	"HOST: 239.255.255.250:1900\r\n" +
	"MAN: \"ssdp:discover\"\r\n" +
	"MX: 2\r\n" +
	"ST: upnp:rootdevice\r\n" +
	"\r\n"

var ssdpGroupAddr = &net.UDPAddr{IP: net.ParseIP("239.255.255.250"), Port: 1900}

// discoverSSDP broadcasts a UPnP root-device search and collects responder
// identities until the timeout. The SERVER header (or the ST target as a
// fallback) becomes the device name, keyed by responder IP. Empty on any
// failure.
func discoverSSDP(ctx context.Context, timeout time.Duration) map[string]string {
	names := make(map[string]string)

	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero})
	if err != nil {
		return names
	}
	defer conn.Close()

	if _, err := conn.WriteToUDP([]byte(ssdpSearchRequest), ssdpGroupAddr); err != nil {
		return names
	}

	deadline := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	buf := make([]byte, 8192)
	for time.Now().Before(deadline) {
		_ = conn.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
		n, from, err := conn.ReadFromUDP(buf)
		if err != nil {
			continue
		}

		ip := from.IP.String()
		if _, seen := names[ip]; seen {
			continue
		}
		if name := parseSSDPResponse(string(buf[:n])); name != "" {
			names[ip] = name
		}
	}

	return names
}

// parseSSDPResponse pulls a display name out of an SSDP HTTP response.
// SERVER usually carries "OS/ver UPnP/1.0 product/ver"; the product token
// is the most recognizable part.
func parseSSDPResponse(response string) string {
	var server, target string

	scanner := bufio.NewScanner(strings.NewReader(response))
	for scanner.Scan() {
		line := scanner.Text()
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToUpper(strings.TrimSpace(key)) {
		case "SERVER":
			server = value
		case "ST":
			target = value
		}
	}

	if server != "" {
		fields := strings.Fields(server)
		product := fields[len(fields)-1]
		if name, _, found := strings.Cut(product, "/"); found && name != "UPnP" {
			return name
		}
		return product
	}
	if target != "" && target != "upnp:rootdevice" {
		return target
	}
	return ""
}
