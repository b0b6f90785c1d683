package domain

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"net/netip"
	"strings"
)

// InvalidFormatError reports a raw value that failed domain validation.
// The offending field and value are preserved so callers can log exactly
// what the OS handed them.
type InvalidFormatError struct {
	Field string
	Value string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// InterfaceName is a validated network interface name (e.g. "eth0", "wlan0").
type InterfaceName struct {
	name string
}

// Linux caps interface names at IFNAMSIZ-1 bytes.
const maxInterfaceNameLen = 15

// ParseInterfaceName validates a raw interface name from the OS.
func ParseInterfaceName(raw string) (InterfaceName, error) {
	if raw == "" || len(raw) > maxInterfaceNameLen {
		return InterfaceName{}, &InvalidFormatError{Field: "interface name", Value: raw}
	}
	if strings.ContainsAny(raw, " \t\n/") {
		return InterfaceName{}, &InvalidFormatError{Field: "interface name", Value: raw}
	}
	return InterfaceName{name: raw}, nil
}

func (n InterfaceName) String() string { return n.name }

// IsZero reports whether the name is the uninitialized zero value.
func (n InterfaceName) IsZero() bool { return n.name == "" }

// MacAddress is a validated 48-bit hardware address. The canonical textual
// form is lowercase colon-separated hex.
type MacAddress struct {
	octets [6]byte
}

// ParseMAC validates a raw MAC address string. Colon and dash separators
// are accepted; EUI-64 and other lengths are rejected.
func ParseMAC(raw string) (MacAddress, error) {
	normalized := strings.ToLower(strings.ReplaceAll(raw, "-", ":"))
	parts := strings.Split(normalized, ":")
	if len(parts) != 6 {
		return MacAddress{}, &InvalidFormatError{Field: "mac address", Value: raw}
	}

	var mac MacAddress
	for i, part := range parts {
		if len(part) != 2 {
			return MacAddress{}, &InvalidFormatError{Field: "mac address", Value: raw}
		}
		b, err := hex.DecodeString(part)
		if err != nil {
			return MacAddress{}, &InvalidFormatError{Field: "mac address", Value: raw}
		}
		mac.octets[i] = b[0]
	}
	return mac, nil
}

func (m MacAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		m.octets[0], m.octets[1], m.octets[2], m.octets[3], m.octets[4], m.octets[5])
}

// OUI returns the first three octets as uppercase hex without separators,
// the key format used by vendor lookup databases.
func (m MacAddress) OUI() string {
	return strings.ToUpper(hex.EncodeToString(m.octets[:3]))
}

// Compare orders MAC addresses byte-wise.
func (m MacAddress) Compare(other MacAddress) int {
	return bytes.Compare(m.octets[:], other.octets[:])
}

// IsZero reports whether all octets are zero. /proc/net/arp uses
// 00:00:00:00:00:00 for incomplete entries.
func (m MacAddress) IsZero() bool {
	return m.octets == [6]byte{}
}

// IPAddress is a validated unicast IP address, either IPv4 or IPv6.
// Ordering places all IPv4 addresses before IPv6, numeric within a family.
type IPAddress struct {
	addr netip.Addr
}

// ParseIP validates a raw IP literal. IPv4-mapped IPv6 forms are unmapped
// so that the same address always compares and renders identically.
func ParseIP(raw string) (IPAddress, error) {
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return IPAddress{}, &InvalidFormatError{Field: "ip address", Value: raw}
	}
	return IPAddress{addr: addr.Unmap()}, nil
}

func (ip IPAddress) String() string { return ip.addr.String() }

// Is4 reports whether the address is IPv4.
func (ip IPAddress) Is4() bool { return ip.addr.Is4() }

// IsLoopback reports whether the address is a loopback address.
func (ip IPAddress) IsLoopback() bool { return ip.addr.IsLoopback() }

// IsPrivate reports whether the address is in RFC 1918 / ULA space.
func (ip IPAddress) IsPrivate() bool { return ip.addr.IsPrivate() }

// Compare orders addresses with IPv4 before IPv6, numeric within a family.
func (ip IPAddress) Compare(other IPAddress) int {
	return ip.addr.Compare(other.addr)
}

// Prefix returns the containing prefix with the given mask length.
func (ip IPAddress) Prefix(bits int) (netip.Prefix, error) {
	return ip.addr.Prefix(bits)
}

// IsZero reports whether the address is the uninitialized zero value.
func (ip IPAddress) IsZero() bool { return !ip.addr.IsValid() }
