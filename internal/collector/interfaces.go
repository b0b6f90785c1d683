package collector

import (
	"context"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"

	"lanwatch/internal/domain"
)

// Hook points for tests; production code never reassigns these.
var (
	netInterfaces = net.Interfaces
	sysClassNet   = "/sys/class/net"
)

// ARPHRD hardware types from /sys/class/net/<if>/type.
const (
	arphrdEther    = "1"
	arphrdLoopback = "772"
)

// Interfaces enumerates all local interfaces, including down and loopback
// ones. Deciding what to display is the classifier's and formatter's job,
// not the collector's. Only a failure to read the interface table itself is
// an error; unknown per-interface attributes degrade to Other/Unknown.
func Interfaces(ctx context.Context) ([]domain.Interface, error) {
	sysIfaces, err := netInterfaces()
	if err != nil {
		return nil, &CollectionError{Source: "interface table", Err: err}
	}

	out := make([]domain.Interface, 0, len(sysIfaces))
	for _, sysIface := range sysIfaces {
		if ctx.Err() != nil {
			return nil, &CollectionError{Source: "interface table", Err: ctx.Err()}
		}

		name, err := domain.ParseInterfaceName(sysIface.Name)
		if err != nil {
			// Name is the interface's identity; without it there is
			// nothing valid to report.
			log.Printf("Skipping interface with unusable name: %v", err)
			continue
		}

		iface := domain.Interface{
			Name:  name,
			Kind:  classifyKind(sysIface),
			State: operState(sysIface),
			Addrs: interfaceAddrs(sysIface),
		}
		if mac, err := domain.ParseMAC(sysIface.HardwareAddr.String()); err == nil {
			iface.MAC = &mac
		}

		out = append(out, iface)
	}

	return out, nil
}

// classifyKind derives the interface kind from sysfs hints, falling back to
// the flags the OS handed us. Undeterminable kinds are Other, never omitted.
func classifyKind(iface net.Interface) domain.InterfaceKind {
	if iface.Flags&net.FlagLoopback != 0 {
		return domain.KindLoopback
	}

	// A wireless or phy80211 entry under sysfs marks an 802.11 interface.
	for _, marker := range []string{"wireless", "phy80211"} {
		if _, err := os.Stat(filepath.Join(sysClassNet, iface.Name, marker)); err == nil {
			return domain.KindWiFi
		}
	}

	typeRaw, err := os.ReadFile(filepath.Join(sysClassNet, iface.Name, "type"))
	if err != nil {
		return domain.KindOther
	}
	switch strings.TrimSpace(string(typeRaw)) {
	case arphrdEther:
		return domain.KindEthernet
	case arphrdLoopback:
		return domain.KindLoopback
	default:
		return domain.KindOther
	}
}

// operState prefers the sysfs operstate file and falls back to interface
// flags when sysfs is unreadable.
func operState(iface net.Interface) domain.OperState {
	raw, err := os.ReadFile(filepath.Join(sysClassNet, iface.Name, "operstate"))
	if err == nil {
		switch strings.TrimSpace(string(raw)) {
		case "up":
			return domain.OperUp
		case "down":
			return domain.OperDown
		case "unknown":
			// Loopback and point-to-point interfaces report unknown while
			// carrying traffic; trust the flags for those.
		default:
			return domain.OperUnknown
		}
	}

	if iface.Flags&net.FlagUp != 0 && iface.Flags&net.FlagRunning != 0 {
		return domain.OperUp
	}
	if iface.Flags&net.FlagUp == 0 {
		return domain.OperDown
	}
	return domain.OperUnknown
}

// interfaceAddrs collects the interface's bound addresses, dropping any
// the domain layer rejects.
func interfaceAddrs(iface net.Interface) []domain.IPAddress {
	addrs, err := iface.Addrs()
	if err != nil {
		return nil
	}

	out := make([]domain.IPAddress, 0, len(addrs))
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok {
			continue
		}
		parsed, err := domain.ParseIP(ipnet.IP.String())
		if err != nil {
			log.Printf("Dropping unparseable address on %s: %v", iface.Name, err)
			continue
		}
		out = append(out, parsed)
	}
	return out
}
