package domain

// InterfaceKind classifies the hardware/media type of an interface
type InterfaceKind string

const (
	KindEthernet InterfaceKind = "ethernet"
	KindWiFi     InterfaceKind = "wifi"
	KindLoopback InterfaceKind = "loopback"
	KindOther    InterfaceKind = "other"
)

// OperState is the operational state reported by the OS
type OperState string

const (
	OperUp      OperState = "up"
	OperDown    OperState = "down"
	OperUnknown OperState = "unknown"
)

// Interface represents a local network adapter as enumerated in one run.
// Instances are built by the collector and read-only afterwards.
type Interface struct {
	Name  InterfaceName
	Kind  InterfaceKind
	State OperState
	Addrs []IPAddress
	MAC   *MacAddress
}

// Displayable reports whether the interface should appear in rendered
// output. Loopback stays in the data model but is never shown.
func (i Interface) Displayable() bool {
	return i.Kind != KindLoopback
}
