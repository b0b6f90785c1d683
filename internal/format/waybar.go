// Package format renders a classified snapshot into the JSON contract the
// status bar consumes. Rendering is pure: identical input produces
// byte-identical output.
package format

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"
	jsoniter "github.com/json-iterator/go"

	"lanwatch/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Output is the bar contract: one JSON object per invocation. Existing
// fields must never be removed or renamed; consumers treat this shape as
// closed.
type Output struct {
	Text    string   `json:"text"`
	Tooltip string   `json:"tooltip"`
	Alt     string   `json:"alt"`
	Class   []string `json:"class"`
}

// fallbackJSON is emitted when encoding itself fails, so the process always
// produces a well-formed object.
const fallbackJSON = `{"text":"🖧 --","tooltip":"render failed","alt":"error","class":["network","error"]}`

const glyph = "🖧"

// Renderer renders classified snapshots. HiddenPrefixes drops interfaces
// whose names start with any of the prefixes from the rendered output; they
// remain in the data model.
type Renderer struct {
	HiddenPrefixes []string
}

// NewRenderer creates a renderer with the given display exclusions.
func NewRenderer(hiddenPrefixes []string) *Renderer {
	return &Renderer{HiddenPrefixes: hiddenPrefixes}
}

// Pango color spans recognized by the bar renderer. Exactly these three
// tokens: green for healthy, yellow for degraded, gray for empty and
// unreachable.
func healthSpan(h domain.Health) (string, string) {
	switch h {
	case domain.HealthHealthy:
		return "<span color='#00FF00'>", "</span>"
	case domain.HealthDegraded:
		return "<span color='#FFFF00'>", "</span>"
	default:
		return "<span color='#888888'>", "</span>"
	}
}

func colorize(h domain.Health, text string) string {
	start, end := healthSpan(h)
	return start + text + end
}

// Render produces the success output for a classified snapshot.
func (r *Renderer) Render(classified *domain.ClassifiedSnapshot) Output {
	visible := r.visible(classified)
	worst := visible.Worst()
	return Output{
		Text:    fmt.Sprintf("%s %d", glyph, visible.ActiveCount()),
		Tooltip: buildTooltip(visible),
		Alt:     string(worst),
		Class:   []string{"network", string(worst)},
	}
}

// RenderError produces the degraded output used when no snapshot could be
// built at all. The contract shape is identical to a success render.
func RenderError(context string, err error) Output {
	return Output{
		Text:    glyph + " --",
		Tooltip: fmt.Sprintf("%s\n\nError: %v", context, err),
		Alt:     "error",
		Class:   []string{"network", "error"},
	}
}

// Encode marshals an output for stdout. The fallback constant keeps the
// contract intact even if marshalling fails.
func Encode(out Output) string {
	data, err := json.Marshal(out)
	if err != nil {
		return fallbackJSON
	}
	return string(data)
}

// visible returns a copy of the snapshot with hidden interfaces removed,
// so health aggregation and the tooltip agree on what is displayed.
func (r *Renderer) visible(classified *domain.ClassifiedSnapshot) *domain.ClassifiedSnapshot {
	kept := make([]domain.Interface, 0, len(classified.Interfaces))
	for _, iface := range classified.Interfaces {
		if r.hidden(iface.Name) {
			continue
		}
		kept = append(kept, iface)
	}

	filtered := *classified
	filtered.Interfaces = kept
	return &filtered
}

func (r *Renderer) hidden(name domain.InterfaceName) bool {
	for _, prefix := range r.HiddenPrefixes {
		if strings.HasPrefix(name.String(), prefix) {
			return true
		}
	}
	return false
}

func buildTooltip(classified *domain.ClassifiedSnapshot) string {
	displayed := make([]domain.Interface, 0, len(classified.Interfaces))
	for _, iface := range classified.Interfaces {
		if iface.Displayable() {
			displayed = append(displayed, iface)
		}
	}
	if len(displayed) == 0 {
		return "No network interfaces found"
	}

	total := 0
	for _, iface := range displayed {
		total += classified.NeighborCount(iface.Name)
	}

	var lines []string
	lines = append(lines, english.Plural(total, "device", "")+" on "+
		english.Plural(len(displayed), "interface", ""))
	lines = append(lines, "")

	for _, iface := range displayed {
		health := classified.HealthByInterface[iface.Name]
		lines = append(lines, interfaceLine(classified, iface, health))
		lines = append(lines, neighborLines(classified, iface)...)
	}

	if dnsLine := externalDNSLine(&classified.NetworkSnapshot); dnsLine != "" {
		lines = append(lines, "", dnsLine)
	}

	return strings.Join(lines, "\n")
}

func interfaceLine(classified *domain.ClassifiedSnapshot, iface domain.Interface, health domain.Health) string {
	count := classified.NeighborCount(iface.Name)
	line := fmt.Sprintf("%s: %s (%s)", iface.Name, health, english.Plural(count, "device", ""))
	if reason, failed := classified.Failed[iface.Name]; failed {
		line = fmt.Sprintf("%s: %s (%s)", iface.Name, health, reason)
	}
	return colorize(health, line)
}

func neighborLines(classified *domain.ClassifiedSnapshot, iface domain.Interface) []string {
	entries := classified.Neighbors[iface.Name]
	lines := make([]string, 0, len(entries))

	for i, entry := range entries {
		prefix := "  ├─ "
		if i == len(entries)-1 {
			prefix = "  └─ "
		}
		lines = append(lines, prefix+neighborText(&classified.NetworkSnapshot, entry))
	}
	return lines
}

func neighborText(snap *domain.NetworkSnapshot, entry domain.NeighborEntry) string {
	name := entry.Hostname
	if name == "" {
		name = entry.Vendor
	}

	var text string
	if name != "" {
		text = fmt.Sprintf("%s (%s)", name, entry.IP)
	} else {
		text = entry.IP.String()
	}

	if entry.State != domain.NeighborReachable {
		text += " [" + string(entry.State) + "]"
	}

	if snap.IsGateway(entry.IP) {
		if gatewayIsDNS(snap) {
			text += " [Gateway, also DNS]"
		} else {
			text += " [Gateway]"
		}
	}

	return text
}

func gatewayIsDNS(snap *domain.NetworkSnapshot) bool {
	if snap.Gateway == nil {
		return false
	}
	for _, dns := range snap.DNSServers {
		if dns.Compare(*snap.Gateway) == 0 {
			return true
		}
	}
	return false
}

// externalDNSLine lists DNS servers other than the gateway, labelled
// local or external by address range.
func externalDNSLine(snap *domain.NetworkSnapshot) string {
	var parts []string
	for _, dns := range snap.DNSServers {
		if snap.IsGateway(dns) {
			continue
		}
		label := "external"
		if dns.IsPrivate() || dns.IsLoopback() {
			label = "local"
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", dns, label))
	}
	if len(parts) == 0 {
		return ""
	}
	return "DNS: " + strings.Join(parts, ", ")
}
