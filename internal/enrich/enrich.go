// Package enrich adds best-effort annotations - hostnames and hardware
// vendors - to neighbor entries. Nothing in here is required for a valid
// render: every source may fail or time out and the snapshot stays usable.
package enrich

import (
	"context"
	"log"
	"time"

	"lanwatch/internal/domain"
)

// Options controls which enrichment sources run and their timeouts.
type Options struct {
	MDNS        bool
	MDNSTimeout time.Duration
	SSDP        bool
	SSDPTimeout time.Duration
	ReverseDNS  bool
	RDNSTimeout time.Duration
	// OUIDatabasePath points at an optional sqlite vendor database.
	// Empty or missing path disables vendor lookup.
	OUIDatabasePath string
}

// Apply annotates the snapshot's neighbor entries in place. Hostname
// sources are applied in priority order: SSDP friendly name, then reverse
// DNS, then mDNS. Lower-priority sources never overwrite a name an earlier
// source already set.
func Apply(ctx context.Context, snap *domain.NetworkSnapshot, opts Options) {
	var mdnsNames map[string]string
	if opts.MDNS {
		mdnsNames = discoverMDNS(ctx, opts.MDNSTimeout)
	}

	var ssdpNames map[string]string
	if opts.SSDP {
		ssdpNames = discoverSSDP(ctx, opts.SSDPTimeout)
	}

	vendors := openVendorDB(opts.OUIDatabasePath)
	if vendors != nil {
		defer vendors.Close()
	}

	for name, entries := range snap.Neighbors {
		for i := range entries {
			entry := &entries[i]

			if ssdpName, ok := ssdpNames[entry.IP.String()]; ok {
				entry.Hostname = ssdpName
			}
			if entry.Hostname == "" && opts.ReverseDNS {
				entry.Hostname = reverseDNS(ctx, entry.IP, opts.RDNSTimeout)
			}
			if entry.Hostname == "" {
				entry.Hostname = mdnsNames[entry.IP.String()]
			}

			if vendors != nil && entry.MAC != nil {
				entry.Vendor = vendors.Lookup(*entry.MAC)
			}
		}
		snap.Neighbors[name] = entries
	}

	if len(mdnsNames) > 0 || len(ssdpNames) > 0 {
		log.Printf("Enrichment: %d mdns names, %d ssdp names", len(mdnsNames), len(ssdpNames))
	}
}
