// Command lanwatch probes the local network once and prints a Waybar JSON
// object describing the interfaces and the devices visible on each segment.
//
// The process always exits 0: the invoking bar treats a non-zero exit or
// malformed output as a hard widget failure, so every failure mode is
// reported through the JSON content instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"lanwatch/internal/collector"
	"lanwatch/internal/config"
	"lanwatch/internal/domain"
	"lanwatch/internal/enrich"
	"lanwatch/internal/format"
	"lanwatch/internal/snapshot"
)

func main() {
	configPath := flag.String("config", "", "config file path (overrides search)")
	sweep := flag.Bool("sweep", false, "force a ping sweep before reading neighbor tables")
	ouiPath := flag.String("oui", "", "sqlite vendor database path")
	flag.Parse()

	// stdout carries the JSON contract; all logging goes to stderr.
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, path, err := loadConfig(*configPath)
	if err != nil {
		log.Printf("Config unusable, using defaults: %v", err)
		cfg = config.DefaultConfig()
	} else if path != "" {
		log.Printf("Config loaded: %s", path)
	}
	if *sweep {
		cfg.Sweep.Enabled = true
	}
	if *ouiPath != "" {
		cfg.Enrich.OUIDatabase = *ouiPath
	}

	fmt.Println(format.Encode(run(context.Background(), cfg)))
}

func loadConfig(path string) (*config.Config, string, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

// run executes the full pipeline and always returns a well-formed output.
func run(ctx context.Context, cfg *config.Config) format.Output {
	delays := make([]time.Duration, len(cfg.Retry.Delays))
	for i, d := range cfg.Retry.Delays {
		delays[i] = d.Duration()
	}
	snap, err := snapshot.CollectWithRetry(ctx, func(ctx context.Context) (*domain.NetworkSnapshot, error) {
		return collectOnce(ctx, cfg)
	}, delays)
	if err != nil {
		log.Printf("Collection failed: %v", err)
		return format.RenderError("Unable to read network state", err)
	}

	enrich.Apply(ctx, snap, enrich.Options{
		MDNS:            cfg.Enrich.MDNS,
		MDNSTimeout:     cfg.Enrich.MDNSTimeout.Duration(),
		SSDP:            cfg.Enrich.SSDP,
		SSDPTimeout:     cfg.Enrich.SSDPTimeout.Duration(),
		ReverseDNS:      cfg.Enrich.ReverseDNS,
		RDNSTimeout:     cfg.Enrich.RDNSTimeout.Duration(),
		OUIDatabasePath: cfg.Enrich.OUIDatabase,
	})

	renderer := format.NewRenderer(cfg.Display.HiddenPrefixes)
	return renderer.Render(snapshot.Classify(snap))
}

func collectOnce(ctx context.Context, cfg *config.Config) (*domain.NetworkSnapshot, error) {
	interfaces, err := collector.Interfaces(ctx)
	if err != nil {
		return nil, err
	}

	if cfg.Sweep.Enabled {
		collector.Sweep(ctx, interfaces, cfg.Sweep.Timeout.Duration())
	}

	snap := snapshot.Build(interfaces, collector.NeighborLookups(ctx, interfaces))

	if gw, err := collector.DefaultGateway(); err == nil {
		snap.Gateway = gw
	} else {
		log.Printf("Gateway detection failed: %v", err)
	}
	snap.DNSServers = collector.DNSServers()

	return snap, nil
}
