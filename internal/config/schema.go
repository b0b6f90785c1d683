package config

import "time"

// Config is the root configuration structure
type Config struct {
	Version int           `yaml:"version"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Enrich  EnrichConfig  `yaml:"enrich"`
	Retry   RetryConfig   `yaml:"retry"`
	Display DisplayConfig `yaml:"display"`
}

// SweepConfig controls the ping sweep that warms the neighbor table
type SweepConfig struct {
	Enabled bool     `yaml:"enabled"`
	Timeout Duration `yaml:"timeout"`
}

// EnrichConfig controls best-effort hostname and vendor enrichment
type EnrichConfig struct {
	MDNS        bool     `yaml:"mdns"`
	MDNSTimeout Duration `yaml:"mdns_timeout"`
	SSDP        bool     `yaml:"ssdp"`
	SSDPTimeout Duration `yaml:"ssdp_timeout"`
	ReverseDNS  bool     `yaml:"reverse_dns"`
	RDNSTimeout Duration `yaml:"rdns_timeout"`
	// OUIDatabase is an optional sqlite vendor database; empty disables
	// vendor lookup.
	OUIDatabase string `yaml:"oui_database"`
}

// RetryConfig controls re-collection while the snapshot is empty. Delays
// are applied in order; an empty list means a single attempt.
type RetryConfig struct {
	Delays []Duration `yaml:"delays"`
}

// DisplayConfig controls what the formatter shows
type DisplayConfig struct {
	// HiddenPrefixes drops interfaces whose names begin with any of these
	// from the rendered output (they stay in the data model).
	HiddenPrefixes []string `yaml:"hidden_prefixes"`
}

// DefaultConfig returns sensible defaults for a new installation
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Sweep.Timeout == 0 {
		c.Sweep.Timeout = Duration(10 * time.Second)
	}
	if c.Enrich.MDNSTimeout == 0 {
		c.Enrich.MDNSTimeout = Duration(3 * time.Second)
	}
	if c.Enrich.SSDPTimeout == 0 {
		c.Enrich.SSDPTimeout = Duration(2 * time.Second)
	}
	if c.Enrich.RDNSTimeout == 0 {
		c.Enrich.RDNSTimeout = Duration(500 * time.Millisecond)
	}
	if c.Retry.Delays == nil {
		c.Retry.Delays = []Duration{
			Duration(1 * time.Second),
			Duration(2 * time.Second),
			Duration(4 * time.Second),
			Duration(8 * time.Second),
		}
	}
	if c.Display.HiddenPrefixes == nil {
		c.Display.HiddenPrefixes = []string{"veth", "docker", "br-", "cni", "flannel"}
	}
}

// Duration wraps time.Duration for YAML unmarshaling
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Duration returns the underlying time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}
