// Package domain defines the core domain types for the lanwatch network probe.
//
// This package contains the value objects that represent one observation of
// the local network: interfaces, neighbor entries, and the snapshot that ties
// them together.
//
// # Validated Addressing
//
// InterfaceName, MacAddress, and IPAddress are constructed through Parse
// functions that either return a valid instance or an *InvalidFormatError
// naming the offending field and raw value. Construction is the single
// validation gate: all downstream code operates on already-valid values and
// never re-checks formats.
//
// # Snapshot Model
//
// NetworkSnapshot holds the interfaces and per-interface neighbor lists
// collected in one invocation, in deterministic order (interfaces by name,
// neighbors by IP). ClassifiedSnapshot adds a per-interface Health derived
// from the neighbor states.
//
// # Design Principles
//
// - Immutable value objects where possible
// - No OS queries or external dependencies
// - Pure domain logic without infrastructure concerns
// - All data built fresh each invocation, nothing persisted
package domain
