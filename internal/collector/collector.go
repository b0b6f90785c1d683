// Package collector reads interface and neighbor data from the running
// system. All queries are read-only snapshots copied out of OS tables; the
// collector never mutates network state beyond the optional ping sweep used
// to warm the kernel neighbor table.
package collector

import "fmt"

// CollectionError reports that a whole query channel could not be opened,
// e.g. the interface table is unreadable or an interface has no neighbor
// subsystem. Partial failures inside a readable source degrade individual
// attributes instead.
type CollectionError struct {
	Source string
	Err    error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Source, e.Err)
}

func (e *CollectionError) Unwrap() error { return e.Err }
