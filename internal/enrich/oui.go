package enrich

import (
	"database/sql"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"lanwatch/internal/domain"
)

// vendorDB wraps an optional read-only sqlite database mapping OUI prefixes
// to vendor names. Schema: ouis(prefix TEXT PRIMARY KEY, vendor TEXT).
type vendorDB struct {
	db *sql.DB
}

// openVendorDB opens the vendor database at path. A missing file or an
// unopenable database disables vendor lookup rather than failing the run.
func openVendorDB(path string) *vendorDB {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}

	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		log.Printf("Vendor database unavailable: %v", err)
		return nil
	}
	return &vendorDB{db: db}
}

// Lookup returns the vendor name for the MAC's OUI prefix, or empty when
// the prefix is unknown.
func (v *vendorDB) Lookup(mac domain.MacAddress) string {
	var vendor string
	err := v.db.QueryRow(
		"SELECT vendor FROM ouis WHERE prefix = ?", mac.OUI(),
	).Scan(&vendor)
	if err != nil {
		return ""
	}
	return vendor
}

func (v *vendorDB) Close() error {
	return v.db.Close()
}
