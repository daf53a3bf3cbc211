package database

import (
	"time"

	bolt "github.com/boltdb/bolt"
)

// OpenFallbackBolt opens (or creates) the local BoltDB file backing the
// degraded-mode store.
//
// Supported env vars:
//   - FALLBACK_DB_PATH (default: clinicadomobile.db)
//
// The open timeout keeps a second process from hanging forever on the file
// lock; a stuck lock means another instance owns the fallback store.
func OpenFallbackBolt() (*bolt.DB, error) {
	path := getenvDefault("FALLBACK_DB_PATH", "clinicadomobile.db")
	return bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
}
