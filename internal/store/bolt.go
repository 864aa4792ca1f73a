// Package store provides data persistence on BoltDB through bolthold.
// It hosts the reconciling content store and the per-user list store.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/timshannon/bolthold"
	bolt "go.etcd.io/bbolt"
)

const (
	dbFileMode = 0600
	dbDirMode  = 0755

	defaultDBFile = "catalog.db"
)

// Open opens (creating if needed) the BoltDB-backed document store.
// If dbPath is empty the default file in the current directory is used.
func Open(dbPath string) (*bolthold.Store, error) {
	if dbPath == "" {
		dbPath = filepath.Join(".", defaultDBFile)
	}

	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, dbDirMode); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// A second process holding the file would otherwise block forever.
	options := &bolthold.Options{
		Options: &bolt.Options{Timeout: 5 * time.Second},
	}

	store, err := bolthold.Open(dbPath, dbFileMode, options)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	return store, nil
}
