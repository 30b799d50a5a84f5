// Package cache stores compile artifacts in a single-file SQLite
// database keyed by a content hash of the inputs, so unchanged payloads
// skip the assembler entirely.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// ErrMiss indicates no artifact is cached under the requested key.
var ErrMiss = errors.New("cache miss")

// schemaVersion participates in cache keys so a format change never
// serves stale artifacts.
const schemaVersion = 1

// Cache is a SQLite-backed artifact store. Safe for use from one process;
// the busy timeout covers concurrent builds sharing a cache file.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS artifacts (
		key TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		created_at INTEGER NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating artifacts table: %w", err)
	}

	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key derives the cache key for a runtime payload assembled under the
// given shrink budget.
func Key(runtime []byte, budget int) string {
	h := sha256.New()
	var header [16]byte
	binary.BigEndian.PutUint64(header[0:8], uint64(schemaVersion))
	binary.BigEndian.PutUint64(header[8:16], uint64(int64(budget)))
	h.Write(header[:])
	h.Write(runtime)
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the artifact bytes stored under key, or ErrMiss.
func (c *Cache) Get(key string) ([]byte, error) {
	var data []byte
	err := c.db.QueryRow(`SELECT data FROM artifacts WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, ErrMiss
	} else if err != nil {
		return nil, fmt.Errorf("querying cache: %w", err)
	}
	return data, nil
}

// Put stores artifact bytes under key, replacing any previous entry.
func (c *Cache) Put(key string, data []byte) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO artifacts (key, data, created_at) VALUES (?, ?, ?)`,
		key, data, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("storing cache entry: %w", err)
	}
	return nil
}
