package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Storage keys. The whole application state lives in four text blobs: three
// JSON-array collections plus the durable session record. Collections are
// always read and rewritten whole; there is no partial-update contract.
const (
	keyProducts = "walkin_db_products"
	keyUsers    = "walkin_db_users"
	keyOrders   = "walkin_db_orders"
	keySession  = "walkin_session_user"
)

type Store struct {
	DB *sql.DB
}

// NewStore opens (creating if needed) the blob table and seeds any missing
// collection: products with the built-in catalog, users and orders empty.
func NewStore(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &Store{DB: db}
	if err := s.initSchema(); err != nil {
		return nil, err
	}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := s.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to create kv schema: %w", err)
	}
	return nil
}

func (s *Store) seed() error {
	seeded, err := json.Marshal(DefaultCatalog())
	if err != nil {
		return err
	}
	defaults := map[string]string{
		keyProducts: string(seeded),
		keyUsers:    "[]",
		keyOrders:   "[]",
	}
	for key, value := range defaults {
		query := `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`
		if _, err := s.DB.Exec(query, key, value); err != nil {
			return fmt.Errorf("failed to seed %s: %w", key, err)
		}
	}
	return nil
}

// readBlob returns the stored text for key, or ("", false) when absent.
func (s *Store) readBlob(key string) (string, bool, error) {
	var value string
	err := s.DB.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) writeBlob(key, value string) error {
	query := `INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err := s.DB.Exec(query, key, value)
	return err
}

func (s *Store) deleteBlob(key string) error {
	_, err := s.DB.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}
