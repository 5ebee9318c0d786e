package storage

import (
	"database/sql"
	"fmt"

	"example/storefront/internal/logger"
)

// SQL persists state blobs in a two-column key-value table, one row per
// key. It works against MySQL in production and SQLite in tests; the
// schema and the REPLACE INTO upsert are valid on both.
type SQL struct {
	db *sql.DB
}

func NewSQL(db *sql.DB) (*SQL, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv_state (
		k VARCHAR(255) PRIMARY KEY,
		v MEDIUMTEXT NOT NULL
	)`)
	if err != nil {
		logger.Log.Errorw("Failed to create kv_state table", "error", err)
		return nil, fmt.Errorf("newSQL: %v", err)
	}

	return &SQL{db: db}, nil
}

func (s *SQL) Get(key string) (string, bool, error) {
	var value string
	row := s.db.QueryRow("SELECT v FROM kv_state WHERE k = ?", key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		logger.Log.Errorw("Failed to read key", "key", key, "error", err)
		return "", false, fmt.Errorf("get %s: %v", key, err)
	}
	return value, true, nil
}

func (s *SQL) Set(key, value string) error {
	if _, err := s.db.Exec("REPLACE INTO kv_state (k, v) VALUES (?, ?)", key, value); err != nil {
		logger.Log.Errorw("Failed to write key", "key", key, "error", err)
		return fmt.Errorf("set %s: %v", key, err)
	}
	return nil
}
