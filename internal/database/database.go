package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBPath returns the default path of the settings database
func DBPath() string {
	return filepath.Join("data", "channel-cross.db")
}

// Open ensures the schema exists at dbPath and returns an open handle
func Open(dbPath string) (*sql.DB, error) {
	if err := EnsureSchema(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// EnsureSchema ensures that the settings tables exist. Safe to call repeatedly.
func EnsureSchema(dbPath string) error {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening database to ensure schema: %w", err)
	}
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS crossing_thresholds (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			wind_speed_max REAL NOT NULL,
			cloud_cover_max REAL NOT NULL,
			swell_height_max REAL NOT NULL,
			swell_period_min REAL NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		return fmt.Errorf("creating crossing_thresholds table: %w", err)
	}

	return nil
}
