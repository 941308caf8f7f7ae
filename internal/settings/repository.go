// Package settings persists the user's last crossing thresholds so the next
// run starts where the previous one left off. Forecasts are never stored.
package settings

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ngmaloney/channel-cross/internal/database"
	"github.com/ngmaloney/channel-cross/internal/models"
)

// Repository handles persistence for crossing thresholds
type Repository struct {
	dbPath string
}

// NewRepository creates a repository backed by the sqlite file at dbPath
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// SaveThresholds stores th, replacing any previous value
func (r *Repository) SaveThresholds(th models.CrossingThresholds) error {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	query := `
		INSERT INTO crossing_thresholds (id, wind_speed_max, cloud_cover_max, swell_height_max, swell_period_min, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			wind_speed_max = excluded.wind_speed_max,
			cloud_cover_max = excluded.cloud_cover_max,
			swell_height_max = excluded.swell_height_max,
			swell_period_min = excluded.swell_period_min,
			updated_at = excluded.updated_at
	`

	_, err = db.Exec(query,
		th.WindSpeedMax,
		th.CloudCoverMax,
		th.SwellHeightMax,
		th.SwellPeriodMin,
		time.Now(),
	)
	if err != nil {
		return fmt.Errorf("saving thresholds: %w", err)
	}

	return nil
}

// LoadThresholds returns the saved thresholds. ok is false when nothing has
// been saved yet.
func (r *Repository) LoadThresholds() (th models.CrossingThresholds, ok bool, err error) {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return th, false, err
	}
	defer db.Close()

	err = db.QueryRow(
		"SELECT wind_speed_max, cloud_cover_max, swell_height_max, swell_period_min FROM crossing_thresholds WHERE id = 1",
	).Scan(&th.WindSpeedMax, &th.CloudCoverMax, &th.SwellHeightMax, &th.SwellPeriodMin)

	if errors.Is(err, sql.ErrNoRows) {
		return models.CrossingThresholds{}, false, nil
	}
	if err != nil {
		return models.CrossingThresholds{}, false, fmt.Errorf("loading thresholds: %w", err)
	}

	return th, true, nil
}

// Reset removes the saved thresholds
func (r *Repository) Reset() error {
	db, err := database.Open(r.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM crossing_thresholds"); err != nil {
		return fmt.Errorf("resetting thresholds: %w", err)
	}
	return nil
}
