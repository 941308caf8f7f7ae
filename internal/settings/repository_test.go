package settings

import (
	"path/filepath"
	"testing"

	"github.com/ngmaloney/channel-cross/internal/models"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(filepath.Join(t.TempDir(), "settings.db"))
}

func TestRepository_LoadEmpty(t *testing.T) {
	repo := newTestRepository(t)

	_, ok, err := repo.LoadThresholds()
	if err != nil {
		t.Fatalf("LoadThresholds() error = %v", err)
	}
	if ok {
		t.Error("LoadThresholds() ok = true on an empty database")
	}
}

func TestRepository_SaveAndLoad(t *testing.T) {
	repo := newTestRepository(t)

	want := models.CrossingThresholds{WindSpeedMax: 15, CloudCoverMax: 60, SwellHeightMax: 4.5, SwellPeriodMin: 10}
	if err := repo.SaveThresholds(want); err != nil {
		t.Fatalf("SaveThresholds() error = %v", err)
	}

	got, ok, err := repo.LoadThresholds()
	if err != nil {
		t.Fatalf("LoadThresholds() error = %v", err)
	}
	if !ok {
		t.Fatal("LoadThresholds() ok = false after save")
	}
	if got != want {
		t.Errorf("LoadThresholds() = %+v, want %+v", got, want)
	}
}

func TestRepository_SaveOverwrites(t *testing.T) {
	repo := newTestRepository(t)

	first := models.DefaultThresholds()
	second := models.CrossingThresholds{WindSpeedMax: 20, CloudCoverMax: 100, SwellHeightMax: 6, SwellPeriodMin: 7}

	if err := repo.SaveThresholds(first); err != nil {
		t.Fatalf("first SaveThresholds() error = %v", err)
	}
	if err := repo.SaveThresholds(second); err != nil {
		t.Fatalf("second SaveThresholds() error = %v", err)
	}

	got, _, err := repo.LoadThresholds()
	if err != nil {
		t.Fatalf("LoadThresholds() error = %v", err)
	}
	if got != second {
		t.Errorf("LoadThresholds() = %+v, want %+v", got, second)
	}
}

func TestRepository_PersistsAcrossInstances(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "settings.db")
	want := models.CrossingThresholds{WindSpeedMax: 9, CloudCoverMax: 30, SwellHeightMax: 2, SwellPeriodMin: 12}

	if err := NewRepository(dbPath).SaveThresholds(want); err != nil {
		t.Fatalf("SaveThresholds() error = %v", err)
	}

	got, ok, err := NewRepository(dbPath).LoadThresholds()
	if err != nil || !ok {
		t.Fatalf("LoadThresholds() = %v, %v", ok, err)
	}
	if got != want {
		t.Errorf("LoadThresholds() = %+v, want %+v", got, want)
	}
}

func TestRepository_Reset(t *testing.T) {
	repo := newTestRepository(t)

	if err := repo.SaveThresholds(models.DefaultThresholds()); err != nil {
		t.Fatalf("SaveThresholds() error = %v", err)
	}
	if err := repo.Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	_, ok, err := repo.LoadThresholds()
	if err != nil {
		t.Fatalf("LoadThresholds() error = %v", err)
	}
	if ok {
		t.Error("LoadThresholds() ok = true after Reset")
	}
}
