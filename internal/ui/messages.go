package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ngmaloney/channel-cross/internal/forecast"
	"github.com/ngmaloney/channel-cross/internal/log"
	"github.com/ngmaloney/channel-cross/internal/models"
	"github.com/ngmaloney/channel-cross/internal/stormglass"
)

// Message types for async operations

// forecastFetchedMsg is sent when the forecast has been fetched and aggregated
type forecastFetchedMsg struct {
	days      []models.DailyForecast
	fetchedAt time.Time
	err       error
}

// thresholdsSavedMsg is sent after the thresholds have been saved or reset
type thresholdsSavedMsg struct {
	err error
}

// saveDueMsg fires saveDelay after a threshold change
type saveDueMsg struct {
	seq int
}

// forecastRequest describes one fetch of the forecast window
type forecastRequest struct {
	lat, lon   float64
	start, end time.Time
	source     string
	loc        *time.Location
}

// fetchForecast fetches hourly data and aggregates it into days in the background
func fetchForecast(client stormglass.ForecastClient, req forecastRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		hours, err := client.GetHourlyForecast(ctx, req.lat, req.lon, req.start, req.end)
		if err != nil {
			log.Errorw("forecast fetch failed", "error", err)
			return forecastFetchedMsg{err: err}
		}

		days, err := forecast.AggregateHours(hours, req.source, req.loc)
		if err != nil {
			log.Errorw("forecast aggregation failed", "error", err)
			return forecastFetchedMsg{err: fmt.Errorf("aggregating forecast: %w", err)}
		}

		log.Infow("forecast aggregated", "hours", len(hours), "days", len(days))
		return forecastFetchedMsg{days: days, fetchedAt: time.Now()}
	}
}

// saveThresholds persists the thresholds without blocking the update loop
func saveThresholds(store ThresholdStore, th models.CrossingThresholds) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return thresholdsSavedMsg{err: store.SaveThresholds(th)}
	}
}

// scheduleSave asks for a save once the thresholds have settled
func scheduleSave(seq int) tea.Cmd {
	return tea.Tick(saveDelay, func(time.Time) tea.Msg {
		return saveDueMsg{seq: seq}
	})
}

// resetThresholds clears the saved thresholds
func resetThresholds(store ThresholdStore) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return thresholdsSavedMsg{err: store.Reset()}
	}
}
