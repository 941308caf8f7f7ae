// Package stormglass fetches hourly marine forecasts from the Stormglass API.
package stormglass

import (
	"context"
	"time"

	"github.com/ngmaloney/channel-cross/internal/models"
)

// ForecastClient defines the interface for fetching hourly point forecasts
type ForecastClient interface {
	// GetHourlyForecast retrieves hourly records for a point between start and end
	GetHourlyForecast(ctx context.Context, lat, lon float64, start, end time.Time) ([]models.RawHour, error)
}

// Params are the measurements requested from the point endpoint
var Params = []string{
	"windSpeed",
	"cloudCover",
	"swellHeight",
	"swellPeriod",
	"swellDirection",
}
