// Package forecast turns hourly marine readings into daily summaries.
package forecast

import (
	"errors"
	"strings"
	"time"

	"github.com/ngmaloney/channel-cross/internal/models"
)

var errEmptyTimestamp = errors.New("timestamp is empty")

// Observations validates raw provider records and picks the value reported by
// source for each field. A field the source did not report stays nil.
// If loc is non-nil, timestamps are converted to it before any grouping.
//
// The first unusable record aborts the conversion.
func Observations(raw []models.RawHour, source string, loc *time.Location) ([]models.HourlyObservation, error) {
	obs := make([]models.HourlyObservation, 0, len(raw))

	for i, hour := range raw {
		t, err := parseTimestamp(hour.Time)
		if err != nil {
			// No usable timestamp and nothing measured: the record has no schema
			if !hour.HasMeasurements() {
				return nil, &EmptyFieldSchemaError{Index: i}
			}
			return nil, &MalformedInputError{Index: i, Time: hour.Time, Err: err}
		}
		if loc != nil {
			t = t.In(loc)
		}

		obs = append(obs, models.HourlyObservation{
			Timestamp:      t,
			WindSpeed:      pick(hour.WindSpeed, source),
			CloudCover:     pick(hour.CloudCover, source),
			SwellHeight:    pick(hour.SwellHeight, source),
			SwellPeriod:    pick(hour.SwellPeriod, source),
			SwellDirection: pick(hour.SwellDirection, source),
		})
	}

	return obs, nil
}

// parseTimestamp accepts RFC 3339 with or without fractional seconds
func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errEmptyTimestamp
	}
	return time.Parse(time.RFC3339Nano, s)
}

func pick(values map[string]float64, source string) *float64 {
	v, ok := values[source]
	if !ok {
		return nil
	}
	return &v
}
