package models

import "time"

// RawHour is a single hourly record as delivered by the forecast provider.
// Each measurement is keyed by data source (e.g. "noaa", "sg").
type RawHour struct {
	Time           string             `json:"time"`
	WindSpeed      map[string]float64 `json:"windSpeed,omitempty"`
	CloudCover     map[string]float64 `json:"cloudCover,omitempty"`
	SwellHeight    map[string]float64 `json:"swellHeight,omitempty"`
	SwellPeriod    map[string]float64 `json:"swellPeriod,omitempty"`
	SwellDirection map[string]float64 `json:"swellDirection,omitempty"`
}

// HasMeasurements reports whether any of the five recognized fields is present
func (h RawHour) HasMeasurements() bool {
	return len(h.WindSpeed) > 0 ||
		len(h.CloudCover) > 0 ||
		len(h.SwellHeight) > 0 ||
		len(h.SwellPeriod) > 0 ||
		len(h.SwellDirection) > 0
}

// HourlyObservation is one marine reading for the forecast point.
// A nil measurement means the provider did not report it for that hour.
type HourlyObservation struct {
	Timestamp      time.Time
	WindSpeed      *float64 // knots
	CloudCover     *float64 // percent
	SwellHeight    *float64 // meters
	SwellPeriod    *float64 // seconds
	SwellDirection *float64 // degrees
}

// DailyForecast summarizes all observations sharing a calendar date
type DailyForecast struct {
	Date           time.Time // midnight, in the observations' location
	WindSpeed      *float64  // knots, daily max
	CloudCover     *float64  // percent, daily mean
	SwellHeight    *float64  // feet, daily max
	SwellPeriod    *float64  // seconds, daily mean
	SwellDirection *float64  // degrees, daily arithmetic mean
	Suitable       bool
}

// Float returns a pointer to v, for building observations in code and tests
func Float(v float64) *float64 {
	return &v
}
