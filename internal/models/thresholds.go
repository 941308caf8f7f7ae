package models

// CrossingThresholds are the user's limits for a comfortable crossing
type CrossingThresholds struct {
	WindSpeedMax   float64 `json:"wind_speed_max"`   // knots
	CloudCoverMax  float64 `json:"cloud_cover_max"`  // percent
	SwellHeightMax float64 `json:"swell_height_max"` // feet
	SwellPeriodMin float64 `json:"swell_period_min"` // seconds
}

// Range is an inclusive bound used by threshold controls
type Range struct {
	Min float64
	Max float64
}

// Clamp limits v to the range
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

var (
	WindSpeedRange   = Range{Min: 5, Max: 25}
	CloudCoverRange  = Range{Min: 0, Max: 100}
	SwellHeightRange = Range{Min: 0, Max: 15}
	SwellPeriodRange = Range{Min: 5, Max: 20}
)

// DefaultThresholds returns the stock crossing limits
func DefaultThresholds() CrossingThresholds {
	return CrossingThresholds{
		WindSpeedMax:   12,
		CloudCoverMax:  80,
		SwellHeightMax: 3,
		SwellPeriodMin: 9,
	}
}

// Clamped returns a copy with every value forced into its control range
func (t CrossingThresholds) Clamped() CrossingThresholds {
	return CrossingThresholds{
		WindSpeedMax:   WindSpeedRange.Clamp(t.WindSpeedMax),
		CloudCoverMax:  CloudCoverRange.Clamp(t.CloudCoverMax),
		SwellHeightMax: SwellHeightRange.Clamp(t.SwellHeightMax),
		SwellPeriodMin: SwellPeriodRange.Clamp(t.SwellPeriodMin),
	}
}
