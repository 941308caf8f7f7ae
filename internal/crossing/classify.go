// Package crossing decides which forecast days are good for a channel crossing
// and projects them into display rows.
package crossing

import "github.com/ngmaloney/channel-cross/internal/models"

// Suitable reports whether a day meets every threshold. Limits are inclusive.
// A day with any required measurement missing is never suitable.
func Suitable(day models.DailyForecast, th models.CrossingThresholds) bool {
	return atMost(day.WindSpeed, th.WindSpeedMax) &&
		atMost(day.CloudCover, th.CloudCoverMax) &&
		atMost(day.SwellHeight, th.SwellHeightMax) &&
		atLeast(day.SwellPeriod, th.SwellPeriodMin)
}

// Classify returns copies of days with Suitable set. days is not modified.
func Classify(days []models.DailyForecast, th models.CrossingThresholds) []models.DailyForecast {
	out := make([]models.DailyForecast, len(days))
	for i, day := range days {
		day.Suitable = Suitable(day, th)
		out[i] = day
	}
	return out
}

func atMost(v *float64, limit float64) bool {
	return v != nil && *v <= limit
}

func atLeast(v *float64, limit float64) bool {
	return v != nil && *v >= limit
}
