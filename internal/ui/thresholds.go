package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/ngmaloney/channel-cross/internal/models"
)

// thresholdControl is one slider in the thresholds pane
type thresholdControl struct {
	label string
	unit  string
	rng   models.Range
	step  float64
	get   func(models.CrossingThresholds) float64
	set   func(*models.CrossingThresholds, float64)
}

var thresholdControls = []thresholdControl{
	{
		label: "Max Wind Speed",
		unit:  "kn",
		rng:   models.WindSpeedRange,
		step:  1,
		get:   func(t models.CrossingThresholds) float64 { return t.WindSpeedMax },
		set:   func(t *models.CrossingThresholds, v float64) { t.WindSpeedMax = v },
	},
	{
		label: "Max Cloud Cover",
		unit:  "%",
		rng:   models.CloudCoverRange,
		step:  5,
		get:   func(t models.CrossingThresholds) float64 { return t.CloudCoverMax },
		set:   func(t *models.CrossingThresholds, v float64) { t.CloudCoverMax = v },
	},
	{
		label: "Max Swell Height",
		unit:  "ft",
		rng:   models.SwellHeightRange,
		step:  0.5,
		get:   func(t models.CrossingThresholds) float64 { return t.SwellHeightMax },
		set:   func(t *models.CrossingThresholds, v float64) { t.SwellHeightMax = v },
	},
	{
		label: "Min Swell Period",
		unit:  "s",
		rng:   models.SwellPeriodRange,
		step:  1,
		get:   func(t models.CrossingThresholds) float64 { return t.SwellPeriodMin },
		set:   func(t *models.CrossingThresholds, v float64) { t.SwellPeriodMin = v },
	},
}

// adjust moves the control by delta steps, clamped to its range
func (c thresholdControl) adjust(th models.CrossingThresholds, delta int) models.CrossingThresholds {
	v := c.rng.Clamp(c.get(th) + float64(delta)*c.step)
	c.set(&th, v)
	return th
}

// fraction returns the control's position within its range, 0..1
func (c thresholdControl) fraction(th models.CrossingThresholds) float64 {
	span := c.rng.Max - c.rng.Min
	if span <= 0 {
		return 0
	}
	return (c.rng.Clamp(c.get(th)) - c.rng.Min) / span
}

// renderThresholds draws every slider, marking the selected one
func renderThresholds(th models.CrossingThresholds, selected int, bar progress.Model) string {
	var lines []string
	for i, c := range thresholdControls {
		label := labelStyle
		cursor := "  "
		if i == selected {
			label = activeLabelStyle
			cursor = activeLabelStyle.Render("▸ ")
		}

		lines = append(lines, fmt.Sprintf("%s%s %s %s",
			cursor,
			label.Render(fmt.Sprintf("%-17s", c.label)),
			bar.ViewAs(c.fraction(th)),
			valueStyle.Render(formatThreshold(c.get(th), c.unit))))
	}
	return strings.Join(lines, "\n")
}

func formatThreshold(v float64, unit string) string {
	if v == float64(int(v)) {
		return fmt.Sprintf("%d %s", int(v), unit)
	}
	return fmt.Sprintf("%.1f %s", v, unit)
}
