package crossing

import (
	"fmt"
	"math"

	"github.com/ngmaloney/channel-cross/internal/models"
)

// Display column names, in table order
const (
	ColumnDate           = "Date"
	ColumnWindSpeed      = "Wind Speed"
	ColumnCloudCover     = "Cloud Cover"
	ColumnSwellHeight    = "Swell Height"
	ColumnSwellPeriod    = "Swell Period"
	ColumnSwellDirection = "Swell Direction"
	ColumnSuitability    = "Suitability"
)

// Columns lists the display columns in order
var Columns = []string{
	ColumnDate,
	ColumnWindSpeed,
	ColumnCloudCover,
	ColumnSwellHeight,
	ColumnSwellPeriod,
	ColumnSwellDirection,
	ColumnSuitability,
}

const (
	LabelGood = "✅ Good"
	LabelPoor = "❌ Poor"

	// Missing is shown in place of a measurement the provider did not report
	Missing = "n/a"

	dateLayout = "2006-01-02"
)

// Style is a rendering hint for a row. The renderer decides what it looks like.
type Style int

const (
	StylePlain Style = iota
	StyleHighlight
)

// StyleFor maps suitability to a row style
func StyleFor(suitable bool) Style {
	if suitable {
		return StyleHighlight
	}
	return StylePlain
}

// Row is one formatted day ready for display
type Row struct {
	Values   map[string]string
	Suitable bool
	Style    Style
}

// Cells returns the row's values in Columns order
func (r Row) Cells() []string {
	cells := make([]string, len(Columns))
	for i, col := range Columns {
		cells[i] = r.Values[col]
	}
	return cells
}

// Format renders a classified day. It does not re-evaluate suitability.
func Format(day models.DailyForecast) Row {
	return Row{
		Values: map[string]string{
			ColumnDate:           day.Date.Format(dateLayout),
			ColumnWindSpeed:      oneDecimal(day.WindSpeed, "kn"),
			ColumnCloudCover:     whole(day.CloudCover, "%"),
			ColumnSwellHeight:    oneDecimal(day.SwellHeight, "ft"),
			ColumnSwellPeriod:    oneDecimal(day.SwellPeriod, "s"),
			ColumnSwellDirection: whole(day.SwellDirection, "°"),
			ColumnSuitability:    suitabilityLabel(day.Suitable),
		},
		Suitable: day.Suitable,
		Style:    StyleFor(day.Suitable),
	}
}

// CountSuitable returns how many rows are good for crossing
func CountSuitable(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Suitable {
			n++
		}
	}
	return n
}

// Rows classifies days against th and formats each one
func Rows(days []models.DailyForecast, th models.CrossingThresholds) []Row {
	classified := Classify(days, th)
	rows := make([]Row, len(classified))
	for i, day := range classified {
		rows[i] = Format(day)
	}
	return rows
}

func oneDecimal(v *float64, unit string) string {
	if v == nil {
		return Missing
	}
	return fmt.Sprintf("%.1f %s", *v, unit)
}

func whole(v *float64, unit string) string {
	if v == nil {
		return Missing
	}
	return fmt.Sprintf("%d %s", int(math.Round(*v)), unit)
}

func suitabilityLabel(ok bool) string {
	if ok {
		return LabelGood
	}
	return LabelPoor
}
