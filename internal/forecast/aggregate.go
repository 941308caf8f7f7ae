package forecast

import (
	"sort"
	"time"

	"github.com/ngmaloney/channel-cross/internal/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// FeetPerMeter converts swell height from the provider's meters to feet
const FeetPerMeter = 3.28084

// Aggregate groups observations by calendar date and reduces each field:
// wind speed and swell height by max, everything else by mean. Swell height
// is converted to feet after the max is taken. A field with no values on a
// given day stays nil.
//
// Days are returned in ascending order. Direction is a plain arithmetic mean,
// so readings straddling north (350°, 10°) average to 180°.
func Aggregate(obs []models.HourlyObservation) []models.DailyForecast {
	groups := make(map[civilDate]*dayValues)
	for _, o := range obs {
		key := civilDateOf(o.Timestamp)
		g, ok := groups[key]
		if !ok {
			g = &dayValues{date: key.midnight(o.Timestamp.Location())}
			groups[key] = g
		}
		g.add(o)
	}

	days := make([]models.DailyForecast, 0, len(groups))
	for _, g := range groups {
		daily := models.DailyForecast{
			Date:           g.date,
			WindSpeed:      maxOf(g.windSpeed),
			CloudCover:     meanOf(g.cloudCover),
			SwellHeight:    maxOf(g.swellHeight),
			SwellPeriod:    meanOf(g.swellPeriod),
			SwellDirection: meanOf(g.swellDirection),
		}
		if daily.SwellHeight != nil {
			*daily.SwellHeight *= FeetPerMeter
		}
		days = append(days, daily)
	}

	sort.Slice(days, func(i, j int) bool {
		return civilDateOf(days[i].Date).before(civilDateOf(days[j].Date))
	})

	return days
}

// AggregateHours runs Observations and Aggregate in one step
func AggregateHours(raw []models.RawHour, source string, loc *time.Location) ([]models.DailyForecast, error) {
	obs, err := Observations(raw, source, loc)
	if err != nil {
		return nil, err
	}
	return Aggregate(obs), nil
}

// civilDate is the calendar date of a timestamp in its own location.
// time.Time is not used as the key since equal instants can carry
// different *time.Location values.
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func civilDateOf(t time.Time) civilDate {
	y, m, d := t.Date()
	return civilDate{year: y, month: m, day: d}
}

func (c civilDate) before(o civilDate) bool {
	if c.year != o.year {
		return c.year < o.year
	}
	if c.month != o.month {
		return c.month < o.month
	}
	return c.day < o.day
}

func (c civilDate) midnight(loc *time.Location) time.Time {
	return time.Date(c.year, c.month, c.day, 0, 0, 0, 0, loc)
}

type dayValues struct {
	date           time.Time
	windSpeed      []float64
	cloudCover     []float64
	swellHeight    []float64
	swellPeriod    []float64
	swellDirection []float64
}

func (d *dayValues) add(o models.HourlyObservation) {
	d.windSpeed = appendPresent(d.windSpeed, o.WindSpeed)
	d.cloudCover = appendPresent(d.cloudCover, o.CloudCover)
	d.swellHeight = appendPresent(d.swellHeight, o.SwellHeight)
	d.swellPeriod = appendPresent(d.swellPeriod, o.SwellPeriod)
	d.swellDirection = appendPresent(d.swellDirection, o.SwellDirection)
}

func appendPresent(values []float64, v *float64) []float64 {
	if v == nil {
		return values
	}
	return append(values, *v)
}

func maxOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	return models.Float(floats.Max(values))
}

// meanOf sums a sorted copy so the result does not depend on input order.
// values is left untouched.
func meanOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return models.Float(stat.Mean(sorted, nil))
}
