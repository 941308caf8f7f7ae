package crossing

import (
	"testing"
	"time"

	"github.com/ngmaloney/channel-cross/internal/models"
)

func goodDay() models.DailyForecast {
	return models.DailyForecast{
		Date:           time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		WindSpeed:      models.Float(10),
		CloudCover:     models.Float(50),
		SwellHeight:    models.Float(2),
		SwellPeriod:    models.Float(12),
		SwellDirection: models.Float(270),
	}
}

func TestSuitable_AllTermsHold(t *testing.T) {
	if !Suitable(goodDay(), models.DefaultThresholds()) {
		t.Error("Suitable() = false for a day inside every threshold")
	}
}

func TestSuitable_AnySingleFailureIsPoor(t *testing.T) {
	th := models.DefaultThresholds()

	tests := []struct {
		name   string
		mutate func(d *models.DailyForecast)
	}{
		{"wind too strong", func(d *models.DailyForecast) { d.WindSpeed = models.Float(12.1) }},
		{"too cloudy", func(d *models.DailyForecast) { d.CloudCover = models.Float(81) }},
		{"swell too big", func(d *models.DailyForecast) { d.SwellHeight = models.Float(3.28084) }},
		{"period too short", func(d *models.DailyForecast) { d.SwellPeriod = models.Float(8.9) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := goodDay()
			tt.mutate(&day)
			if Suitable(day, th) {
				t.Errorf("Suitable() = true, want false")
			}
		})
	}
}

func TestSuitable_BoundariesInclusive(t *testing.T) {
	th := models.DefaultThresholds()
	day := models.DailyForecast{
		WindSpeed:   models.Float(12),
		CloudCover:  models.Float(80),
		SwellHeight: models.Float(3),
		SwellPeriod: models.Float(9),
	}

	if !Suitable(day, th) {
		t.Error("Suitable() = false with every value exactly on its limit")
	}
}

func TestSuitable_MissingFieldIsPoor(t *testing.T) {
	th := models.DefaultThresholds()

	tests := []struct {
		name   string
		mutate func(d *models.DailyForecast)
	}{
		{"no wind", func(d *models.DailyForecast) { d.WindSpeed = nil }},
		{"no cloud cover", func(d *models.DailyForecast) { d.CloudCover = nil }},
		{"no swell height", func(d *models.DailyForecast) { d.SwellHeight = nil }},
		{"no swell period", func(d *models.DailyForecast) { d.SwellPeriod = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := goodDay()
			tt.mutate(&day)
			if Suitable(day, th) {
				t.Errorf("Suitable() = true, want false")
			}
		})
	}
}

func TestSuitable_DirectionNotRequired(t *testing.T) {
	day := goodDay()
	day.SwellDirection = nil
	if !Suitable(day, models.DefaultThresholds()) {
		t.Error("Suitable() = false; swell direction is not a crossing criterion")
	}
}

func TestSuitable_OneMeterSwellFailsThreeFootLimit(t *testing.T) {
	day := goodDay()
	day.SwellHeight = models.Float(1.0 * 3.28084)

	th := models.DefaultThresholds()
	th.SwellHeightMax = 3
	if Suitable(day, th) {
		t.Error("Suitable() = true for 3.28 ft swell against a 3 ft limit")
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	days := []models.DailyForecast{goodDay(), goodDay()}
	days[1].WindSpeed = models.Float(20)

	out := Classify(days, models.DefaultThresholds())

	if days[0].Suitable || days[1].Suitable {
		t.Error("Classify() modified its input")
	}
	if !out[0].Suitable {
		t.Error("out[0].Suitable = false, want true")
	}
	if out[1].Suitable {
		t.Error("out[1].Suitable = true, want false")
	}
}

func TestClassify_ThresholdChangeReclassifies(t *testing.T) {
	days := []models.DailyForecast{goodDay()}

	strict := models.DefaultThresholds()
	strict.WindSpeedMax = 5
	if Classify(days, strict)[0].Suitable {
		t.Error("expected day to be poor with a 5 kn limit")
	}
	if !Classify(days, models.DefaultThresholds())[0].Suitable {
		t.Error("expected day to be good with default limits")
	}
}

func TestClassify_Empty(t *testing.T) {
	out := Classify(nil, models.DefaultThresholds())
	if len(out) != 0 {
		t.Errorf("len(Classify(nil)) = %d, want 0", len(out))
	}
}
