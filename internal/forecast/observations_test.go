package forecast

import (
	"errors"
	"testing"
	"time"

	"github.com/ngmaloney/channel-cross/internal/models"
)

func TestObservations_PicksSource(t *testing.T) {
	raw := []models.RawHour{
		{
			Time:           "2024-01-01T00:00:00+00:00",
			WindSpeed:      map[string]float64{"noaa": 7.5, "sg": 9},
			CloudCover:     map[string]float64{"noaa": 40},
			SwellHeight:    map[string]float64{"sg": 1.1},
			SwellPeriod:    map[string]float64{"noaa": 12},
			SwellDirection: map[string]float64{"noaa": 265},
		},
	}

	obs, err := Observations(raw, "noaa", nil)
	if err != nil {
		t.Fatalf("Observations() error = %v", err)
	}
	if len(obs) != 1 {
		t.Fatalf("len(obs) = %d, want 1", len(obs))
	}

	o := obs[0]
	assertValue(t, "WindSpeed", o.WindSpeed, 7.5)
	assertValue(t, "CloudCover", o.CloudCover, 40)
	assertValue(t, "SwellPeriod", o.SwellPeriod, 12)
	assertValue(t, "SwellDirection", o.SwellDirection, 265)
	if o.SwellHeight != nil {
		t.Errorf("SwellHeight = %v, want nil (only reported by another source)", *o.SwellHeight)
	}

	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !o.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", o.Timestamp, want)
	}
}

func TestObservations_TimestampFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"utc offset", "2024-03-10T14:00:00+00:00", time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)},
		{"zulu", "2024-03-10T14:00:00Z", time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)},
		{"fractional", "2024-03-10T14:00:00.000Z", time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)},
		{"negative offset", "2024-03-10T06:00:00-08:00", time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)},
		{"surrounding space", " 2024-03-10T14:00:00Z ", time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, err := Observations([]models.RawHour{{Time: tt.in}}, "noaa", nil)
			if err != nil {
				t.Fatalf("Observations() error = %v", err)
			}
			if !obs[0].Timestamp.Equal(tt.want) {
				t.Errorf("Timestamp = %v, want %v", obs[0].Timestamp, tt.want)
			}
		})
	}
}

func TestObservations_ConvertsLocation(t *testing.T) {
	pacific := time.FixedZone("PST", -8*3600)
	raw := []models.RawHour{{Time: "2024-01-02T03:00:00+00:00"}}

	obs, err := Observations(raw, "noaa", pacific)
	if err != nil {
		t.Fatalf("Observations() error = %v", err)
	}
	if obs[0].Timestamp.Location() != pacific {
		t.Errorf("Location = %v, want %v", obs[0].Timestamp.Location(), pacific)
	}
	if obs[0].Timestamp.Day() != 1 {
		t.Errorf("Day = %d, want 1", obs[0].Timestamp.Day())
	}
}

func TestObservations_RecordWithoutFieldsIsUsable(t *testing.T) {
	obs, err := Observations([]models.RawHour{{Time: "2024-01-01T00:00:00Z"}}, "noaa", nil)
	if err != nil {
		t.Fatalf("Observations() error = %v", err)
	}
	o := obs[0]
	if o.WindSpeed != nil || o.CloudCover != nil || o.SwellHeight != nil || o.SwellPeriod != nil || o.SwellDirection != nil {
		t.Errorf("expected all measurements nil, got %+v", o)
	}
}

func TestObservations_Errors(t *testing.T) {
	tests := []struct {
		name      string
		raw       []models.RawHour
		wantIndex int
		malformed bool
	}{
		{
			name:      "unparseable timestamp",
			raw:       []models.RawHour{{Time: "01/02/2024 10:00", WindSpeed: map[string]float64{"noaa": 5}}},
			wantIndex: 0,
			malformed: true,
		},
		{
			name: "missing timestamp with fields",
			raw: []models.RawHour{
				{Time: "2024-01-01T00:00:00Z"},
				{CloudCover: map[string]float64{"noaa": 5}},
			},
			wantIndex: 1,
			malformed: true,
		},
		{
			name: "no timestamp and no fields",
			raw: []models.RawHour{
				{Time: "2024-01-01T00:00:00Z"},
				{Time: "2024-01-01T01:00:00Z"},
				{},
			},
			wantIndex: 2,
			malformed: false,
		},
		{
			name: "unparseable timestamp and no fields",
			raw: []models.RawHour{
				{Time: "2024-01-01T00:00:00Z", WindSpeed: map[string]float64{"noaa": 5}},
				{Time: "garbage"},
			},
			wantIndex: 1,
			malformed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, err := Observations(tt.raw, "noaa", nil)
			if err == nil {
				t.Fatal("Observations() expected error")
			}
			if obs != nil {
				t.Errorf("Observations() returned partial output alongside error")
			}

			var malformed *MalformedInputError
			var empty *EmptyFieldSchemaError
			switch {
			case tt.malformed:
				if !errors.As(err, &malformed) {
					t.Fatalf("error = %T, want *MalformedInputError", err)
				}
				if malformed.Index != tt.wantIndex {
					t.Errorf("Index = %d, want %d", malformed.Index, tt.wantIndex)
				}
			default:
				if !errors.As(err, &empty) {
					t.Fatalf("error = %T, want *EmptyFieldSchemaError", err)
				}
				if empty.Index != tt.wantIndex {
					t.Errorf("Index = %d, want %d", empty.Index, tt.wantIndex)
				}
			}
		})
	}
}
