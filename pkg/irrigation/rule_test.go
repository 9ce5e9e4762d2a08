package irrigation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) Date {
	return Date{Year: year, Month: month, Day: d}
}

func TestSeasonOf_Boundaries(t *testing.T) {
	assert.Equal(t, SeasonWet, SeasonOf(day(2024, time.December, 1)))
	assert.Equal(t, SeasonWet, SeasonOf(day(2024, time.March, 31)))
	assert.Equal(t, SeasonMixed, SeasonOf(day(2024, time.April, 1)))
	assert.Equal(t, SeasonMixed, SeasonOf(day(2024, time.May, 31)))
	assert.Equal(t, SeasonDry, SeasonOf(day(2024, time.June, 1)))
	assert.Equal(t, SeasonDry, SeasonOf(day(2024, time.September, 30)))
	assert.Equal(t, SeasonMixed, SeasonOf(day(2024, time.October, 1)))
	assert.Equal(t, SeasonMixed, SeasonOf(day(2024, time.November, 30)))
}

func TestDecide(t *testing.T) {
	wet := day(2024, time.January, 10)
	dry := day(2024, time.July, 10)

	cases := []struct {
		name string
		row  FeatureRow
		date Date
		want int
	}{
		{"rain sentinel wins", FeatureRow{SoilMoisture: 10, Rainfall: 1}, wet, 0},
		{"low moisture", FeatureRow{SoilMoisture: 50, Humidity: 90}, wet, 1},
		{"at low threshold, cool and humid", FeatureRow{SoilMoisture: 59.5, Temperature: 30, Humidity: 85}, wet, 0},
		{"moderate and hot", FeatureRow{SoilMoisture: 59.6, Temperature: 36, Humidity: 85}, wet, 1},
		{"moderate and dry air", FeatureRow{SoilMoisture: 59.6, Temperature: 30, Humidity: 79}, wet, 1},
		{"at moderate threshold", FeatureRow{SoilMoisture: 59.7, Temperature: 40, Humidity: 10}, wet, 0},
		{"dry season low threshold", FeatureRow{SoilMoisture: 59.2, Temperature: 30, Humidity: 85}, dry, 0},
		{"dry season below low", FeatureRow{SoilMoisture: 59.1, Humidity: 85}, dry, 1},
		{"dry season at moderate", FeatureRow{SoilMoisture: 59.5, Temperature: 40}, dry, 0},
		{"temperature at limit", FeatureRow{SoilMoisture: 59.6, Temperature: 35, Humidity: 80}, wet, 0},
		{"rainfall not sentinel", FeatureRow{SoilMoisture: 10, Rainfall: 0.99}, wet, 1},
		{"all zeros", FeatureRow{}, wet, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Decide(tc.row, tc.date))
			assert.Equal(t, tc.want, Decide(tc.row, tc.date), "decide must be pure")
		})
	}
}

func TestThresholdsFor(t *testing.T) {
	assert.Equal(t, Thresholds{LowMoisture: 59.2, ModerateMoisture: 59.5, HighTemperature: 35, LowHumidity: 80}, ThresholdsFor(SeasonDry))
	assert.Equal(t, Thresholds{LowMoisture: 59.5, ModerateMoisture: 59.7, HighTemperature: 35, LowHumidity: 80}, ThresholdsFor(SeasonWet))
	assert.Equal(t, ThresholdsFor(SeasonWet), ThresholdsFor(SeasonMixed))
}
