package irrigation

import "time"

type Season string

const (
	SeasonWet   Season = "wet"
	SeasonDry   Season = "dry"
	SeasonMixed Season = "mixed"
)

// RainfallSentinel marks a day that rained enough to skip irrigation.
const RainfallSentinel = 1.0

type Thresholds struct {
	LowMoisture      float64
	ModerateMoisture float64
	HighTemperature  float64
	LowHumidity      float64
}

func SeasonOf(d Date) Season {
	switch d.Month {
	case time.December, time.January, time.February, time.March:
		return SeasonWet
	case time.June, time.July, time.August, time.September:
		return SeasonDry
	}
	return SeasonMixed
}

func ThresholdsFor(s Season) Thresholds {
	t := Thresholds{
		LowMoisture:      59.5,
		ModerateMoisture: 59.7,
		HighTemperature:  35,
		LowHumidity:      80,
	}
	if s == SeasonDry {
		t.LowMoisture = 59.2
		t.ModerateMoisture = 59.5
	}
	return t
}

// Decide is the label heuristic used in place of irrigation logs: 1 means water.
func Decide(row FeatureRow, d Date) int {
	t := ThresholdsFor(SeasonOf(d))
	switch {
	case row.Rainfall == RainfallSentinel:
		return 0
	case row.SoilMoisture < t.LowMoisture:
		return 1
	case row.SoilMoisture < t.ModerateMoisture &&
		(row.Temperature > t.HighTemperature || row.Humidity < t.LowHumidity):
		return 1
	}
	return 0
}
