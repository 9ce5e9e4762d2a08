// Package trend summarizes a window of readings as a direction plus its average rate and
// percentage change.
package trend

import (
	"cmp"
	"math"
	"slices"
	"time"
)

type Direction string

const (
	DirectionStable               Direction = "stable"
	DirectionGraduallyIncreasing  Direction = "gradually_increasing"
	DirectionRapidlyIncreasing    Direction = "rapidly_increasing"
	DirectionGraduallyDecreasing  Direction = "gradually_decreasing"
	DirectionRapidlyDecreasing    Direction = "rapidly_decreasing"
	DirectionInsufficientData     Direction = "insufficient_data"
	DirectionInsufficientTimeSpan Direction = "insufficient_time_span"
)

const (
	SlopeEpsilon   = 0.1 // units per hour
	StablePercent  = 1.0
	RapidPercent   = 5.0
	MinSpanPortion = 0.5
)

func (d Direction) Description() string {
	switch d {
	case DirectionStable:
		return "Stable"
	case DirectionGraduallyIncreasing:
		return "Gradually increasing"
	case DirectionRapidlyIncreasing:
		return "Rapidly increasing"
	case DirectionGraduallyDecreasing:
		return "Gradually decreasing"
	case DirectionRapidlyDecreasing:
		return "Rapidly decreasing"
	case DirectionInsufficientTimeSpan:
		return "Insufficient time span for analysis"
	}
	return "Insufficient readings to determine a trend"
}

type Point struct {
	Timestamp time.Time
	Value     float64
}

type Result struct {
	Direction        Direction `json:"direction"`
	Description      string    `json:"description"`
	AvgSlope         float64   `json:"avg_slope"`
	AvgPercentChange float64   `json:"avg_percent_change"`
	// OverallChange is the percent change from the oldest to the latest point, nil when the
	// oldest value is zero.
	OverallChange *float64 `json:"overall_change,omitempty"`
	ReadingsCount int      `json:"readings_count"`
	PairsUsed     int      `json:"pairs_used"`
}

func insufficient(d Direction, count int) Result {
	return Result{Direction: d, Description: d.Description(), ReadingsCount: count}
}

// Analyze computes slope (per hour) and percent change over consecutive points. Pairs whose
// earlier value is zero, or that share a timestamp, are skipped. Fewer than two points, or
// no usable pair, yields DirectionInsufficientData. The input slice is not modified.
func Analyze(points []Point) Result {
	if len(points) < 2 {
		return insufficient(DirectionInsufficientData, len(points))
	}

	sorted := sortedCopy(points)

	var slopeSum, pctSum float64
	pairs := 0
	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		hours := cur.Timestamp.Sub(prev.Timestamp).Hours()
		if prev.Value == 0 || hours == 0 {
			continue
		}
		diff := cur.Value - prev.Value
		slopeSum += diff / hours
		pctSum += diff / prev.Value * 100
		pairs++
	}
	if pairs == 0 {
		return insufficient(DirectionInsufficientData, len(points))
	}

	res := Result{
		AvgSlope:         slopeSum / float64(pairs),
		AvgPercentChange: pctSum / float64(pairs),
		ReadingsCount:    len(points),
		PairsUsed:        pairs,
	}
	if oldest := sorted[0].Value; oldest != 0 {
		overall := (sorted[len(sorted)-1].Value - oldest) / oldest * 100
		res.OverallChange = &overall
	}
	res.Direction = Classify(res.AvgSlope, res.AvgPercentChange)
	res.Description = res.Direction.Description()
	return res
}

// AnalyzeWindow is Analyze for readings requested over the last window. When the points
// span less than half of the window the result is DirectionInsufficientTimeSpan.
func AnalyzeWindow(points []Point, window time.Duration) Result {
	if len(points) < 2 {
		return insufficient(DirectionInsufficientData, len(points))
	}
	sorted := sortedCopy(points)
	span := sorted[len(sorted)-1].Timestamp.Sub(sorted[0].Timestamp)
	if span.Hours() < window.Hours()*MinSpanPortion {
		return insufficient(DirectionInsufficientTimeSpan, len(points))
	}
	return Analyze(sorted)
}

func Classify(avgSlope, avgPercent float64) Direction {
	switch {
	case math.Abs(avgSlope) < SlopeEpsilon && math.Abs(avgPercent) < StablePercent:
		return DirectionStable
	case avgSlope > 0:
		if avgPercent > RapidPercent {
			return DirectionRapidlyIncreasing
		}
		return DirectionGraduallyIncreasing
	default:
		if avgPercent < -RapidPercent {
			return DirectionRapidlyDecreasing
		}
		return DirectionGraduallyDecreasing
	}
}

func sortedCopy(points []Point) []Point {
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b Point) int {
		return cmp.Compare(a.Timestamp.UnixNano(), b.Timestamp.UnixNano())
	})
	return sorted
}
