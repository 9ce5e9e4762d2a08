package irrigation

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

type HourlyAverage struct {
	HourStart time.Time `json:"hour_start"`
	Average   float64   `json:"average"`
	Count     int       `json:"count"`
}

// SensorDays holds one value per sensor type per day.
type SensorDays map[models.SensorType]map[Date]float64

// AggregateHourly buckets points by UTC hour and averages each bucket to 2 decimals.
// Hours without readings are absent from the result, which is sorted by hour.
func AggregateHourly(points []ReadingPoint) []HourlyAverage {
	type acc struct {
		sum   float64
		count int
	}
	buckets := make(map[time.Time]*acc)
	for _, p := range points {
		hour := p.Timestamp.UTC().Truncate(time.Hour)
		b, ok := buckets[hour]
		if !ok {
			b = &acc{}
			buckets[hour] = b
		}
		b.sum += p.Value
		b.count++
	}

	out := make([]HourlyAverage, 0, len(buckets))
	for hour, b := range buckets {
		out = append(out, HourlyAverage{
			HourStart: hour,
			Average:   common.Round2(b.sum / float64(b.count)),
			Count:     b.count,
		})
	}
	slices.SortFunc(out, func(a, b HourlyAverage) int {
		return a.HourStart.Compare(b.HourStart)
	})
	return out
}

// DailyValues reduces hourly averages to one value per day: the mean of that day's
// hourly averages, rounded to 2 decimals.
func DailyValues(hourly []HourlyAverage) map[Date]float64 {
	sums := make(map[Date]float64)
	counts := make(map[Date]int)
	for _, h := range hourly {
		d := DateOf(h.HourStart)
		sums[d] += h.Average
		counts[d]++
	}
	out := make(map[Date]float64, len(sums))
	for d, s := range sums {
		out[d] = common.Round2(s / float64(counts[d]))
	}
	return out
}

// Aggregate returns the hourly averages of a hub's sensors of one type, over whole UTC days
// covering [start, end].
func (c *Core) Aggregate(ctx context.Context, hubID string, sensorType models.SensorType, start, end time.Time) ([]HourlyAverage, error) {
	if c.Readings == nil {
		return nil, fmt.Errorf("readings: %w", ErrStoreUnavailable)
	}

	logger := common.GetLoggerWith(
		common.LoggerNameIrrigationCore,
		zap.String(common.LoggerFieldIrrigationCategory, common.LoggerCategoryAggregate),
	)

	from, to := NormalizeWindow(start, end)
	points, err := c.Readings.QueryReadings(ctx, hubID, sensorType, from, to)
	if err != nil {
		return nil, &HubError{HubID: hubID, Err: fmt.Errorf("query %s readings: %w", sensorType, err)}
	}

	if len(points) == 0 {
		logger.Debug("No readings in window",
			zap.String("hub_id", hubID),
			zap.String("sensor_type", string(sensorType)),
			zap.Time("from", from),
			zap.Time("to", to),
			zap.NamedError("reason", ErrDataUnavailable))
		return []HourlyAverage{}, nil
	}

	hourly := AggregateHourly(points)

	logger.Debug("Aggregated hourly readings",
		zap.String("hub_id", hubID),
		zap.String("sensor_type", string(sensorType)),
		zap.Int("readings", len(points)),
		zap.Int("hours", len(hourly)))

	return hourly, nil
}
