package irrigation

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

const EarthRadiusKm = 6371.0

type DailyRainMatch struct {
	Date        Date      `json:"date"`
	Value       float64   `json:"value"`
	DistanceKm  float64   `json:"distance_km"`
	StationID   string    `json:"station_id"`
	StationName string    `json:"station_name"`
	Timestamp   time.Time `json:"timestamp"`
}

type DailyRainIntensity struct {
	Date     Date    `json:"date"`
	AUC      float64 `json:"auc"`
	Readings int     `json:"readings"`
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// HaversineKm is the great-circle distance between two points in kilometres.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// closer orders equally distant candidates by station id, then timestamp, then row id.
func closer(dist float64, r models.RainfallRecord, bestDist float64, best models.RainfallRecord) bool {
	if dist != bestDist {
		return dist < bestDist
	}
	if r.StationID != best.StationID {
		return r.StationID < best.StationID
	}
	if !r.Timestamp.Equal(best.Timestamp) {
		return r.Timestamp.Before(best.Timestamp)
	}
	return r.ID < best.ID
}

// ClosestPerDay picks, for every UTC day present in records, the reading nearest to
// (lat, lng).
func ClosestPerDay(lat, lng float64, records []models.RainfallRecord) map[Date]DailyRainMatch {
	best := make(map[Date]models.RainfallRecord)
	dist := make(map[Date]float64)
	for _, r := range records {
		d := DateOf(r.Timestamp)
		km := HaversineKm(lat, lng, r.Lat, r.Lng)
		cur, ok := best[d]
		if !ok || closer(km, r, dist[d], cur) {
			best[d] = r
			dist[d] = km
		}
	}

	out := make(map[Date]DailyRainMatch, len(best))
	for d, r := range best {
		out[d] = DailyRainMatch{
			Date:        d,
			Value:       r.Value,
			DistanceKm:  dist[d],
			StationID:   r.StationID,
			StationName: r.StationName,
			Timestamp:   r.Timestamp.UTC(),
		}
	}
	return out
}

// DailyRainfallAUC integrates each day's readings, across all stations, with the
// trapezoidal rule over seconds. A day with one reading integrates to zero.
func DailyRainfallAUC(records []models.RainfallRecord) []DailyRainIntensity {
	byDay := make(map[Date][]models.RainfallRecord)
	for _, r := range records {
		d := DateOf(r.Timestamp)
		byDay[d] = append(byDay[d], r)
	}

	out := make([]DailyRainIntensity, 0, len(byDay))
	for d, day := range byDay {
		slices.SortStableFunc(day, func(a, b models.RainfallRecord) int {
			return a.Timestamp.Compare(b.Timestamp)
		})
		var auc float64
		for i := 1; i < len(day); i++ {
			dt := day[i].Timestamp.Sub(day[i-1].Timestamp).Seconds()
			auc += 0.5 * (day[i-1].Value + day[i].Value) * dt
		}
		out = append(out, DailyRainIntensity{Date: d, AUC: auc, Readings: len(day)})
	}
	slices.SortFunc(out, func(a, b DailyRainIntensity) int {
		return a.Date.Start().Compare(b.Date.Start())
	})
	return out
}

func SortedMatches(matches map[Date]DailyRainMatch) []DailyRainMatch {
	out := make([]DailyRainMatch, 0, len(matches))
	for _, m := range matches {
		out = append(out, m)
	}
	slices.SortFunc(out, func(a, b DailyRainMatch) int {
		return cmp.Compare(a.Date.Start().Unix(), b.Date.Start().Unix())
	})
	return out
}

// ClosestRainPerDay loads every rainfall record once and matches each day against
// (lat, lng).
func (c *Core) ClosestRainPerDay(ctx context.Context, lat, lng float64) (map[Date]DailyRainMatch, error) {
	if c.Rainfall == nil {
		return nil, fmt.Errorf("rainfall: %w", ErrStoreUnavailable)
	}
	records, err := c.Rainfall.AllRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load rainfall records: %w", err)
	}
	return c.matchRain(lat, lng, records), nil
}

// ClosestRainPerDayBetween restricts the match to the whole UTC days covering [start, end].
func (c *Core) ClosestRainPerDayBetween(ctx context.Context, lat, lng float64, start, end time.Time) (map[Date]DailyRainMatch, error) {
	if c.Rainfall == nil {
		return nil, fmt.Errorf("rainfall: %w", ErrStoreUnavailable)
	}
	from, to := NormalizeWindow(start, end)
	records, err := c.Rainfall.RecordsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load rainfall records: %w", err)
	}
	return c.matchRain(lat, lng, records), nil
}

func (c *Core) matchRain(lat, lng float64, records []models.RainfallRecord) map[Date]DailyRainMatch {
	logger := common.GetLoggerWith(
		common.LoggerNameIrrigationCore,
		zap.String(common.LoggerFieldIrrigationCategory, common.LoggerCategoryRainMatch),
	)

	matches := ClosestPerDay(lat, lng, records)

	logger.Debug("Matched rainfall per day",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng),
		zap.Int("records", len(records)),
		zap.Int("days", len(matches)))

	return matches
}

func (c *Core) RainfallIntensity(ctx context.Context, start, end time.Time) ([]DailyRainIntensity, error) {
	if c.Rainfall == nil {
		return nil, fmt.Errorf("rainfall: %w", ErrStoreUnavailable)
	}
	from, to := NormalizeWindow(start, end)
	records, err := c.Rainfall.RecordsBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("load rainfall records: %w", err)
	}
	return DailyRainfallAUC(records), nil
}
