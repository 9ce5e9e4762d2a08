package irrigation

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

// FeatureRow is one hub day. Missing sensor or rainfall data is 0.
type FeatureRow struct {
	SoilMoisture float64 `json:"soil_moisture"`
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	Light        float64 `json:"light"`
	Rainfall     float64 `json:"rainfall"`
}

var FeatureNames = []string{"soil_moisture", "temperature", "humidity", "light", "rainfall"}

func (r FeatureRow) Vector() []float64 {
	return []float64{r.SoilMoisture, r.Temperature, r.Humidity, r.Light, r.Rainfall}
}

type TrainingSample struct {
	Date  Date       `json:"date"`
	Row   FeatureRow `json:"features"`
	Label int        `json:"label"`
}

// HubInputs are the fetched aggregates for one hub over a day range.
type HubInputs struct {
	Hourly map[models.SensorType][]HourlyAverage
	Days   SensorDays
	Rain   map[Date]DailyRainMatch
}

// RowFor assembles the feature row of one day. This is the single place where absent
// data becomes 0.
func (in *HubInputs) RowFor(d Date) FeatureRow {
	value := func(st models.SensorType) float64 {
		return in.Days[st][d]
	}
	row := FeatureRow{
		SoilMoisture: value(models.SensorTypeSoilMoisture),
		Temperature:  value(models.SensorTypeTemperature),
		Humidity:     value(models.SensorTypeHumidity),
		Light:        value(models.SensorTypeLight),
	}
	if m, ok := in.Rain[d]; ok {
		row.Rainfall = m.Value
	}
	return row
}

// AssembleTrainingSet returns exactly windowDays samples, today first.
func AssembleTrainingSet(today Date, windowDays int, in *HubInputs) []TrainingSample {
	samples := make([]TrainingSample, 0, windowDays)
	for i := range windowDays {
		d := today.AddDays(-i)
		row := in.RowFor(d)
		samples = append(samples, TrainingSample{Date: d, Row: row, Label: Decide(row, d)})
	}
	return samples
}

// RainScope selects which rainfall records FetchHubInputs matches against.
type RainScope int

const (
	// RainAllRecords loads the whole rainfall table in one query.
	RainAllRecords RainScope = iota
	// RainWindowOnly queries only the records inside [from, to].
	RainWindowOnly
)

// FetchHubInputs runs the four sensor aggregations and the rainfall match concurrently and
// returns only once all of them have finished. Any failure fails the whole fetch.
func (c *Core) FetchHubInputs(ctx context.Context, hub models.Hub, from, to Date, scope RainScope) (*HubInputs, error) {
	g, gctx := errgroup.WithContext(ctx)

	hourly := make([][]HourlyAverage, len(models.PlantSensorTypes))
	for i, st := range models.PlantSensorTypes {
		g.Go(func() error {
			h, err := c.Aggregate(gctx, hub.ID, st, from.Start(), to.End())
			if err != nil {
				return err
			}
			hourly[i] = h
			return nil
		})
	}

	var rain map[Date]DailyRainMatch
	g.Go(func() error {
		var m map[Date]DailyRainMatch
		var err error
		if scope == RainWindowOnly {
			m, err = c.ClosestRainPerDayBetween(gctx, hub.Lat, hub.Lng, from.Start(), to.End())
		} else {
			m, err = c.ClosestRainPerDay(gctx, hub.Lat, hub.Lng)
		}
		if err != nil {
			return &HubError{HubID: hub.ID, Err: err}
		}
		rain = m
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	in := &HubInputs{
		Hourly: make(map[models.SensorType][]HourlyAverage, len(hourly)),
		Days:   make(SensorDays, len(hourly)),
		Rain:   rain,
	}
	for i, st := range models.PlantSensorTypes {
		in.Hourly[st] = hourly[i]
		in.Days[st] = DailyValues(hourly[i])
	}
	return in, nil
}

// BuildTrainingSet fetches windowDays of inputs ending today for the hub at (lat, lng) and
// labels every day with Decide.
func (c *Core) BuildTrainingSet(ctx context.Context, hubID string, lat, lng float64, windowDays int) ([]TrainingSample, error) {
	if windowDays <= 0 {
		windowDays = c.windowDays()
	}
	logger := common.GetLoggerWith(
		common.LoggerNameIrrigationCore,
		zap.String(common.LoggerFieldIrrigationCategory, common.LoggerCategoryTraining),
	)

	today := c.today()
	hub := models.Hub{ID: hubID, Lat: lat, Lng: lng}
	in, err := c.FetchHubInputs(ctx, hub, today.AddDays(-(windowDays - 1)), today, RainAllRecords)
	if err != nil {
		return nil, fmt.Errorf("fetch training inputs: %w", err)
	}

	samples := AssembleTrainingSet(today, windowDays, in)

	positives := common.Reducer(samples, func(acc int, s TrainingSample) int { return acc + s.Label }, 0)
	logger.Info("Built training set for hub",
		zap.String("hub_id", hubID),
		zap.Int("samples", len(samples)),
		zap.Int("irrigate_labels", positives))

	return samples, nil
}
