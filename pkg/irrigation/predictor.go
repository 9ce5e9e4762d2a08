package irrigation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/metrics"
)

// IrrigateThreshold is the prediction value at or above which a hub should be watered.
const IrrigateThreshold = 0.5

type PredictionSource string

const (
	PredictionSourceModel PredictionSource = "model"
	PredictionSourceRule  PredictionSource = "rule"
)

type Prediction struct {
	HubID    string           `json:"hub_id"`
	Date     Date             `json:"date"`
	Value    float64          `json:"value"`
	Irrigate bool             `json:"irrigate"`
	Source   PredictionSource `json:"source"`
	Forecast string           `json:"forecast,omitempty"`
	Features FeatureRow       `json:"features"`
}

var rainyForecasts = map[string]struct{}{
	"light rain":             {},
	"moderate rain":          {},
	"heavy rain":             {},
	"passing showers":        {},
	"light showers":          {},
	"showers":                {},
	"heavy showers":          {},
	"thundery showers":       {},
	"heavy thundery showers": {},
	"heavy thundery showers with gusty winds": {},
}

// RainfallFromForecast maps a forecast text to the rainfall feature: RainfallSentinel for
// rain and showers, 0 otherwise.
func RainfallFromForecast(forecast string) float64 {
	if _, ok := rainyForecasts[strings.ToLower(strings.TrimSpace(forecast))]; ok {
		return RainfallSentinel
	}
	return 0
}

// Predict runs the hub's stored model on row. A hub without a model yields an error
// wrapping ErrModelNotFound.
func (c *Core) Predict(ctx context.Context, hubID string, row FeatureRow) (float64, error) {
	if c.Models == nil {
		return 0, fmt.Errorf("models: %w", ErrStoreUnavailable)
	}
	m, found, err := c.Models.Load(ctx, hubID)
	if err != nil {
		return 0, fmt.Errorf("load model: %w", err)
	}
	if !found {
		return 0, &HubError{HubID: hubID, Err: ErrModelNotFound}
	}
	return m.Predict(row)
}

// TodayFeatures builds today's feature row for a hub. A non-empty forecast replaces the
// matched rainfall with RainfallFromForecast.
func (c *Core) TodayFeatures(ctx context.Context, hubID, forecast string) (Date, FeatureRow, error) {
	today := c.today()
	if c.Hubs == nil {
		return today, FeatureRow{}, fmt.Errorf("hubs: %w", ErrStoreUnavailable)
	}
	hub, err := c.Hubs.GetHub(ctx, hubID)
	if err != nil {
		return today, FeatureRow{}, err
	}
	in, err := c.FetchHubInputs(ctx, *hub, today, today, RainWindowOnly)
	if err != nil {
		return today, FeatureRow{}, err
	}
	row := in.RowFor(today)
	if forecast != "" {
		row.Rainfall = RainfallFromForecast(forecast)
	}
	return today, row, nil
}

func (c *Core) PredictToday(ctx context.Context, hubID, forecast string) (*Prediction, error) {
	return c.predictToday(ctx, hubID, forecast, false)
}

// PredictOrRule is PredictToday, falling back to Decide when the hub has no model.
func (c *Core) PredictOrRule(ctx context.Context, hubID, forecast string) (*Prediction, error) {
	return c.predictToday(ctx, hubID, forecast, true)
}

func (c *Core) predictToday(ctx context.Context, hubID, forecast string, ruleFallback bool) (*Prediction, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameIrrigationCore,
		zap.String(common.LoggerFieldIrrigationCategory, common.LoggerCategoryPrediction),
	)

	today, row, err := c.TodayFeatures(ctx, hubID, forecast)
	if err != nil {
		return nil, err
	}

	p := &Prediction{
		HubID:    hubID,
		Date:     today,
		Source:   PredictionSourceModel,
		Forecast: forecast,
		Features: row,
	}

	value, err := c.Predict(ctx, hubID, row)
	switch {
	case err == nil:
		p.Value = value
		p.Irrigate = value >= IrrigateThreshold
	case ruleFallback && errors.Is(err, ErrModelNotFound):
		logger.Warn("No model found for hub, using rule", zap.String("hub_id", hubID))
		label := Decide(row, today)
		p.Source = PredictionSourceRule
		p.Value = float64(label)
		p.Irrigate = label == 1
	default:
		metrics.Pipeline().PredictionsTotal.WithLabelValues(string(PredictionSourceModel), "error").Inc()
		return nil, err
	}

	metrics.Pipeline().PredictionsTotal.WithLabelValues(string(p.Source), "success").Inc()
	logger.Info("Predicted irrigation for hub", zap.Reflect("prediction", p))

	return p, nil
}
