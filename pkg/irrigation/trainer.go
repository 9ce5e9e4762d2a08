package irrigation

import (
	"fmt"
	"time"

	"github.com/nelsonchoo456/lepark-sub001/pkg/forest"
)

type TrainedModel struct {
	HubID       string
	Forest      *forest.Forest
	SampleCount int
	TrainedAt   time.Time
}

func (m *TrainedModel) Predict(row FeatureRow) (float64, error) {
	return m.Forest.Predict(row.Vector())
}

// ForestConfig is the fixed ensemble every hub model is trained with.
func ForestConfig() forest.Config {
	return forest.Config{
		NEstimators:     100,
		MaxDepth:        10,
		MinSamplesSplit: 2,
		Seed:            42,
	}
}

// Fit trains a hub model on samples. Samples are used in the order given.
func Fit(hubID string, samples []TrainingSample, trainedAt time.Time) (*TrainedModel, error) {
	if len(samples) == 0 {
		return nil, &HubError{HubID: hubID, Err: ErrTrainingInputEmpty}
	}

	x := make([][]float64, len(samples))
	y := make([]float64, len(samples))
	for i, s := range samples {
		x[i] = s.Row.Vector()
		y[i] = float64(s.Label)
	}

	f, err := forest.Fit(x, y, ForestConfig())
	if err != nil {
		return nil, &HubError{HubID: hubID, Err: fmt.Errorf("fit forest: %w", err)}
	}

	return &TrainedModel{
		HubID:       hubID,
		Forest:      f,
		SampleCount: len(samples),
		TrainedAt:   trainedAt.UTC(),
	}, nil
}
