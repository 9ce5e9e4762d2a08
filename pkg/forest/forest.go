// Package forest implements a bagged ensemble of regression trees.
//
// Each tree is grown on a bootstrap sample of the training rows, splitting on the
// threshold that minimizes the summed squared error of the two children. A forest
// predicts the mean of its trees. Training is fully determined by Config.Seed, and a
// forest survives a JSON round trip without changing any prediction.
package forest

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	ErrEmptyInput        = errors.New("forest: no training rows")
	ErrDimensionMismatch = errors.New("forest: feature dimension mismatch")
)

type Config struct {
	NEstimators     int    `json:"n_estimators"`
	MaxDepth        int    `json:"max_depth"`
	MinSamplesSplit int    `json:"min_samples_split"`
	MaxFeatures     int    `json:"max_features"` // 0 means every feature is tried at each split
	Seed            uint64 `json:"seed"`
}

func DefaultConfig() Config {
	return Config{
		NEstimators:     100,
		MaxDepth:        10,
		MinSamplesSplit: 2,
		Seed:            42,
	}
}

type Forest struct {
	Config    Config `json:"config"`
	NFeatures int    `json:"n_features"`
	Trees     []Tree `json:"trees"`
}

// Fit grows cfg.NEstimators trees over the rows of x with targets y.
func Fit(x [][]float64, y []float64, cfg Config) (*Forest, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(x) != len(y) {
		return nil, fmt.Errorf("%w: %d rows, %d targets", ErrDimensionMismatch, len(x), len(y))
	}
	nFeatures := len(x[0])
	for i, row := range x {
		if len(row) != nFeatures {
			return nil, fmt.Errorf("%w: row %d has %d features, want %d", ErrDimensionMismatch, i, len(row), nFeatures)
		}
	}
	if cfg.NEstimators <= 0 {
		cfg.NEstimators = DefaultConfig().NEstimators
	}
	if cfg.MinSamplesSplit < 2 {
		cfg.MinSamplesSplit = 2
	}
	if cfg.MaxFeatures <= 0 || cfg.MaxFeatures > nFeatures {
		cfg.MaxFeatures = nFeatures
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	f := &Forest{
		Config:    cfg,
		NFeatures: nFeatures,
		Trees:     make([]Tree, 0, cfg.NEstimators),
	}
	n := len(x)
	for range cfg.NEstimators {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.IntN(n)
		}
		b := &builder{x: x, y: y, cfg: cfg, rng: rng}
		b.grow(sample, 0)
		f.Trees = append(f.Trees, Tree{Nodes: b.nodes})
	}
	return f, nil
}

// Predict returns the mean prediction of all trees for one feature row.
func (f *Forest) Predict(row []float64) (float64, error) {
	if len(row) != f.NFeatures {
		return 0, fmt.Errorf("%w: got %d features, want %d", ErrDimensionMismatch, len(row), f.NFeatures)
	}
	if len(f.Trees) == 0 {
		return 0, ErrEmptyInput
	}
	var sum float64
	for i := range f.Trees {
		sum += f.Trees[i].predict(row)
	}
	return sum / float64(len(f.Trees)), nil
}

func (f *Forest) Marshal() ([]byte, error) {
	return json.Marshal(f)
}

func Unmarshal(data []byte) (*Forest, error) {
	var f Forest
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("forest: decode: %w", err)
	}
	if f.NFeatures <= 0 {
		return nil, errors.New("forest: no features")
	}
	for ti, t := range f.Trees {
		if err := t.validate(f.NFeatures); err != nil {
			return nil, fmt.Errorf("forest: tree %d: %w", ti, err)
		}
	}
	return &f, nil
}
