package forest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepData() ([][]float64, []float64) {
	var x [][]float64
	var y []float64
	for i := range 60 {
		v := float64(i)
		x = append(x, []float64{v, math.Mod(v*7, 13)})
		if v < 30 {
			y = append(y, 1)
		} else {
			y = append(y, 0)
		}
	}
	return x, y
}

func TestFit_EmptyInput(t *testing.T) {
	_, err := Fit(nil, nil, DefaultConfig())
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestFit_DimensionMismatch(t *testing.T) {
	_, err := Fit([][]float64{{1, 2}, {3}}, []float64{1, 2}, DefaultConfig())
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Fit([][]float64{{1, 2}}, []float64{1, 2}, DefaultConfig())
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestFit_ConstantTargets(t *testing.T) {
	x := [][]float64{{50, 30, 85, 100, 0}, {50, 30, 85, 100, 0}, {51, 31, 84, 90, 0}}
	y := []float64{1, 1, 1}

	f, err := Fit(x, y, DefaultConfig())
	require.NoError(t, err)
	assert.Len(t, f.Trees, 100)

	p, err := f.Predict([]float64{50, 30, 85, 100, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)
}

func TestFit_LearnsStep(t *testing.T) {
	x, y := stepData()

	f, err := Fit(x, y, DefaultConfig())
	require.NoError(t, err)

	low, err := f.Predict([]float64{5, 9})
	require.NoError(t, err)
	high, err := f.Predict([]float64{55, 2})
	require.NoError(t, err)

	assert.Greater(t, low, 0.9)
	assert.Less(t, high, 0.1)
}

func TestFit_Deterministic(t *testing.T) {
	x, y := stepData()

	a, err := Fit(x, y, DefaultConfig())
	require.NoError(t, err)
	b, err := Fit(x, y, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, a.Trees, b.Trees)

	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.MaxFeatures = 1
	c, err := Fit(x, y, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, a.Trees, c.Trees)
}

func TestFit_MaxDepth(t *testing.T) {
	x, y := stepData()
	for i := range y {
		y[i] = float64(i * i)
	}

	cfg := DefaultConfig()
	cfg.MaxDepth = 2
	cfg.NEstimators = 5
	f, err := Fit(x, y, cfg)
	require.NoError(t, err)

	for _, tree := range f.Trees {
		// a binary tree of depth 2 has at most 7 nodes
		assert.LessOrEqual(t, len(tree.Nodes), 7)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	x, y := stepData()
	f, err := Fit(x, y, DefaultConfig())
	require.NoError(t, err)

	data, err := f.Marshal()
	require.NoError(t, err)

	g, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, f.Config, g.Config)

	for _, row := range [][]float64{{0, 0}, {12.5, 3}, {29.5, 11}, {30.5, 1}, {100, 100}} {
		want, err := f.Predict(row)
		require.NoError(t, err)
		got, err := g.Predict(row)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestUnmarshal_Invalid(t *testing.T) {
	_, err := Unmarshal([]byte("not json"))
	assert.Error(t, err)

	_, err = Unmarshal([]byte(`{"n_features":1,"trees":[{"nodes":[]}]}`))
	assert.ErrorContains(t, err, "empty node table")

	_, err = Unmarshal([]byte(`{"n_features":1,"trees":[{"nodes":[{"value":1,"left":5,"right":6}]}]}`))
	assert.ErrorContains(t, err, "child index out of range")

	_, err = Unmarshal([]byte(`{"n_features":5,"trees":[{"nodes":[{"feature":9,"threshold":1,"left":1,"right":2},{"leaf":true,"value":0},{"leaf":true,"value":1}]}]}`))
	assert.ErrorContains(t, err, "split feature out of range")

	_, err = Unmarshal([]byte(`{"n_features":5,"trees":[{"nodes":[{"feature":-1,"threshold":1,"left":1,"right":2},{"leaf":true,"value":0},{"leaf":true,"value":1}]}]}`))
	assert.ErrorContains(t, err, "split feature out of range")

	_, err = Unmarshal([]byte(`{"n_features":0,"trees":[{"nodes":[{"leaf":true,"value":1}]}]}`))
	assert.ErrorContains(t, err, "no features")
}

func TestPredict_DimensionMismatch(t *testing.T) {
	f, err := Fit([][]float64{{1, 2}}, []float64{3}, DefaultConfig())
	require.NoError(t, err)

	_, err = f.Predict([]float64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
