package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Singleton(t *testing.T) {
	a := Pipeline()
	b := Pipeline()
	assert.Same(t, a, b)
}

func TestPipeline_CountersExposed(t *testing.T) {
	m := Pipeline()
	before := testutil.ToFloat64(m.TrainingsTotal.WithLabelValues("success"))
	m.TrainingsTotal.WithLabelValues("success").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(m.TrainingsTotal.WithLabelValues("success")))

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "irrigation_training_runs_total")
	assert.Contains(t, string(body), "go_goroutines")
}
