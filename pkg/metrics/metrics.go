// Package metrics exposes Prometheus collectors for the irrigation pipeline.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const Namespace = "irrigation"

// Registry is the process wide registry served on /metrics.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

func MustRegister(collectors ...prometheus.Collector) {
	Registry.MustRegister(collectors...)
}

type PipelineMetrics struct {
	TrainingsTotal       *prometheus.CounterVec
	TrainingDuration     prometheus.Histogram
	TrainingSamples      prometheus.Histogram
	PredictionsTotal     *prometheus.CounterVec
	StoreQueryDuration   *prometheus.HistogramVec
	BatchHubsInFlight    prometheus.Gauge
	LastBatchCompletedAt prometheus.Gauge
}

var (
	pipeline     *PipelineMetrics
	pipelineOnce sync.Once
)

// Pipeline returns the pipeline collectors, registering them on first use.
func Pipeline() *PipelineMetrics {
	pipelineOnce.Do(func() {
		pipeline = newPipelineMetrics(Namespace)
		MustRegister(
			pipeline.TrainingsTotal,
			pipeline.TrainingDuration,
			pipeline.TrainingSamples,
			pipeline.PredictionsTotal,
			pipeline.StoreQueryDuration,
			pipeline.BatchHubsInFlight,
			pipeline.LastBatchCompletedAt,
		)
	})
	return pipeline
}

func newPipelineMetrics(namespace string) *PipelineMetrics {
	return &PipelineMetrics{
		TrainingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "training",
				Name:      "runs_total",
				Help:      "Total number of per-hub training runs",
			},
			[]string{"status"}, // status: success, error, skipped
		),
		TrainingDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "training",
				Name:      "duration_seconds",
				Help:      "Duration of a single hub training run",
				Buckets:   prometheus.DefBuckets,
			},
		),
		TrainingSamples: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "training",
				Name:      "samples",
				Help:      "Number of samples a hub model was fit on",
				Buckets:   []float64{10, 30, 60, 100, 200, 365},
			},
		),
		PredictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "prediction",
				Name:      "requests_total",
				Help:      "Total number of irrigation predictions",
			},
			[]string{"source", "status"}, // source: model, rule
		),
		StoreQueryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "query_duration_seconds",
				Help:      "Duration of reading and rainfall store queries",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"query"},
		),
		BatchHubsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "hubs_in_flight",
				Help:      "Number of hubs currently being trained by a batch run",
			},
		),
		LastBatchCompletedAt: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "batch",
				Name:      "last_completed_timestamp_seconds",
				Help:      "Unix time the last batch training run finished",
			},
		),
	}
}
