package irrigation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/metrics"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

type HubStatus string

const (
	HubStatusTrained   HubStatus = "trained"
	HubStatusFailed    HubStatus = "failed"
	HubStatusCancelled HubStatus = "cancelled"
)

type HubReport struct {
	HubID       string    `json:"hub_id"`
	Status      HubStatus `json:"status"`
	SampleCount int       `json:"sample_count,omitempty"`
	Error       string    `json:"error,omitempty"`
	Err         error     `json:"-"`
}

type BatchReport struct {
	StartedAt  time.Time   `json:"started_at"`
	FinishedAt time.Time   `json:"finished_at"`
	Hubs       []HubReport `json:"hubs"`
	Trained    int         `json:"trained"`
	Failed     int         `json:"failed"`
	Cancelled  int         `json:"cancelled"`
}

// TrainHub builds the hub's training set, fits a model and saves it. Nothing is saved
// unless the fit succeeds, so the previous model stays in place on failure.
func (c *Core) TrainHub(ctx context.Context, hub models.Hub) (*TrainedModel, error) {
	if c.Models == nil {
		return nil, fmt.Errorf("models: %w", ErrStoreUnavailable)
	}

	logger := common.GetLoggerWith(
		common.LoggerNameIrrigationCore,
		zap.String(common.LoggerFieldIrrigationCategory, common.LoggerCategoryTraining),
	)

	unlock := c.hubLocks().Lock(hub.ID)
	defer unlock()

	pm := metrics.Pipeline()
	start := time.Now()

	samples, err := c.BuildTrainingSet(ctx, hub.ID, hub.Lat, hub.Lng, c.windowDays())
	if err != nil {
		pm.TrainingsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	m, err := Fit(hub.ID, samples, c.now())
	if err != nil {
		pm.TrainingsTotal.WithLabelValues("error").Inc()
		logger.Error("Training failed for hub", zap.String("hub_id", hub.ID), zap.Error(err))
		return nil, err
	}

	if err := c.Models.Save(ctx, m); err != nil {
		pm.TrainingsTotal.WithLabelValues("error").Inc()
		return nil, &HubError{HubID: hub.ID, Err: fmt.Errorf("save model: %w", err)}
	}

	pm.TrainingsTotal.WithLabelValues("success").Inc()
	pm.TrainingDuration.Observe(time.Since(start).Seconds())
	pm.TrainingSamples.Observe(float64(m.SampleCount))

	logger.Info("Model trained for hub",
		zap.String("hub_id", hub.ID),
		zap.Int("sample_count", m.SampleCount),
		zap.Duration("took", time.Since(start)))

	return m, nil
}

func (c *Core) TrainHubByID(ctx context.Context, hubID string) (*TrainedModel, error) {
	if c.Hubs == nil {
		return nil, fmt.Errorf("hubs: %w", ErrStoreUnavailable)
	}
	hub, err := c.Hubs.GetHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	return c.TrainHub(ctx, *hub)
}

// TrainAll trains every hub on a bounded pool of workers. One hub failing never stops the
// others. Once ctx is cancelled no further hub is started; hubs already running finish.
func (c *Core) TrainAll(ctx context.Context) (*BatchReport, error) {
	if c.Hubs == nil {
		return nil, fmt.Errorf("hubs: %w", ErrStoreUnavailable)
	}

	logger := common.GetLoggerWith(
		common.LoggerNamePipelineBatch,
		zap.String(common.LoggerFieldIrrigationCategory, common.LoggerCategoryTraining),
	)

	hubs, err := c.Hubs.ListHubs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list hubs: %w", err)
	}

	report := &BatchReport{
		StartedAt: c.now(),
		Hubs:      make([]HubReport, len(hubs)),
	}
	pm := metrics.Pipeline()

	logger.Info("Starting batch training", zap.Int("hubs", len(hubs)), zap.Int("workers", c.workers()))

	var g errgroup.Group
	g.SetLimit(c.workers())

	// running hubs are detached from ctx so that cancellation only stops new hubs
	hubCtx := context.WithoutCancel(ctx)

	for i, hub := range hubs {
		report.Hubs[i] = HubReport{HubID: hub.ID, Status: HubStatusCancelled}
		if ctx.Err() != nil {
			continue
		}
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			pm.BatchHubsInFlight.Inc()
			defer pm.BatchHubsInFlight.Dec()

			m, err := c.TrainHub(hubCtx, hub)
			if err != nil {
				report.Hubs[i] = HubReport{HubID: hub.ID, Status: HubStatusFailed, Error: err.Error(), Err: err}
				logger.Warn("Hub failed in batch", zap.String("hub_id", hub.ID), zap.Error(err))
				return nil
			}
			report.Hubs[i] = HubReport{HubID: hub.ID, Status: HubStatusTrained, SampleCount: m.SampleCount}
			return nil
		})
	}
	_ = g.Wait()

	for _, h := range report.Hubs {
		switch h.Status {
		case HubStatusTrained:
			report.Trained++
		case HubStatusFailed:
			report.Failed++
		case HubStatusCancelled:
			report.Cancelled++
		}
	}
	report.FinishedAt = c.now()
	pm.LastBatchCompletedAt.Set(float64(report.FinishedAt.Unix()))

	logger.Info("Batch training finished",
		zap.Int("trained", report.Trained),
		zap.Int("failed", report.Failed),
		zap.Int("cancelled", report.Cancelled))

	if report.Cancelled > 0 {
		return report, ctx.Err()
	}
	return report, nil
}

// RunRetrainLoop calls TrainAll every interval until ctx is done.
func (c *Core) RunRetrainLoop(ctx context.Context, interval time.Duration) {
	logger := common.GetLoggerWith(
		common.LoggerNamePipelineBatch,
		zap.String(common.LoggerFieldIrrigationCategory, common.LoggerCategoryTraining),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := c.TrainAll(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("Scheduled retrain failed", zap.Error(err))
			}
		}
	}
}

type ModelInfo struct {
	HubID       string    `json:"hub_id"`
	SampleCount int       `json:"sample_count"`
	TrainedAt   time.Time `json:"trained_at"`
	Trees       int       `json:"trees"`
}

func (c *Core) GetModel(ctx context.Context, hubID string) (*ModelInfo, error) {
	if c.Models == nil {
		return nil, fmt.Errorf("models: %w", ErrStoreUnavailable)
	}
	m, found, err := c.Models.Load(ctx, hubID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &HubError{HubID: hubID, Err: ErrModelNotFound}
	}
	return &ModelInfo{
		HubID:       m.HubID,
		SampleCount: m.SampleCount,
		TrainedAt:   m.TrainedAt,
		Trees:       len(m.Forest.Trees),
	}, nil
}

type HubHistory struct {
	HubID    string                                `json:"hub_id"`
	From     Date                                  `json:"from"`
	To       Date                                  `json:"to"`
	Sensors  map[models.SensorType][]HourlyAverage `json:"sensors"`
	Rainfall []DailyRainMatch                      `json:"rainfall"`
}

// History returns a hub's hourly sensor averages and matched daily rainfall over the whole
// UTC days covering [start, end].
func (c *Core) History(ctx context.Context, hubID string, start, end time.Time) (*HubHistory, error) {
	if c.Hubs == nil {
		return nil, fmt.Errorf("hubs: %w", ErrStoreUnavailable)
	}
	hub, err := c.Hubs.GetHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	from, to := DateOf(start), DateOf(end)

	in, err := c.FetchHubInputs(ctx, *hub, from, to, RainWindowOnly)
	if err != nil {
		return nil, err
	}

	return &HubHistory{
		HubID:    hubID,
		From:     from,
		To:       to,
		Sensors:  in.Hourly,
		Rainfall: SortedMatches(in.Rain),
	}, nil
}

// TrainingSetForHub builds the current training set of a stored hub.
func (c *Core) TrainingSetForHub(ctx context.Context, hubID string) ([]TrainingSample, error) {
	if c.Hubs == nil {
		return nil, fmt.Errorf("hubs: %w", ErrStoreUnavailable)
	}
	hub, err := c.Hubs.GetHub(ctx, hubID)
	if err != nil {
		return nil, err
	}
	return c.BuildTrainingSet(ctx, hub.ID, hub.Lat, hub.Lng, c.windowDays())
}
