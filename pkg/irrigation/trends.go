package irrigation

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
	"github.com/nelsonchoo456/lepark-sub001/pkg/trend"
)

type TrendReport struct {
	trend.Result
	SensorID   string            `json:"sensor_id,omitempty"`
	ZoneID     uint              `json:"zone_id,omitempty"`
	SensorType models.SensorType `json:"sensor_type"`
	Hours      int               `json:"hours"`
	Unit       string            `json:"unit"`
}

func toTrendPoints(points []ReadingPoint) []trend.Point {
	return common.Mapper(points, func(p ReadingPoint) trend.Point {
		return trend.Point{Timestamp: p.Timestamp, Value: p.Value}
	})
}

// SensorTrend analyzes one sensor's readings over the last hours.
func (c *Core) SensorTrend(ctx context.Context, sensorID string, hours int) (*TrendReport, error) {
	if c.Hubs == nil || c.Readings == nil {
		return nil, fmt.Errorf("trend: %w", ErrStoreUnavailable)
	}
	sensor, err := c.Hubs.GetSensor(ctx, sensorID)
	if err != nil {
		return nil, err
	}

	since := c.now().Add(-time.Duration(hours) * time.Hour)
	points, err := c.Readings.SensorReadingsSince(ctx, sensorID, since)
	if err != nil {
		return nil, fmt.Errorf("query sensor readings: %w", err)
	}

	res := trend.Analyze(toTrendPoints(points))
	c.logTrend("sensor", sensorID, res)

	return &TrendReport{
		Result:     res,
		SensorID:   sensorID,
		SensorType: sensor.SensorType,
		Hours:      hours,
		Unit:       sensor.SensorType.Unit(),
	}, nil
}

// ZoneTrend analyzes all readings of one sensor type within a zone over the last hours.
// Readings spanning less than half the window are reported as an insufficient time span.
func (c *Core) ZoneTrend(ctx context.Context, zoneID uint, sensorType models.SensorType, hours int) (*TrendReport, error) {
	if c.Readings == nil {
		return nil, fmt.Errorf("trend: %w", ErrStoreUnavailable)
	}
	window := time.Duration(hours) * time.Hour
	points, err := c.Readings.ZoneReadingsSince(ctx, zoneID, sensorType, c.now().Add(-window))
	if err != nil {
		return nil, fmt.Errorf("query zone readings: %w", err)
	}

	res := trend.AnalyzeWindow(toTrendPoints(points), window)
	c.logTrend("zone", fmt.Sprint(zoneID), res)

	return &TrendReport{
		Result:     res,
		ZoneID:     zoneID,
		SensorType: sensorType,
		Hours:      hours,
		Unit:       sensorType.Unit(),
	}, nil
}

func (c *Core) logTrend(scope, id string, res trend.Result) {
	logger := common.GetLoggerWith(
		common.LoggerNameIrrigationCore,
		zap.String(common.LoggerFieldIrrigationCategory, common.LoggerCategoryTrend),
	)
	logger.Debug("Analyzed trend",
		zap.String("scope", scope),
		zap.String("id", id),
		zap.String("direction", string(res.Direction)),
		zap.Int("readings", res.ReadingsCount))
}
