package irrigation

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/metrics"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

// ReadingPoint is a single timestamped value, detached from its sensor row.
type ReadingPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

func observeQuery(query string) *prometheus.Timer {
	return prometheus.NewTimer(metrics.Pipeline().StoreQueryDuration.WithLabelValues(query))
}

func (c *Core) queryReadings(ctx context.Context, hubID string, sensorType models.SensorType, start, end time.Time) ([]ReadingPoint, error) {
	defer observeQuery("hub_readings").ObserveDuration()

	var points []ReadingPoint
	err := c.Db.Conn.WithContext(ctx).
		Model(&models.SensorReading{}).
		Select("sensor_readings.timestamp, sensor_readings.value").
		Joins("JOIN sensors ON sensors.id = sensor_readings.sensor_id").
		Where("sensors.hub_id = ? AND sensors.sensor_type = ?", hubID, sensorType).
		Where("sensor_readings.timestamp BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Order("sensor_readings.timestamp asc").
		Scan(&points).Error
	return points, err
}

func (c *Core) sensorReadingsSince(ctx context.Context, sensorID string, since time.Time) ([]ReadingPoint, error) {
	defer observeQuery("sensor_readings").ObserveDuration()

	var points []ReadingPoint
	err := c.Db.Conn.WithContext(ctx).
		Model(&models.SensorReading{}).
		Select("timestamp, value").
		Where("sensor_id = ? AND timestamp >= ?", sensorID, since.UTC()).
		Order("timestamp asc").
		Scan(&points).Error
	return points, err
}

func (c *Core) zoneReadingsSince(ctx context.Context, zoneID uint, sensorType models.SensorType, since time.Time) ([]ReadingPoint, error) {
	defer observeQuery("zone_readings").ObserveDuration()

	var points []ReadingPoint
	err := c.Db.Conn.WithContext(ctx).
		Model(&models.SensorReading{}).
		Select("sensor_readings.timestamp, sensor_readings.value").
		Joins("JOIN sensors ON sensors.id = sensor_readings.sensor_id").
		Where("sensors.zone_id = ? AND sensors.sensor_type = ?", zoneID, sensorType).
		Where("sensor_readings.timestamp >= ?", since.UTC()).
		Order("sensor_readings.timestamp asc").
		Scan(&points).Error
	return points, err
}

func (c *Core) addReadings(ctx context.Context, readings []models.SensorReading) error {
	if len(readings) == 0 {
		return nil
	}
	for i := range readings {
		readings[i].Timestamp = readings[i].Timestamp.UTC()
	}

	logger := common.GetLoggerWith(
		common.LoggerNameIrrigationCore,
		zap.String(common.LoggerFieldIrrigationCategory, common.LoggerCategoryAggregate),
	)

	if err := c.Db.Conn.WithContext(ctx).CreateInBatches(readings, 500).Error; err != nil {
		return err
	}

	logger.Debug("Stored sensor readings", zap.Int("count", len(readings)))
	return nil
}

type ISensorReadingsImpl struct {
	core *Core
}

func (ir *ISensorReadingsImpl) QueryReadings(ctx context.Context, hubID string, sensorType models.SensorType, start, end time.Time) ([]ReadingPoint, error) {
	return ir.core.queryReadings(ctx, hubID, sensorType, start, end)
}

func (ir *ISensorReadingsImpl) SensorReadingsSince(ctx context.Context, sensorID string, since time.Time) ([]ReadingPoint, error) {
	return ir.core.sensorReadingsSince(ctx, sensorID, since)
}

func (ir *ISensorReadingsImpl) ZoneReadingsSince(ctx context.Context, zoneID uint, sensorType models.SensorType, since time.Time) ([]ReadingPoint, error) {
	return ir.core.zoneReadingsSince(ctx, zoneID, sensorType, since)
}

func (ir *ISensorReadingsImpl) AddReadings(ctx context.Context, readings []models.SensorReading) error {
	return ir.core.addReadings(ctx, readings)
}

func (c *Core) GetISensorReadings() ISensorReadings {
	return &ISensorReadingsImpl{core: c}
}
