package irrigation

import (
	"context"
	"time"

	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

func (c *Core) allRainfallRecords(ctx context.Context) ([]models.RainfallRecord, error) {
	defer observeQuery("rainfall_all").ObserveDuration()

	var records []models.RainfallRecord
	err := c.Db.Conn.WithContext(ctx).
		Order("id asc").
		Find(&records).Error
	return records, err
}

func (c *Core) rainfallRecordsBetween(ctx context.Context, start, end time.Time) ([]models.RainfallRecord, error) {
	defer observeQuery("rainfall_range").ObserveDuration()

	var records []models.RainfallRecord
	err := c.Db.Conn.WithContext(ctx).
		Where("timestamp BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Order("id asc").
		Find(&records).Error
	return records, err
}

func (c *Core) addRainfallRecords(ctx context.Context, records []models.RainfallRecord) error {
	if len(records) == 0 {
		return nil
	}
	for i := range records {
		records[i].Timestamp = records[i].Timestamp.UTC()
	}
	return c.Db.Conn.WithContext(ctx).CreateInBatches(records, 500).Error
}

type IRainfallImpl struct {
	core *Core
}

func (ir *IRainfallImpl) AllRecords(ctx context.Context) ([]models.RainfallRecord, error) {
	return ir.core.allRainfallRecords(ctx)
}

func (ir *IRainfallImpl) RecordsBetween(ctx context.Context, start, end time.Time) ([]models.RainfallRecord, error) {
	return ir.core.rainfallRecordsBetween(ctx, start, end)
}

func (ir *IRainfallImpl) AddRecords(ctx context.Context, records []models.RainfallRecord) error {
	return ir.core.addRainfallRecords(ctx, records)
}

func (c *Core) GetIRainfall() IRainfall {
	return &IRainfallImpl{core: c}
}
