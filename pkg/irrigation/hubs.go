package irrigation

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

func (c *Core) listHubs(ctx context.Context) ([]models.Hub, error) {
	var hubs []models.Hub
	err := c.Db.Conn.WithContext(ctx).Order("id asc").Find(&hubs).Error
	return hubs, err
}

func (c *Core) getHub(ctx context.Context, hubID string) (*models.Hub, error) {
	var hub models.Hub
	err := c.Db.Conn.WithContext(ctx).First(&hub, "id = ?", hubID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &HubError{HubID: hubID, Err: ErrHubNotFound}
	}
	if err != nil {
		return nil, err
	}
	return &hub, nil
}

func (c *Core) getSensor(ctx context.Context, sensorID string) (*models.Sensor, error) {
	var sensor models.Sensor
	err := c.Db.Conn.WithContext(ctx).First(&sensor, "id = ?", sensorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("sensor %s: %w", sensorID, ErrSensorNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &sensor, nil
}

func (c *Core) upsertHub(ctx context.Context, hub *models.Hub) error {
	return c.Db.Conn.WithContext(ctx).Omit("Sensors").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(hub).Error
}

func (c *Core) upsertSensor(ctx context.Context, sensor *models.Sensor) error {
	return c.Db.Conn.WithContext(ctx).Omit("Readings").Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(sensor).Error
}

type IHubsImpl struct {
	core *Core
}

func (ih *IHubsImpl) ListHubs(ctx context.Context) ([]models.Hub, error) {
	return ih.core.listHubs(ctx)
}

func (ih *IHubsImpl) GetHub(ctx context.Context, hubID string) (*models.Hub, error) {
	return ih.core.getHub(ctx, hubID)
}

func (ih *IHubsImpl) GetSensor(ctx context.Context, sensorID string) (*models.Sensor, error) {
	return ih.core.getSensor(ctx, sensorID)
}

func (ih *IHubsImpl) UpsertHub(ctx context.Context, hub *models.Hub) error {
	return ih.core.upsertHub(ctx, hub)
}

func (ih *IHubsImpl) UpsertSensor(ctx context.Context, sensor *models.Sensor) error {
	return ih.core.upsertSensor(ctx, sensor)
}

func (c *Core) GetIHubs() IHubs {
	return &IHubsImpl{core: c}
}
