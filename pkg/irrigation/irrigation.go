// Package irrigation is the predictive irrigation pipeline: hourly aggregation of hub
// sensor readings, nearest-station rainfall matching, rule-labelled training sets, per-hub
// regression forests and the trend read paths.
package irrigation

import (
	"context"
	"sync"
	"time"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/db"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

//go:generate mockgen -source=irrigation.go -destination=mocks/mock_irrigation.go -package=mocks

type ISensorReadings interface {
	QueryReadings(ctx context.Context, hubID string, sensorType models.SensorType, start, end time.Time) ([]ReadingPoint, error)
	SensorReadingsSince(ctx context.Context, sensorID string, since time.Time) ([]ReadingPoint, error)
	ZoneReadingsSince(ctx context.Context, zoneID uint, sensorType models.SensorType, since time.Time) ([]ReadingPoint, error)
	AddReadings(ctx context.Context, readings []models.SensorReading) error
}

type IRainfall interface {
	AllRecords(ctx context.Context) ([]models.RainfallRecord, error)
	RecordsBetween(ctx context.Context, start, end time.Time) ([]models.RainfallRecord, error)
	AddRecords(ctx context.Context, records []models.RainfallRecord) error
}

type IHubs interface {
	ListHubs(ctx context.Context) ([]models.Hub, error)
	GetHub(ctx context.Context, hubID string) (*models.Hub, error)
	GetSensor(ctx context.Context, sensorID string) (*models.Sensor, error)
	UpsertHub(ctx context.Context, hub *models.Hub) error
	UpsertSensor(ctx context.Context, sensor *models.Sensor) error
}

type IModelStore interface {
	Save(ctx context.Context, model *TrainedModel) error
	// Load reports found=false, with a nil error, when the hub has never been trained.
	Load(ctx context.Context, hubID string) (model *TrainedModel, found bool, err error)
}

type Core struct {
	Db       db.DB
	Readings ISensorReadings
	Rainfall IRainfall
	Hubs     IHubs
	Models   IModelStore

	// Now is the pipeline clock; nil means time.Now.
	Now        func() time.Time
	WindowDays int
	Workers    int

	locks     *HubLocks
	locksOnce sync.Once
}

type ServiceOpts struct {
	Readings ISensorReadings
	Rainfall IRainfall
	Hubs     IHubs
	Models   IModelStore
}

func (c *Core) WithServices(opts ServiceOpts) *Core {
	if opts.Readings != nil {
		c.Readings = opts.Readings
	}
	if opts.Rainfall != nil {
		c.Rainfall = opts.Rainfall
	}
	if opts.Hubs != nil {
		c.Hubs = opts.Hubs
	}
	if opts.Models != nil {
		c.Models = opts.Models
	}
	return c
}

// WithDefaultServices wires every store to the gorm connection held in Db.
func (c *Core) WithDefaultServices() *Core {
	return c.WithServices(ServiceOpts{
		Readings: c.GetISensorReadings(),
		Rainfall: c.GetIRainfall(),
		Hubs:     c.GetIHubs(),
		Models:   c.GetIModelStore(),
	})
}

func (c *Core) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

func (c *Core) today() Date {
	return DateOf(c.now())
}

func (c *Core) windowDays() int {
	if c.WindowDays > 0 {
		return c.WindowDays
	}
	return common.DefaultTrainWindowDays
}

func (c *Core) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return common.DefaultTrainWorkers
}

func (c *Core) hubLocks() *HubLocks {
	c.locksOnce.Do(func() {
		c.locks = NewHubLocks()
	})
	return c.locks
}
