package seed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/db"
	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
	"github.com/nelsonchoo456/lepark-sub001/pkg/seed"
	_ "github.com/nelsonchoo456/lepark-sub001/pkg/testing"
)

var end = time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC)

func smallOptions() seed.Options {
	return seed.Options{Hubs: 2, Stations: 3, Days: 5, ReadingsPerDay: 4, ZoneID: 8801, End: end, Seed: 7}
}

func TestGenerate_Shape(t *testing.T) {
	ds, err := seed.New(smallOptions()).Generate()
	require.NoError(t, err)

	assert.Len(t, ds.Hubs, 2)
	assert.Len(t, ds.Sensors, 2*len(models.PlantSensorTypes))
	assert.Len(t, ds.Readings, 2*len(models.PlantSensorTypes)*5*4)
	assert.Len(t, ds.Rainfall, 3*5)

	first := irrigation.DateOf(end).AddDays(-4).Start()
	last := irrigation.DateOf(end).End()
	for _, h := range ds.Hubs {
		assert.Equal(t, uint(8801), h.ZoneID)
		assert.True(t, h.Lat >= seed.MinLat && h.Lat <= seed.MaxLat)
		assert.True(t, h.Lng >= seed.MinLng && h.Lng <= seed.MaxLng)
	}
	for _, r := range ds.Readings {
		assert.False(t, r.Timestamp.Before(first))
		assert.False(t, r.Timestamp.After(last))
	}
	for _, r := range ds.Rainfall {
		assert.GreaterOrEqual(t, r.Value, 0.0)
		assert.Equal(t, common.Round2(r.Value), r.Value)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := seed.New(smallOptions()).Generate()
	require.NoError(t, err)
	b, err := seed.New(smallOptions()).Generate()
	require.NoError(t, err)

	assert.Equal(t, a.Hubs, b.Hubs)
	assert.Equal(t, a.Readings, b.Readings)
}

func TestGenerate_LightIsDarkAtNight(t *testing.T) {
	ds, err := seed.New(smallOptions()).Generate()
	require.NoError(t, err)

	lightSensors := map[string]bool{}
	for _, s := range ds.Sensors {
		if s.SensorType == models.SensorTypeLight {
			lightSensors[s.ID] = true
		}
	}
	for _, r := range ds.Readings {
		if lightSensors[r.SensorID] && r.Timestamp.Hour() == 0 {
			assert.Equal(t, 0.0, r.Value)
		}
	}
}

func TestLoad(t *testing.T) {
	common.SetTestLoggerNop()

	core := &irrigation.Core{Db: *db.GetInstance(db.UseMemorySqliteDialector())}
	core.WithDefaultServices()

	ds, err := seed.New(smallOptions()).Generate()
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, seed.Load(ctx, core, ds))

	hub, err := core.Hubs.GetHub(ctx, ds.Hubs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, ds.Hubs[0].Name, hub.Name)

	points, err := core.Readings.QueryReadings(ctx, hub.ID, models.SensorTypeSoilMoisture,
		irrigation.DateOf(end).AddDays(-4).Start(), irrigation.DateOf(end).End())
	require.NoError(t, err)
	assert.Len(t, points, 5*4)
}
