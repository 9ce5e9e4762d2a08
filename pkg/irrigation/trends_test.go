package irrigation_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
	_ "github.com/nelsonchoo456/lepark-sub001/pkg/testing"
	"github.com/nelsonchoo456/lepark-sub001/pkg/trend"
)

func TestSensorAndZoneTrend(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _ := GetMockCoreWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()
	core.Now = fixedClock(now)

	ctx := context.Background()
	const zoneID = 7301
	h := seedHub(t, core, zoneID, 1.3, 103.8)

	var readings []models.SensorReading
	for i := range 6 {
		readings = append(readings, models.SensorReading{
			SensorID:  h.Sensors[models.SensorTypeTemperature].ID,
			Timestamp: now.Add(-time.Duration(5-i) * time.Hour),
			Value:     30 + float64(i)*2,
		})
	}
	readings = append(readings, models.SensorReading{
		SensorID:  h.Sensors[models.SensorTypeHumidity].ID,
		Timestamp: now.Add(-time.Hour),
		Value:     80,
	})
	require.NoError(t, core.Readings.AddReadings(ctx, readings))

	rep, err := core.SensorTrend(ctx, h.Sensors[models.SensorTypeTemperature].ID, 6)
	require.NoError(t, err)
	assert.Equal(t, trend.DirectionRapidlyIncreasing, rep.Direction)
	assert.Equal(t, "°C", rep.Unit)
	assert.Equal(t, 6, rep.ReadingsCount)
	assert.InDelta(t, 2.0, rep.AvgSlope, 1e-9)

	rep, err = core.ZoneTrend(ctx, zoneID, models.SensorTypeTemperature, 8)
	require.NoError(t, err)
	assert.Equal(t, trend.DirectionRapidlyIncreasing, rep.Direction)
	require.NotNil(t, rep.OverallChange)
	assert.InDelta(t, 33.33, common.Round2(*rep.OverallChange), 1e-9)

	rep, err = core.ZoneTrend(ctx, zoneID, models.SensorTypeTemperature, 24)
	require.NoError(t, err)
	assert.Equal(t, trend.DirectionInsufficientTimeSpan, rep.Direction)

	rep, err = core.ZoneTrend(ctx, zoneID, models.SensorTypeHumidity, 24)
	require.NoError(t, err)
	assert.Equal(t, trend.DirectionInsufficientData, rep.Direction)
	assert.Equal(t, "%", rep.Unit)

	_, err = core.SensorTrend(ctx, "no-such-sensor", 6)
	assert.ErrorIs(t, err, irrigation.ErrSensorNotFound)
}
