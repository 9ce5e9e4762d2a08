package irrigation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
	_ "github.com/nelsonchoo456/lepark-sub001/pkg/testing"
)

func TestQueryReadings_FiltersHubTypeAndWindow(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _ := GetMockCoreWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	ctx := context.Background()
	h := seedHub(t, core, 9001, 1.3, 103.8)
	other := seedHub(t, core, 9001, 1.3, 103.8)

	base := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, core.Readings.AddReadings(ctx, []models.SensorReading{
		{SensorID: h.Sensors[models.SensorTypeSoilMoisture].ID, Timestamp: base.Add(9*time.Hour + 10*time.Minute), Value: 60},
		{SensorID: h.Sensors[models.SensorTypeSoilMoisture].ID, Timestamp: base.Add(9*time.Hour + 50*time.Minute), Value: 62},
		{SensorID: h.Sensors[models.SensorTypeSoilMoisture].ID, Timestamp: base.Add(-time.Minute), Value: 10},
		{SensorID: h.Sensors[models.SensorTypeSoilMoisture].ID, Timestamp: base.Add(24 * time.Hour), Value: 11},
		{SensorID: h.Sensors[models.SensorTypeTemperature].ID, Timestamp: base.Add(9 * time.Hour), Value: 30},
		{SensorID: other.Sensors[models.SensorTypeSoilMoisture].ID, Timestamp: base.Add(9 * time.Hour), Value: 99},
	}))

	hourly, err := core.Aggregate(ctx, h.Hub.ID, models.SensorTypeSoilMoisture, base.Add(12*time.Hour), base.Add(13*time.Hour))
	require.NoError(t, err)
	require.Len(t, hourly, 1, "window is widened to the whole day and excludes neighbours")
	assert.Equal(t, base.Add(9*time.Hour), hourly[0].HourStart.UTC())
	assert.Equal(t, 61.0, hourly[0].Average)
	assert.Equal(t, 2, hourly[0].Count)

	hourly, err = core.Aggregate(ctx, h.Hub.ID, models.SensorTypeLight, base, base)
	require.NoError(t, err)
	assert.Empty(t, hourly)
}

func TestHubs_UpsertGetAndNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _ := GetMockCoreWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	ctx := context.Background()
	hub := models.Hub{ID: uuid.NewString(), Name: "Lakeside", ZoneID: 3, Lat: 1.3, Lng: 103.8}
	require.NoError(t, core.Hubs.UpsertHub(ctx, &hub))

	hub.Name = "Lakeside North"
	require.NoError(t, core.Hubs.UpsertHub(ctx, &hub))

	got, err := core.Hubs.GetHub(ctx, hub.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lakeside North", got.Name)

	_, err = core.Hubs.GetHub(ctx, uuid.NewString())
	assert.ErrorIs(t, err, irrigation.ErrHubNotFound)

	missingSensor := uuid.NewString()
	_, err = core.Hubs.GetSensor(ctx, missingSensor)
	assert.ErrorIs(t, err, irrigation.ErrSensorNotFound)
	assert.ErrorContains(t, err, missingSensor)

	hubs, err := core.Hubs.ListHubs(ctx)
	require.NoError(t, err)
	found := false
	for _, h := range hubs {
		found = found || h.ID == hub.ID
	}
	assert.True(t, found)
}

func TestRainfall_RecordsBetween(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _ := GetMockCoreWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	ctx := context.Background()
	base := time.Date(1991, 2, 3, 0, 0, 0, 0, time.UTC)
	require.NoError(t, core.Rainfall.AddRecords(ctx, []models.RainfallRecord{
		{StationID: "S10", StationName: "Ang Mo Kio", Lat: 1.37, Lng: 103.85, Value: 0.2, Timestamp: base.Add(time.Hour)},
		{StationID: "S10", StationName: "Ang Mo Kio", Lat: 1.37, Lng: 103.85, Value: 0.4, Timestamp: base.Add(time.Hour + 30*time.Minute)},
		{StationID: "S10", StationName: "Ang Mo Kio", Lat: 1.37, Lng: 103.85, Value: 5, Timestamp: base.AddDate(0, 0, 3)},
	}))

	intensity, err := core.RainfallIntensity(ctx, base, base)
	require.NoError(t, err)
	require.Len(t, intensity, 1)
	assert.InDelta(t, 0.5*(0.2+0.4)*1800, intensity[0].AUC, 1e-9)

	matches, err := core.ClosestRainPerDayBetween(ctx, 1.3, 103.8, base, base.AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Len(t, matches, 2)
	assert.Equal(t, 0.2, matches[irrigation.DateOf(base)].Value)
}

func TestModelStore_UpsertRoundTrip(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _ := GetMockCoreWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	ctx := context.Background()
	hubID := uuid.NewString()

	_, found, err := core.Models.Load(ctx, hubID)
	require.NoError(t, err)
	assert.False(t, found)

	samples := sampleSet(30)
	first, err := irrigation.Fit(hubID, samples[:10], time.Now())
	require.NoError(t, err)
	require.NoError(t, core.Models.Save(ctx, first))

	second, err := irrigation.Fit(hubID, samples, time.Now())
	require.NoError(t, err)
	require.NoError(t, core.Models.Save(ctx, second))

	var count int64
	require.NoError(t, core.Db.Conn.Model(&models.TrainedModel{}).Where("hub_id = ?", hubID).Count(&count).Error)
	assert.EqualValues(t, 1, count, "retraining replaces the row")

	loaded, found, err := core.Models.Load(ctx, hubID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 30, loaded.SampleCount)

	for _, s := range samples {
		want, err := second.Predict(s.Row)
		require.NoError(t, err)
		got, err := loaded.Predict(s.Row)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestModelStore_RejectsCorruptModel(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, core, _ := GetMockCoreWithMemorySqliteDialector(t, useMocks{})
	defer ctrl.Finish()

	ctx := context.Background()
	hubID := uuid.NewString()

	// split on feature 9 of a 5-feature row
	blob := `{"n_features":5,"trees":[{"nodes":[{"feature":9,"threshold":1,"left":1,"right":2},{"leaf":true,"value":0},{"leaf":true,"value":1}]}]}`
	require.NoError(t, core.Db.Conn.Create(&models.TrainedModel{
		HubID:       hubID,
		ModelData:   datatypes.JSON(blob),
		SampleCount: 1,
		TrainedAt:   time.Now(),
	}).Error)

	_, _, err := core.Models.Load(ctx, hubID)
	require.Error(t, err)

	var hubErr *irrigation.HubError
	require.ErrorAs(t, err, &hubErr)
	assert.Equal(t, hubID, hubErr.HubID)

	_, err = core.Predict(ctx, hubID, irrigation.FeatureRow{SoilMoisture: 50})
	assert.Error(t, err)
}

func TestMemoryModelStore(t *testing.T) {
	store := irrigation.NewMemoryModelStore()
	ctx := context.Background()

	_, found, err := store.Load(ctx, "hub-m")
	require.NoError(t, err)
	assert.False(t, found)

	m, err := irrigation.Fit("hub-m", sampleSet(20), time.Now())
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, m))

	loaded, found, err := store.Load(ctx, "hub-m")
	require.NoError(t, err)
	require.True(t, found)

	row := irrigation.FeatureRow{SoilMoisture: 58, Temperature: 36, Humidity: 70}
	want, _ := m.Predict(row)
	got, _ := loaded.Predict(row)
	assert.Equal(t, want, got)

	assert.Error(t, store.Save(ctx, &irrigation.TrainedModel{HubID: "empty"}))
}

// sampleSet returns labelled samples with a mix of both labels.
func sampleSet(n int) []irrigation.TrainingSample {
	today := irrigation.Date{Year: 2024, Month: time.July, Day: 15}
	samples := make([]irrigation.TrainingSample, n)
	for i := range n {
		row := irrigation.FeatureRow{
			SoilMoisture: 55 + float64(i%10),
			Temperature:  28 + float64(i%9),
			Humidity:     70 + float64(i%20),
			Light:        float64(i * 10),
		}
		d := today.AddDays(-i)
		samples[i] = irrigation.TrainingSample{Date: d, Row: row, Label: irrigation.Decide(row, d)}
	}
	return samples
}
