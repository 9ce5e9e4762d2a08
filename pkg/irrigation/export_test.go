package irrigation

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteTrainingSetXLSX(t *testing.T) {
	today := Date{Year: 2024, Month: time.July, Day: 15}
	samples := []TrainingSample{
		{Date: today, Row: FeatureRow{SoilMoisture: 50, Temperature: 30, Humidity: 85, Light: 100}, Label: 1},
		{Date: today.AddDays(-1), Row: FeatureRow{SoilMoisture: 70, Rainfall: 1}, Label: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTrainingSetXLSX(&buf, "hub-1", samples))

	x, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer x.Close()

	rows, err := x.GetRows(trainingSetSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"date", "season", "soil_moisture", "temperature", "humidity", "light", "rainfall", "label"}, rows[0])
	assert.Equal(t, []string{"2024-07-15", "dry", "50", "30", "85", "100", "0", "1"}, rows[1])
	assert.Equal(t, "2024-07-14", rows[2][0])
	assert.Equal(t, "0", rows[2][7])
}
