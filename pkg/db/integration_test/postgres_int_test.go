package test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/db"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

func startPostgres(ctx context.Context) (testcontainers.Container, string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			),
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "irrigation",
			},
		},
		Started: true,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to start PostgreSQL container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to get container port: %w", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=irrigation sslmode=disable",
		host, port.Port())
	return container, dsn, nil
}

func TestPostgresMigrateAndUpsert(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, dsn, err := startPostgres(ctx)
	require.NoError(t, err)
	defer func() {
		_ = container.Terminate(context.Background())
	}()

	conn, err := db.Open(db.UsePostgresDialector(dsn))
	require.NoError(t, err)

	upsert := func(m *models.TrainedModel) error {
		return conn.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hub_id"}},
			UpdateAll: true,
		}).Create(m).Error
	}

	require.NoError(t, upsert(&models.TrainedModel{
		HubID:       "hub-pg",
		ModelData:   datatypes.JSON(`{"trees":[]}`),
		SampleCount: 10,
		TrainedAt:   time.Now().UTC(),
	}))
	require.NoError(t, upsert(&models.TrainedModel{
		HubID:       "hub-pg",
		ModelData:   datatypes.JSON(`{"trees":[]}`),
		SampleCount: 100,
		TrainedAt:   time.Now().UTC(),
	}))

	var saved []models.TrainedModel
	require.NoError(t, conn.Where("hub_id = ?", "hub-pg").Find(&saved).Error)
	assert.Len(t, saved, 1)
	assert.Equal(t, 100, saved[0].SampleCount)
}
