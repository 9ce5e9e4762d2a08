package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
)

func TestWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	testPath := filepath.Join(t.TempDir(), "test.db")
	t.Setenv(common.EnvKeyIrrigationDbPath, testPath)

	conn, err := Open(UseSqliteDialector())
	require.NoError(t, err)
	require.NotNil(t, conn)

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}

	if !tableExists(conn, "trained_models") {
		t.Error("Expected trained_models table to exist after migration")
	}
}
