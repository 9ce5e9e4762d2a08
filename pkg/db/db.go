package db

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

type DB struct {
	Conn *gorm.DB
}

var (
	instance *DB
	once     sync.Once
)

// GetInstance opens the process wide connection once and migrates the schema.
func GetInstance(dialector gorm.Dialector) *DB {
	var zlogger = common.GetLogger()
	once.Do(func() {
		conn, err := Open(dialector)
		if err != nil {
			log.Fatal("Failed to open database:", err)
		}

		zlogger.Info("Connected to database with dialector:", zap.String("dialector", dialector.Name()))

		instance = &DB{Conn: conn}
	})
	return instance
}

// Open connects, migrates and applies the per-driver session settings. Unlike GetInstance it
// returns a fresh connection each call.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	conn, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(conn); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if dialector.Name() == "sqlite" {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		// pragmas are per connection and sqlite takes one writer anyway
		sqlDB.SetMaxOpenConns(1)

		if err := conn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable sqlite foreign key support: %w", err)
		}
		if err := conn.Exec("PRAGMA journal_mode = WAL").Error; err != nil {
			return nil, fmt.Errorf("failed to set sqlite journal mode: %w", err)
		}
		return conn, nil
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&models.Hub{},
		&models.Sensor{},
		&models.SensorReading{},
		&models.RainfallRecord{},
		&models.TrainedModel{},
	)
	if err != nil {
		return err
	}

	common.GetLogger().Info("Database migration completed")
	return nil
}

func UseSqliteDialector() gorm.Dialector {
	var dbPath string
	var found bool
	if dbPath, found = os.LookupEnv(common.EnvKeyIrrigationDbPath); !found {
		dbPath = common.DefaultSqliteDbPath
	}
	return sqlite.Open(dbPath)
}

func UseMemorySqliteDialector() gorm.Dialector {
	return sqlite.Open("file::memory:?cache=shared")
}

func UsePostgresDialector(dsn string) gorm.Dialector {
	return postgres.Open(dsn)
}

// UseDialectorFromEnv picks the dialector named by IRRIGATION_DB_TYPE.
func UseDialectorFromEnv() (gorm.Dialector, error) {
	dbType := os.Getenv(common.EnvKeyIrrigationDBType)
	switch dbType {
	case "file":
		return UseSqliteDialector(), nil
	case "memory", "":
		return UseMemorySqliteDialector(), nil
	case "postgres":
		dsn := os.Getenv(common.EnvKeyIrrigationDbDSN)
		if dsn == "" {
			return nil, fmt.Errorf("%s must be set when %s=postgres", common.EnvKeyIrrigationDbDSN, common.EnvKeyIrrigationDBType)
		}
		return UsePostgresDialector(dsn), nil
	}
	return nil, fmt.Errorf("unknown %s: %s", common.EnvKeyIrrigationDBType, dbType)
}
