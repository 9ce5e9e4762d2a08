package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/db"
	irrigationHttp "github.com/nelsonchoo456/lepark-sub001/pkg/http"
	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	dialector, err := db.UseDialectorFromEnv()
	if err != nil {
		log.Fatal(err)
	}
	dbInstance := db.GetInstance(dialector)

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyIrrigationHttpHostPort))

	var defaultRate float64
	var defaultBurst int64

	if defaultRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyIrrigationDefaultRate), 64); err != nil {
		log.Fatal("Invalid IRRIGATION_DEFAULT_RATE, or not set in .env, should be a float64 value")
	}

	if defaultBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyIrrigationDefaultBurst), 10, 64); err != nil {
		log.Fatal("Invalid IRRIGATION_DEFAULT_BURST, or not set in .env, should be an int value")
	}

	retrainInterval, err := common.GetEnvDuration(common.EnvKeyIrrigationRetrainInterval)
	if err != nil {
		log.Fatal("Invalid IRRIGATION_RETRAIN_INTERVAL, should be a duration such as 24h")
	}

	logger := common.GetLogger()

	core := irrigation.Core{
		Db:         *dbInstance,
		Workers:    common.GetEnvInt(common.EnvKeyIrrigationTrainWorkers, common.DefaultTrainWorkers),
		WindowDays: common.GetEnvInt(common.EnvKeyIrrigationTrainWindowDays, common.DefaultTrainWindowDays),
	}
	core.WithDefaultServices()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if retrainInterval > 0 {
		logger.Info("Starting retrain loop", zap.Duration("interval", retrainInterval))
		go core.RunRetrainLoop(ctx, retrainInterval)
	}

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = common.DefaultHttpHostPort
	}

	rs := &irrigationHttp.RestfulServer{
		Server:           gin.Default(),
		Irrigation:       &core,
		RateLimiterStore: irrigation.NewRateLimiterStore(rate.Limit(defaultRate), int(defaultBurst)),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", defaultRate, defaultBurst)),
		zap.Int("train_workers", core.Workers),
		zap.Int("train_window_days", core.WindowDays))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
