package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
	"github.com/nelsonchoo456/lepark-sub001/pkg/metrics"
)

type RestfulServer struct {
	Server           *gin.Engine
	Irrigation       *irrigation.Core
	RateLimiterStore *irrigation.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(hubID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(hubID)
	}
}

func (rs *RestfulServer) CheckHubLimiter(hubID string) bool {
	limiter := rs.GetLimiter(hubID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

// accessLog writes one line per request to the restful_server logger.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
		logger.Debug("Handled request",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

func (rs *RestfulServer) Setup() {
	rs.Server.Use(accessLog())

	rs.Server.GET("/healthz", rs.HealthCheck)
	rs.Server.GET("/metrics", gin.WrapH(metrics.Handler()))

	rs.Server.POST("/hubs/train", rs.PostTrainAll)

	hubs := rs.Server.Group("/hubs/:hub_id")
	{
		hubs.POST("/train", rs.PostTrainHub)
		hubs.GET("/prediction", rs.GetPrediction)
		hubs.GET("/model", rs.GetModel)
		hubs.GET("/history", rs.GetHistory)
		hubs.GET("/training-set.xlsx", rs.GetTrainingSetXLSX)
		hubs.GET("/limiter", rs.GetLimiterConfig)
		hubs.POST("/limiter", rs.PostLimiter)
		hubs.DELETE("/limiter", rs.DeleteLimiter)
	}

	rs.Server.GET("/sensors/:sensor_id/trend", rs.GetSensorTrend)
	rs.Server.GET("/zones/:zone_id/trend", rs.GetZoneTrend)
	rs.Server.GET("/rainfall/intensity", rs.GetRainfallIntensity)
}
