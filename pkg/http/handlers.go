package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var hubIDSchema = z.String().Trim().Min(1).Max(64)

var zoneIDSchema = z.Int().GT(0)

func (rs *RestfulServer) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, irrigation.ErrModelNotFound),
		errors.Is(err, irrigation.ErrHubNotFound),
		errors.Is(err, irrigation.ErrSensorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
		logger.Error("Request failed", zap.String("route", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// hubParam validates the hub_id path parameter and applies the hub's rate limiter.
// It writes the response and returns false when the request should stop.
func (rs *RestfulServer) hubParam(c *gin.Context, limited bool) (string, bool) {
	var hubID string
	if errs := hubIDSchema.Parse(c.Param("hub_id"), &hubID); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return "", false
	}
	if limited && !rs.CheckHubLimiter(hubID) {
		c.Status(http.StatusTooManyRequests)
		return "", false
	}
	return hubID, true
}

func (rs *RestfulServer) PostTrainAll(c *gin.Context) {
	report, err := rs.Irrigation.TrainAll(c.Request.Context())
	if report == nil {
		rs.respondError(c, err)
		return
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, report)
		return
	}
	c.JSON(http.StatusOK, report)
}

func (rs *RestfulServer) PostTrainHub(c *gin.Context) {
	hubID, ok := rs.hubParam(c, true)
	if !ok {
		return
	}

	m, err := rs.Irrigation.TrainHubByID(c.Request.Context(), hubID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, irrigation.ModelInfo{
		HubID:       m.HubID,
		SampleCount: m.SampleCount,
		TrainedAt:   m.TrainedAt,
		Trees:       len(m.Forest.Trees),
	})
}

type PredictionRequest struct {
	Forecast string `json:"forecast" zog:"forecast"`
	Fallback bool   `json:"fallback" zog:"fallback"`
}

var predictionRequestSchema = z.Struct(z.Shape{
	"forecast": z.String().Trim().Max(128),
	"fallback": z.Bool(),
})

func (rs *RestfulServer) GetPrediction(c *gin.Context) {
	hubID, ok := rs.hubParam(c, true)
	if !ok {
		return
	}

	var req PredictionRequest
	if err := predictionRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	var p *irrigation.Prediction
	var err error
	if req.Fallback {
		p, err = rs.Irrigation.PredictOrRule(c.Request.Context(), hubID, req.Forecast)
	} else {
		p, err = rs.Irrigation.PredictToday(c.Request.Context(), hubID, req.Forecast)
	}
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (rs *RestfulServer) GetModel(c *gin.Context) {
	hubID, ok := rs.hubParam(c, false)
	if !ok {
		return
	}

	info, err := rs.Irrigation.GetModel(c.Request.Context(), hubID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}

type DateRangeRequest struct {
	Start string `json:"start" zog:"start"`
	End   string `json:"end" zog:"end"`
}

var dateRangeRequestSchema = z.Struct(z.Shape{
	"start": z.String().Required().Match(dateRegex),
	"end":   z.String().Required().Match(dateRegex),
})

func parseDateRange(c *gin.Context) (irrigation.Date, irrigation.Date, bool) {
	var req DateRangeRequest
	if err := dateRangeRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return irrigation.Date{}, irrigation.Date{}, false
	}

	start, err := irrigation.ParseDate(req.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return irrigation.Date{}, irrigation.Date{}, false
	}
	end, err := irrigation.ParseDate(req.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return irrigation.Date{}, irrigation.Date{}, false
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end is before start"})
		return irrigation.Date{}, irrigation.Date{}, false
	}
	return start, end, true
}

func (rs *RestfulServer) GetHistory(c *gin.Context) {
	hubID, ok := rs.hubParam(c, true)
	if !ok {
		return
	}
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	hist, err := rs.Irrigation.History(c.Request.Context(), hubID, start.Start(), end.End())
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hist)
}

func (rs *RestfulServer) GetTrainingSetXLSX(c *gin.Context) {
	hubID, ok := rs.hubParam(c, true)
	if !ok {
		return
	}

	samples, err := rs.Irrigation.TrainingSetForHub(c.Request.Context(), hubID)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := irrigation.WriteTrainingSetXLSX(&buf, hubID, samples); err != nil {
		rs.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="training-set-%s.xlsx"`, hubID))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

type LimiterRequest struct {
	Rate  float64 `json:"rate" zog:"rate"`
	Burst int     `json:"burst" zog:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required().GT(0),
	"burst": z.Int().Required().GT(0),
})

// limiterStore answers 404 when the server runs without per-hub throttling.
func (rs *RestfulServer) limiterStore(c *gin.Context) (*irrigation.RateLimiterStore, bool) {
	if rs.RateLimiterStore == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "rate limiting is disabled"})
		return nil, false
	}
	return rs.RateLimiterStore, true
}

func (rs *RestfulServer) GetLimiterConfig(c *gin.Context) {
	hubID, ok := rs.hubParam(c, false)
	if !ok {
		return
	}
	store, ok := rs.limiterStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, store.Limits(hubID))
}

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	hubID, ok := rs.hubParam(c, false)
	if !ok {
		return
	}

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	store, ok := rs.limiterStore(c)
	if !ok {
		return
	}

	applied := store.SetLimiter(hubID, rate.Limit(req.Rate), req.Burst)
	common.GetLoggerWith(common.LoggerNameRestfulServer).Info("Hub limiter overridden",
		zap.String("hub_id", hubID),
		zap.Float64("rate", req.Rate),
		zap.Int("burst", req.Burst))

	c.JSON(http.StatusOK, applied)
}

func (rs *RestfulServer) DeleteLimiter(c *gin.Context) {
	hubID, ok := rs.hubParam(c, false)
	if !ok {
		return
	}
	store, ok := rs.limiterStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, store.ResetLimiter(hubID))
}

type TrendRequest struct {
	Hours      int    `json:"hours" zog:"hours"`
	SensorType string `json:"sensor_type" zog:"sensor_type"`
}

var sensorTrendRequestSchema = z.Struct(z.Shape{
	"hours": z.Int().Default(24).GT(0).LTE(24 * 31),
})

var zoneTrendRequestSchema = z.Struct(z.Shape{
	"hours":      z.Int().Default(24).GT(0).LTE(24 * 31),
	"sensorType": z.String().Trim().Required(),
})

func (rs *RestfulServer) GetSensorTrend(c *gin.Context) {
	var req TrendRequest
	if err := sensorTrendRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rep, err := rs.Irrigation.SensorTrend(c.Request.Context(), c.Param("sensor_id"), req.Hours)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

func (rs *RestfulServer) GetZoneTrend(c *gin.Context) {
	var zoneID int
	if errs := zoneIDSchema.Parse(c.Param("zone_id"), &zoneID); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs})
		return
	}

	var req TrendRequest
	if err := zoneTrendRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	sensorType := models.SensorType(req.SensorType)
	if !sensorType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown sensor_type %q", req.SensorType)})
		return
	}

	rep, err := rs.Irrigation.ZoneTrend(c.Request.Context(), uint(zoneID), sensorType, req.Hours)
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rep)
}

func (rs *RestfulServer) GetRainfallIntensity(c *gin.Context) {
	start, end, ok := parseDateRange(c)
	if !ok {
		return
	}

	days, err := rs.Irrigation.RainfallIntensity(c.Request.Context(), start.Start(), end.End())
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, days)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
