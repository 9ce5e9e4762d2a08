package models

import (
	"time"

	"gorm.io/datatypes"
)

type SensorType string

const (
	SensorTypeSoilMoisture SensorType = "SOIL_MOISTURE"
	SensorTypeTemperature  SensorType = "TEMPERATURE"
	SensorTypeHumidity     SensorType = "HUMIDITY"
	SensorTypeLight        SensorType = "LIGHT"
	SensorTypeCamera       SensorType = "CAMERA"
)

// PlantSensorTypes are the sensor types that make up a feature row, in feature order.
var PlantSensorTypes = []SensorType{
	SensorTypeSoilMoisture,
	SensorTypeTemperature,
	SensorTypeHumidity,
	SensorTypeLight,
}

func (st SensorType) Valid() bool {
	switch st {
	case SensorTypeSoilMoisture, SensorTypeTemperature, SensorTypeHumidity, SensorTypeLight, SensorTypeCamera:
		return true
	}
	return false
}

// Unit is the display unit used in trend summaries.
func (st SensorType) Unit() string {
	switch st {
	case SensorTypeTemperature:
		return "°C"
	case SensorTypeSoilMoisture, SensorTypeHumidity:
		return "%"
	case SensorTypeLight:
		return "Lux"
	}
	return ""
}

type Hub struct {
	ID     string `gorm:"primaryKey"`
	Name   string
	ZoneID uint `gorm:"index"`
	Lat    float64
	Lng    float64

	Sensors []Sensor `gorm:"foreignKey:HubID;references:ID"`
}

type Sensor struct {
	ID         string     `gorm:"primaryKey"`
	HubID      string     `gorm:"index"`
	ZoneID     uint       `gorm:"index"`
	SensorType SensorType `gorm:"type:varchar(20);check:sensor_type IN ('SOIL_MOISTURE','TEMPERATURE','HUMIDITY','LIGHT','CAMERA')"`
	Name       string

	Readings []SensorReading `gorm:"foreignKey:SensorID;references:ID"`
}

type SensorReading struct {
	ID        uint      `gorm:"primaryKey"`
	SensorID  string    `gorm:"index"`
	Timestamp time.Time `gorm:"index"`
	Value     float64
}

type RainfallRecord struct {
	ID          uint   `gorm:"primaryKey"`
	StationID   string `gorm:"index"`
	StationName string
	Lat         float64
	Lng         float64
	Value       float64
	Timestamp   time.Time `gorm:"index"`
}

// TrainedModel holds one serialized forest per hub; retraining replaces the row.
type TrainedModel struct {
	HubID       string `gorm:"primaryKey"`
	ModelData   datatypes.JSON
	SampleCount int
	TrainedAt   time.Time
}
