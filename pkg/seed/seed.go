// Package seed generates plausible hubs, sensor readings and rainfall records for local
// development and load tests.
package seed

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/nelsonchoo456/lepark-sub001/pkg/common"
	"github.com/nelsonchoo456/lepark-sub001/pkg/irrigation"
	"github.com/nelsonchoo456/lepark-sub001/pkg/models"
)

// Bounding box the generated hubs and stations are placed in.
const (
	MinLat = 1.22
	MaxLat = 1.47
	MinLng = 103.6
	MaxLng = 104.05
)

type Options struct {
	Hubs           int
	Stations       int
	Days           int
	ReadingsPerDay int
	ZoneID         uint
	End            time.Time
	Seed           uint64
}

func DefaultOptions() Options {
	return Options{
		Hubs:           3,
		Stations:       5,
		Days:           100,
		ReadingsPerDay: 24,
		ZoneID:         1,
		End:            time.Now().UTC(),
		Seed:           42,
	}
}

type Dataset struct {
	Hubs     []models.Hub
	Sensors  []models.Sensor
	Readings []models.SensorReading
	Rainfall []models.RainfallRecord
}

type hubProfile struct {
	ID   string `fake:"{uuid}"`
	Name string `fake:"{city}"`
}

type stationProfile struct {
	ID   string `fake:"{uuid}"`
	Name string `fake:"{city}"`
}

// plantGenerator keeps the per-hub baselines that readings oscillate around.
type plantGenerator struct {
	faker            *gofakeit.Faker
	baselineSoil     float64
	baselineTemp     float64
	baselineHumidity float64
	peakLight        float64
	noise            float64
}

type Generator struct {
	faker *gofakeit.Faker
	opts  Options
}

func New(opts Options) *Generator {
	if opts.ReadingsPerDay <= 0 {
		opts.ReadingsPerDay = 24
	}
	if opts.End.IsZero() {
		opts.End = time.Now().UTC()
	}
	return &Generator{faker: gofakeit.New(opts.Seed), opts: opts}
}

func (g *Generator) location() (float64, float64) {
	return g.faker.Float64Range(MinLat, MaxLat), g.faker.Float64Range(MinLng, MaxLng)
}

func (g *Generator) newPlantGenerator() *plantGenerator {
	return &plantGenerator{
		faker:            g.faker,
		baselineSoil:     g.faker.Float64Range(45, 75),
		baselineTemp:     g.faker.Float64Range(26, 31),
		baselineHumidity: g.faker.Float64Range(70, 88),
		peakLight:        g.faker.Float64Range(8000, 20000),
		noise:            g.faker.Float64Range(0.5, 2),
	}
}

// SoilMoisture dries out through the afternoon and recovers overnight.
func (p *plantGenerator) SoilMoisture(t time.Time) float64 {
	hour := float64(t.Hour())
	dailyCycle := -4 * math.Sin((hour-8)*math.Pi/12)
	weekly := 6 * math.Sin(float64(t.Unix())/(86400*7))
	noise := (p.faker.Float64() - 0.5) * p.noise
	return common.Round2(math.Max(5, math.Min(100, p.baselineSoil+dailyCycle+weekly+noise)))
}

// Temperature peaks around 2 PM.
func (p *plantGenerator) Temperature(t time.Time) float64 {
	hour := float64(t.Hour())
	dailyCycle := 4 * math.Sin((hour-8)*math.Pi/12)
	noise := (p.faker.Float64() - 0.5) * p.noise
	return common.Round2(p.baselineTemp + dailyCycle + noise)
}

// Humidity moves inversely to temperature.
func (p *plantGenerator) Humidity(t time.Time, temperature float64) float64 {
	tempEffect := -(temperature - p.baselineTemp) * 1.5
	noise := (p.faker.Float64() - 0.5) * p.noise * 0.5
	return common.Round2(math.Max(30, math.Min(100, p.baselineHumidity+tempEffect+noise)))
}

// Light is zero outside 07:00-19:00 and follows a half sine in between.
func (p *plantGenerator) Light(t time.Time) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60
	if hour < 7 || hour > 19 {
		return 0
	}
	cloud := 0.6 + p.faker.Float64()*0.4
	return common.Round2(p.peakLight * math.Sin((hour-7)*math.Pi/12) * cloud)
}

func (p *plantGenerator) Read(st models.SensorType, t time.Time) float64 {
	switch st {
	case models.SensorTypeSoilMoisture:
		return p.SoilMoisture(t)
	case models.SensorTypeTemperature:
		return p.Temperature(t)
	case models.SensorTypeHumidity:
		return p.Humidity(t, p.Temperature(t))
	}
	return p.Light(t)
}

// Generate builds a dataset of Days whole UTC days ending on the day of End.
func (g *Generator) Generate() (*Dataset, error) {
	ds := &Dataset{}
	last := irrigation.DateOf(g.opts.End)
	first := last.AddDays(-(g.opts.Days - 1))
	step := 24 * time.Hour / time.Duration(g.opts.ReadingsPerDay)

	for range g.opts.Hubs {
		var hp hubProfile
		if err := g.faker.Struct(&hp); err != nil {
			return nil, fmt.Errorf("fake hub: %w", err)
		}
		lat, lng := g.location()
		hub := models.Hub{ID: hp.ID, Name: hp.Name + " Hub", ZoneID: g.opts.ZoneID, Lat: lat, Lng: lng}
		ds.Hubs = append(ds.Hubs, hub)

		plant := g.newPlantGenerator()
		for _, st := range models.PlantSensorTypes {
			sensor := models.Sensor{
				ID:         g.faker.UUID(),
				HubID:      hub.ID,
				ZoneID:     hub.ZoneID,
				SensorType: st,
				Name:       fmt.Sprintf("%s %s", hp.Name, st),
			}
			ds.Sensors = append(ds.Sensors, sensor)

			for d := first; !last.Before(d); d = d.AddDays(1) {
				for i := range g.opts.ReadingsPerDay {
					ts := d.Start().Add(time.Duration(i) * step)
					ds.Readings = append(ds.Readings, models.SensorReading{
						SensorID:  sensor.ID,
						Timestamp: ts,
						Value:     plant.Read(st, ts),
					})
				}
			}
		}
	}

	for range g.opts.Stations {
		var sp stationProfile
		if err := g.faker.Struct(&sp); err != nil {
			return nil, fmt.Errorf("fake station: %w", err)
		}
		lat, lng := g.location()
		for d := first; !last.Before(d); d = d.AddDays(1) {
			value := 0.0
			if g.faker.Float64() < 0.35 {
				value = common.Round2(g.faker.Float64Range(0.2, 40))
			}
			ds.Rainfall = append(ds.Rainfall, models.RainfallRecord{
				StationID:   sp.ID,
				StationName: sp.Name,
				Lat:         lat,
				Lng:         lng,
				Value:       value,
				Timestamp:   d.Start().Add(time.Duration(g.faker.IntRange(0, 23)) * time.Hour),
			})
		}
	}

	return ds, nil
}

// Load writes a dataset through the core's stores.
func Load(ctx context.Context, core *irrigation.Core, ds *Dataset) error {
	for i := range ds.Hubs {
		if err := core.Hubs.UpsertHub(ctx, &ds.Hubs[i]); err != nil {
			return fmt.Errorf("upsert hub %s: %w", ds.Hubs[i].ID, err)
		}
	}
	for i := range ds.Sensors {
		if err := core.Hubs.UpsertSensor(ctx, &ds.Sensors[i]); err != nil {
			return fmt.Errorf("upsert sensor %s: %w", ds.Sensors[i].ID, err)
		}
	}
	if err := core.Readings.AddReadings(ctx, ds.Readings); err != nil {
		return fmt.Errorf("add readings: %w", err)
	}
	if err := core.Rainfall.AddRecords(ctx, ds.Rainfall); err != nil {
		return fmt.Errorf("add rainfall: %w", err)
	}
	return nil
}
