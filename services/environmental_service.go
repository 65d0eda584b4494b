package services

import (
	"errors"
	"time"

	"github.com/itz-Mayank/Environmental-Sustainability/models"
)

// ErrUnknownCategory is returned for categories the provider does not know.
var ErrUnknownCategory = errors.New("unknown environmental category")

// SnapshotService returns point-in-time readings per category. The values are
// fixed mocks standing in for a real time-series backend.
type SnapshotService struct {
	now func() time.Time
}

func NewSnapshotService() *SnapshotService {
	return &SnapshotService{now: time.Now}
}

// Get returns the current snapshot for a category.
func (s *SnapshotService) Get(category string) (interface{}, error) {
	switch category {
	case models.CategoryAQI:
		return s.AQI(), nil
	case models.CategoryWater:
		return s.Water(), nil
	case models.CategoryWeather:
		return s.Weather(), nil
	}
	return nil, ErrUnknownCategory
}

func (s *SnapshotService) AQI() models.AQISnapshot {
	return models.AQISnapshot{
		Value:     96,
		PM25:      28.4,
		PM10:      47.9,
		Timestamp: s.now(),
	}
}

func (s *SnapshotService) Water() models.WaterSnapshot {
	return models.WaterSnapshot{
		PH:              7.2,
		Turbidity:       3.8,
		DissolvedOxygen: 6.5,
		Timestamp:       s.now(),
	}
}

var forecastConditions = []string{
	"Sunny", "Partly Cloudy", "Cloudy", "Rain", "Thunderstorm", "Clear", "Haze",
}

func (s *SnapshotService) Weather() []models.ForecastDay {
	base := s.now()
	temps := []float64{31.5, 30.2, 28.9, 26.4, 25.8, 29.1, 30.6}

	forecast := make([]models.ForecastDay, 0, 7)
	for i := 0; i < 7; i++ {
		forecast = append(forecast, models.ForecastDay{
			Date:      base.AddDate(0, 0, i).Format("2006-01-02"),
			Temp:      temps[i],
			Condition: forecastConditions[i],
		})
	}
	return forecast
}

// PrimaryValue reduces a category's snapshot to the single reading that
// threshold alerts are checked against.
func (s *SnapshotService) PrimaryValue(category string) (float64, bool) {
	switch category {
	case models.CategoryAQI:
		return s.AQI().Value, true
	case models.CategoryWater:
		return s.Water().Turbidity, true
	case models.CategoryWeather:
		return s.Weather()[0].Temp, true
	}
	return 0, false
}
