package models

import "time"

// AQISnapshot is a point-in-time air quality reading.
type AQISnapshot struct {
	Value     float64   `json:"value"`
	PM25      float64   `json:"pm25"`
	PM10      float64   `json:"pm10"`
	Timestamp time.Time `json:"timestamp"`
}

// WaterSnapshot is a point-in-time water quality reading.
type WaterSnapshot struct {
	PH              float64   `json:"ph"`
	Turbidity       float64   `json:"turbidity"`
	DissolvedOxygen float64   `json:"dissolvedOxygen"`
	Timestamp       time.Time `json:"timestamp"`
}

// ForecastDay is one entry of the 7-day weather forecast.
type ForecastDay struct {
	Date      string  `json:"date"`
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
}
