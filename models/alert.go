package models

import "time"

// Alert categories a threshold rule can watch.
const (
	CategoryAQI     = "aqi"
	CategoryWater   = "water"
	CategoryWeather = "weather"
)

type Alert struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"column:user_id;index"`
	Type      string    `json:"type" gorm:"size:20"` // "aqi" | "water" | "weather"
	Threshold float64   `json:"threshold"`
	Active    bool      `json:"active" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

// KnownCategory reports whether t is one of the recognized alert categories.
func KnownCategory(t string) bool {
	switch t {
	case CategoryAQI, CategoryWater, CategoryWeather:
		return true
	}
	return false
}
