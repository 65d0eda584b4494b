package services

import (
	"errors"
	"testing"

	"github.com/itz-Mayank/Environmental-Sustainability/models"
)

func TestSnapshotServiceGet(t *testing.T) {
	svc := NewSnapshotService()

	aqi, err := svc.Get("aqi")
	if err != nil {
		t.Fatalf("Get(aqi) returned error: %v", err)
	}
	snap, ok := aqi.(models.AQISnapshot)
	if !ok {
		t.Fatalf("Get(aqi) returned %T", aqi)
	}
	if snap.Value <= 0 || snap.PM25 <= 0 || snap.PM10 <= 0 {
		t.Errorf("aqi snapshot has zero readings: %+v", snap)
	}
	if snap.Timestamp.IsZero() {
		t.Error("aqi snapshot missing timestamp")
	}

	water, err := svc.Get("water")
	if err != nil {
		t.Fatalf("Get(water) returned error: %v", err)
	}
	if _, ok := water.(models.WaterSnapshot); !ok {
		t.Fatalf("Get(water) returned %T", water)
	}

	weather, err := svc.Get("weather")
	if err != nil {
		t.Fatalf("Get(weather) returned error: %v", err)
	}
	forecast, ok := weather.([]models.ForecastDay)
	if !ok {
		t.Fatalf("Get(weather) returned %T", weather)
	}
	if len(forecast) != 7 {
		t.Fatalf("expected 7 forecast days, got %d", len(forecast))
	}

	_, err = svc.Get("soil")
	if !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestSnapshotServicePrimaryValue(t *testing.T) {
	svc := NewSnapshotService()

	for _, category := range []string{"aqi", "water", "weather"} {
		if _, ok := svc.PrimaryValue(category); !ok {
			t.Errorf("PrimaryValue(%q) not available", category)
		}
	}
	if _, ok := svc.PrimaryValue("soil"); ok {
		t.Error("PrimaryValue should not know unknown categories")
	}
}
