package services

import (
	"errors"
	"fmt"

	"github.com/itz-Mayank/Environmental-Sustainability/models"
	"github.com/itz-Mayank/Environmental-Sustainability/storage"
)

// ErrInvalidAlert wraps all alert payload validation failures.
var ErrInvalidAlert = errors.New("invalid alert")

// ValidateAlertInput checks an alert payload before it is allowed anywhere
// near the store. The store itself never validates; callers must reject bad
// input first.
func ValidateAlertInput(typ string, threshold *float64) error {
	if !models.KnownCategory(typ) {
		return fmt.Errorf("%w: type must be one of aqi, water, weather", ErrInvalidAlert)
	}
	if threshold == nil {
		return fmt.Errorf("%w: threshold is required", ErrInvalidAlert)
	}
	return nil
}

type AlertService struct {
	store storage.AlertStore
}

func NewAlertService(store storage.AlertStore) *AlertService {
	return &AlertService{store: store}
}

// Create stores a new threshold alert for the given user. Input must already
// be validated.
func (s *AlertService) Create(userID uint, typ string, threshold float64) (*models.Alert, error) {
	alert := &models.Alert{
		UserID:    userID,
		Type:      typ,
		Threshold: threshold,
	}
	if err := s.store.CreateAlert(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

// ListByUser returns every alert owned by userID. The result is always a
// fresh slice, empty when the user has none.
func (s *AlertService) ListByUser(userID uint) ([]models.Alert, error) {
	return s.store.ListAlertsByUser(userID)
}
