package storage

import (
	"errors"

	"github.com/itz-Mayank/Environmental-Sustainability/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateUsername is returned when a username is already taken.
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserStore owns user records.
type UserStore interface {
	CreateUser(user *models.User) error
	UserByID(id uint) (*models.User, error)
	UserByUsername(username string) (*models.User, error)
}

// AlertStore owns threshold alert records. Ids are unique within alerts;
// ListAlertsByUser returns a fresh slice the caller may mutate freely.
type AlertStore interface {
	CreateAlert(alert *models.Alert) error
	ListAlertsByUser(userID uint) ([]models.Alert, error)
}

// Store is the full persistence surface, constructed once at startup and
// passed explicitly to whatever needs it.
type Store interface {
	UserStore
	AlertStore
}
