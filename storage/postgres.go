package storage

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/itz-Mayank/Environmental-Sustainability/models"
)

// GormStore backs the store with a Postgres database through GORM.
// Ids come from the database sequences of the users and alerts tables.
type GormStore struct {
	db *gorm.DB
}

// OpenPostgres connects to the given DSN and migrates the schema.
func OpenPostgres(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Alert{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// CreateUser relies on the unique index on username; losing a concurrent
// race still surfaces as ErrDuplicateUsername.
func (s *GormStore) CreateUser(user *models.User) error {
	if err := s.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}

func (s *GormStore) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) CreateAlert(alert *models.Alert) error {
	alert.Active = true
	alert.CreatedAt = time.Now()
	return s.db.Create(alert).Error
}

func (s *GormStore) ListAlertsByUser(userID uint) ([]models.Alert, error) {
	alerts := make([]models.Alert, 0)
	if err := s.db.Where("user_id = ?", userID).Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}
