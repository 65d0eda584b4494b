package storage

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/itz-Mayank/Environmental-Sustainability/models"
)

// MemoryStore keeps all records in process memory. It is the default backend
// when no database is configured; nothing survives a restart.
type MemoryStore struct {
	mu     sync.RWMutex
	users  map[uint]models.User
	alerts map[uint]models.Alert

	// independent counters per entity type
	userSeq  atomic.Uint64
	alertSeq atomic.Uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[uint]models.User),
		alerts: make(map[uint]models.Alert),
	}
}

func (s *MemoryStore) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrDuplicateUsername
		}
	}
	user.ID = uint(s.userSeq.Add(1))
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users[user.ID] = *user
	return nil
}

func (s *MemoryStore) UserByID(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *MemoryStore) UserByUsername(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateAlert(alert *models.Alert) error {
	alert.ID = uint(s.alertSeq.Add(1))
	alert.Active = true
	alert.CreatedAt = time.Now()
	s.mu.Lock()
	s.alerts[alert.ID] = *alert
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) ListAlertsByUser(userID uint) ([]models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Alert, 0)
	for _, a := range s.alerts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}
