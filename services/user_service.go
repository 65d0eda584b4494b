package services

import (
	"errors"

	"github.com/itz-Mayank/Environmental-Sustainability/models"
	"github.com/itz-Mayank/Environmental-Sustainability/storage"
	"github.com/itz-Mayank/Environmental-Sustainability/utils"
)

var ErrBadCredentials = errors.New("invalid username or password")

type UserService struct {
	store storage.UserStore
}

func NewUserService(store storage.UserStore) *UserService {
	return &UserService{store: store}
}

func (s *UserService) Register(username, password, email string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: hashed,
		Email:    email,
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies credentials and mints a session token.
func (s *UserService) Authenticate(username, password string) (string, *models.User, error) {
	user, err := s.store.UserByUsername(username)
	if err != nil {
		return "", nil, ErrBadCredentials
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrBadCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Username)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *UserService) ByID(id uint) (*models.User, error) {
	return s.store.UserByID(id)
}
