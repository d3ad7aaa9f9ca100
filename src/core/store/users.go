package store

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mayurii-26/drive-smart-portal/src/core/models"
)

// Default admin credentials seeded on first boot.
const (
	DefaultAdminEmail    = "admin@drivesmart.gov.in"
	defaultAdminPassword = "admin123"
)

// UserStore persists credential records in an ordered JSON array.
type UserStore struct {
	mu   sync.Mutex
	path string
}

func NewUserStore(path string) *UserStore {
	return &UserStore{path: path}
}

// FindByEmail returns the user with the given email, or ErrNotFound.
// Lookup is case-insensitive on the email.
func (s *UserStore) FindByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := readJSON(s.path, &users); err != nil {
		return models.User{}, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

// Append adds a new user record, rejecting duplicate emails.
func (s *UserStore) Append(user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := readJSON(s.path, &users); err != nil {
		return err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}
	users = append(users, user)
	return writeJSON(s.path, users)
}

// All returns every credential record in insertion order.
func (s *UserStore) All() ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var users []models.User
	if err := readJSON(s.path, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SeedAdmin creates the default administrator account when no record
// with the default admin email exists yet.
func (s *UserStore) SeedAdmin() error {
	if _, err := s.FindByEmail(DefaultAdminEmail); err == nil {
		return nil
	} else if err != ErrNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.Append(models.User{
		ID:        "admin-001",
		Name:      "Administrator",
		Email:     DefaultAdminEmail,
		Password:  string(hash),
		Role:      models.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	})
}
