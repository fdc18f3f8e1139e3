package repository

import (
	"sync"

	"github.com/tair/blog-platform/internal/user/domain"
	"github.com/tair/blog-platform/pkg/apperr"
)

// MemoryUserRepository is an in-memory UserRepository used in tests
type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID uint
	users  []domain.User
}

// NewMemoryUserRepository creates an empty in-memory repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1}
}

// Create inserts a new user and assigns its id
func (r *MemoryUserRepository) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, cloneUser(*user))
	return nil
}

// FindByID retrieves a user by ID
func (r *MemoryUserRepository) FindByID(id uint) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			c := cloneUser(u)
			return &c, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

// FindByEmail retrieves a user by email
func (r *MemoryUserRepository) FindByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			c := cloneUser(u)
			return &c, nil
		}
	}
	return nil, apperr.NotFound("user not found")
}

// Update replaces a stored user
func (r *MemoryUserRepository) Update(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = cloneUser(*user)
			return nil
		}
	}
	return apperr.NotFound("user not found")
}

// Delete removes a user
func (r *MemoryUserRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("user not found")
}

// Count returns the number of stored users
func (r *MemoryUserRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

func cloneUser(u domain.User) domain.User {
	c := u
	c.Favourites = append(c.Favourites[:0:0], u.Favourites...)
	return c
}
