package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/user"
	"github.com/google/uuid"
)

// UserRepository is the in-memory User repository.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]user.User
}

// NewUserRepository builds an empty UserRepository.
func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]user.User)}
}

// FindAll implements user.Repository.
func (r *UserRepository) FindAll(ctx context.Context, filter user.Filter) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		result = append(result, u)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.Before(result[j].CreatedAt) })

	return paginate(result, filter.Offset, filter.Limit), nil
}

// FindByID implements user.Repository.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("user", id)
	}

	copied := u

	return &copied, nil
}

// FindByEmail implements user.Repository.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email.String() == email {
			copied := u
			return &copied, nil
		}
	}

	return nil, apperr.NotFound("user", email)
}

// Create implements user.Repository.
func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = uuid.NewString()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	r.users[u.ID] = u

	return u, nil
}

// Update implements user.Repository.
func (r *UserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[u.ID]
	if !ok {
		return user.User{}, apperr.NotFound("user", u.ID)
	}

	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	r.users[u.ID] = u

	return u, nil
}

// Delete implements user.Repository.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return apperr.NotFound("user", id)
	}

	delete(r.users, id)

	return nil
}
