package services

import (
	"context"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/user"
	"github.com/catalogsvc/catalog/internal/metrics"
	"github.com/catalogsvc/catalog/internal/platform/logging"
)

const userServiceName = "user"

// UserService orchestrates User use cases. Users support only a hard
// delete, so the delete operation is exposed directly on this service
// rather than routed through the deletion facade, which only covers
// Item, Category and Product.
type UserService struct {
	repo user.Repository
}

// NewUserService builds a UserService bound to repo.
func NewUserService(repo user.Repository) *UserService {
	return &UserService{repo: repo}
}

// FindAll lists users, applying filter.
func (s *UserService) FindAll(ctx context.Context, filter user.Filter) ([]user.User, error) {
	return metrics.WithMetricsResult(ctx, userServiceName, "find_all", func(ctx context.Context) ([]user.User, error) {
		return s.repo.FindAll(ctx, filter)
	})
}

// FindByID looks up a single user by id.
func (s *UserService) FindByID(ctx context.Context, id string) (*user.User, error) {
	return metrics.WithMetricsResult(ctx, userServiceName, "find_by_id", func(ctx context.Context) (*user.User, error) {
		return s.repo.FindByID(ctx, id)
	})
}

// Create validates input and persists a new User.
func (s *UserService) Create(ctx context.Context, input user.CreateInput) (user.User, error) {
	return metrics.WithMetricsResult(ctx, userServiceName, "create", func(ctx context.Context) (user.User, error) {
		logger := logging.FromContext(ctx)

		newUser, err := user.New(input)
		if err != nil {
			logger.Warnf("user creation rejected: %v", err)
			return user.User{}, err
		}

		if existing, _ := s.repo.FindByEmail(ctx, newUser.Email.String()); existing != nil {
			return user.User{}, apperr.Conflict("user", "a user with this email already exists")
		}

		return s.repo.Create(ctx, *newUser)
	})
}

// Update applies a partial update to an existing User.
func (s *UserService) Update(ctx context.Context, id string, input user.UpdateInput) (user.User, error) {
	return metrics.WithMetricsResult(ctx, userServiceName, "update", func(ctx context.Context) (user.User, error) {
		existing, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return user.User{}, err
		}

		updated, err := existing.ApplyUpdate(input)
		if err != nil {
			return user.User{}, err
		}

		return s.repo.Update(ctx, updated)
	})
}

// Delete hard-deletes a User. Users are outside the unified deletion
// subsystem (no logical delete, no restore) per the data model.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return metrics.WithMetrics(ctx, userServiceName, "delete", func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}
