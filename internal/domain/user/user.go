// Package user holds the User aggregate. Users are never soft-deleted —
// they are outside the deletion subsystem and support only a hard delete.
package user

import (
	"strings"
	"time"

	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/domain/metadata"
	"github.com/catalogsvc/catalog/internal/domain/shared"
)

// User is the aggregate root. Metadata is populated by the service
// layer from the metadata sidecar, never by the repository itself.
type User struct {
	ID        string
	Username  string
	Email     shared.Email
	CreatedAt time.Time
	UpdatedAt time.Time
	Metadata  metadata.JSON
}

// CreateInput is the payload accepted by UserService.Create.
type CreateInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UpdateInput is a partial update: zero-value fields are left unchanged.
type UpdateInput struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// New validates input and constructs a new User.
func New(input CreateInput) (*User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, apperr.Validation("username", "username must not be empty")
	}

	if len(username) > 255 {
		return nil, apperr.Validation("username", "username must be at most 255 characters")
	}

	email, err := shared.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	return &User{Username: username, Email: email}, nil
}

// ApplyUpdate applies the non-nil fields of input, returning the updated
// copy. Identifier and timestamps are preserved by the caller.
func (u User) ApplyUpdate(input UpdateInput) (User, error) {
	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			return User{}, apperr.Validation("username", "username must not be empty")
		}

		if len(username) > 255 {
			return User{}, apperr.Validation("username", "username must be at most 255 characters")
		}

		u.Username = username
	}

	if input.Email != nil {
		email, err := shared.NewEmail(*input.Email)
		if err != nil {
			return User{}, err
		}

		u.Email = email
	}

	return u, nil
}
