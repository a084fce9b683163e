package user

import "context"

// Filter narrows a FindAll listing.
type Filter struct {
	Limit  int
	Offset int
}

// Repository is the storage contract for User. Users support only a
// hard delete — there is no logical delete, restore, or deletion-check,
// since User is outside the unified deletion subsystem.
type Repository interface {
	FindAll(ctx context.Context, filter Filter) ([]User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id string) error
}
