package auth

import (
	"context"
	"errors"

	"openskies/airfield/internal/db/repositories"
	gormModels "openskies/airfield/internal/models/gorm"
)

// Authorizer verifies basic-auth credentials against the user store.
type Authorizer struct {
	users *repositories.UserRepository
}

// NewAuthorizer creates a new authorizer over the user repository
func NewAuthorizer(users *repositories.UserRepository) *Authorizer {
	return &Authorizer{users: users}
}

// Authorize looks the username up and compares the password against
// the stored hash. An unknown username fails without invoking the
// hash comparison at all; that keeps the miss path cheap, at the cost
// of being distinguishable by timing.
func (a *Authorizer) Authorize(ctx context.Context, username, password string) (*gormModels.User, bool, error) {
	user, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return nil, false, nil
	}

	return user, true, nil
}
