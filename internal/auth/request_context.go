package auth

import (
	"context"

	gormModels "openskies/airfield/internal/models/gorm"
)

type contextKey string

var authedUserKey contextKey = "authed_user"

// SetAuthedUser stores the basic-auth authenticated user for the login handler.
func SetAuthedUser(ctx context.Context, user *gormModels.User) context.Context {
	return context.WithValue(ctx, authedUserKey, user)
}

// GetAuthedUser retrieves the authenticated user, or nil.
func GetAuthedUser(ctx context.Context) *gormModels.User {
	val := ctx.Value(authedUserKey)
	if user, ok := val.(*gormModels.User); ok {
		return user
	}
	return nil
}
