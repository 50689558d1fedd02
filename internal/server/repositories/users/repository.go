// Package users provides the persistence boundary for user records.
package users

import (
	"context"

	"github.com/dmitrijs2005/acquisitions/internal/server/models"
)

// Repository is the user store. FindByEmail returns common.ErrUserNotFound
// when no record matches; Create returns common.ErrEmailExists when the
// unique email constraint is violated.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
