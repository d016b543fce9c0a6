// Package users declares the persistence contract for user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

// Repository defines operations over the users table.
type Repository interface {
	// Create inserts a new user and returns it with the generated id.
	// A duplicate email yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the exact (case-sensitive) email,
	// or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByID returns the user by id, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)

	// List returns all users ordered by creation time.
	List(ctx context.Context) ([]*models.User, error)

	// Update overwrites the mutable fields of an existing user.
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user; token pairs and user-property links cascade.
	Delete(ctx context.Context, id string) error
}
