// Package userproperties declares the persistence contract for user↔property
// links (favorites, ownership).
package userproperties

import (
	"context"

	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

type Repository interface {
	// Create links a user to a property. Linking the same pair twice yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, link *models.UserProperty) error

	// ListByUser returns all links for a user.
	ListByUser(ctx context.Context, userID string) ([]*models.UserProperty, error)

	// Delete removes a link; absent links yield common.ErrorNotFound.
	Delete(ctx context.Context, userID, propertyID string) error
}
