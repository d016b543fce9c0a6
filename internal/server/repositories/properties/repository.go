// Package properties declares the persistence contract for property listings.
package properties

import (
	"context"

	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, property *models.Property) (*models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	// List returns properties matching the filter, newest first.
	List(ctx context.Context, filter models.PropertyFilter) ([]*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id string) error
}
