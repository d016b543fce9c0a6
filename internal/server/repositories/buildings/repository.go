// Package buildings declares the persistence contract for buildings.
package buildings

import (
	"context"

	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, building *models.Building) (*models.Building, error)
	GetByID(ctx context.Context, id string) (*models.Building, error)
	// List returns all buildings; a non-empty companyID narrows the result
	// to that company.
	List(ctx context.Context, companyID string) ([]*models.Building, error)
	Update(ctx context.Context, building *models.Building) error
	Delete(ctx context.Context, id string) error
}
