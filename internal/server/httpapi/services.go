// Package httpapi exposes the REST surface of the server: the gin router,
// the session gate middleware, cookie handling, and the request handlers.
package httpapi

import (
	"context"

	"github.com/dmitrijs2005/realtyhub/internal/server/models"
	"github.com/dmitrijs2005/realtyhub/internal/server/services"
)

// Service contracts consumed by the handlers. The concrete implementations
// live in the services package; the interfaces keep the handlers testable
// with hand-rolled fakes.

type AuthService interface {
	Register(ctx context.Context, email, password, fullName string) (*models.User, *services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	Refresh(ctx context.Context, accessToken, refreshToken string) (*services.TokenPair, error)
	Me(ctx context.Context, userID string) (*models.User, error)
}

type CompanyService interface {
	Create(ctx context.Context, company *models.Company) (*models.Company, error)
	Get(ctx context.Context, id string) (*models.Company, error)
	List(ctx context.Context) ([]*models.Company, error)
	Update(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id string) error
}

type BuildingService interface {
	Create(ctx context.Context, building *models.Building) (*models.Building, error)
	Get(ctx context.Context, id string) (*models.Building, error)
	List(ctx context.Context, companyID string) ([]*models.Building, error)
	Update(ctx context.Context, building *models.Building) error
	Delete(ctx context.Context, id string) error
}

type PropertyService interface {
	Create(ctx context.Context, property *models.Property) (*models.Property, error)
	Get(ctx context.Context, id string) (*models.Property, error)
	List(ctx context.Context, filter models.PropertyFilter) ([]*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id string) error
}

type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User, password string) error
	Delete(ctx context.Context, id string) error
}

type UserPropertyService interface {
	Link(ctx context.Context, userID, propertyID, relation string) (*models.UserProperty, error)
	ListByUser(ctx context.Context, userID string) ([]*models.UserProperty, error)
	Unlink(ctx context.Context, userID, propertyID string) error
}

type MediaService interface {
	GetPresignedPutUrl(ctx context.Context) (string, string, error)
}
