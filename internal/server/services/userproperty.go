package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/realtyhub/internal/common"
	"github.com/dmitrijs2005/realtyhub/internal/server/models"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/repomanager"
)

// UserPropertyService links users to properties (favorites, ownership).
type UserPropertyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserPropertyService(db *sql.DB, m repomanager.RepositoryManager) *UserPropertyService {
	return &UserPropertyService{db: db, repomanager: m}
}

func (s *UserPropertyService) Link(ctx context.Context, userID, propertyID, relation string) (*models.UserProperty, error) {
	switch relation {
	case models.RelationFavorite, models.RelationOwner:
	default:
		return nil, common.ErrorValidation
	}

	// reject dangling property ids up front, so the caller gets NotFound
	// instead of an FK violation
	if _, err := s.repomanager.Properties(s.db).GetByID(ctx, propertyID); err != nil {
		return nil, err
	}

	link := &models.UserProperty{UserID: userID, PropertyID: propertyID, Relation: relation}
	if err := s.repomanager.UserProperties(s.db).Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *UserPropertyService) ListByUser(ctx context.Context, userID string) ([]*models.UserProperty, error) {
	return s.repomanager.UserProperties(s.db).ListByUser(ctx, userID)
}

func (s *UserPropertyService) Unlink(ctx context.Context, userID, propertyID string) error {
	return s.repomanager.UserProperties(s.db).Delete(ctx, userID, propertyID)
}
