package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/realtyhub/internal/common"
	"github.com/dmitrijs2005/realtyhub/internal/logging"
	"github.com/dmitrijs2005/realtyhub/internal/server/models"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/repomanager"
)

// PropertyService exposes CRUD and filtered listing over properties. Stored
// image and 3D-model keys are decorated into presigned GET URLs on read so
// the SPA gallery and viewer can load assets straight from object storage.
type PropertyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	media       *MediaService
	logger      logging.Logger
}

func NewPropertyService(db *sql.DB, m repomanager.RepositoryManager, media *MediaService, logger logging.Logger) *PropertyService {
	return &PropertyService{db: db, repomanager: m, media: media, logger: logger}
}

func validStatus(status string) bool {
	switch status {
	case models.PropertyStatusAvailable, models.PropertyStatusReserved, models.PropertyStatusSold:
		return true
	}
	return false
}

// decorate is best effort: on presign failure the response goes out without
// URLs and the failure is logged.
func (s *PropertyService) decorate(ctx context.Context, property *models.Property) {
	if urls, err := s.media.PresignKeys(ctx, property.ImageKeys); err == nil {
		property.ImageURLs = urls
	} else {
		s.logger.Warn(ctx, "presigning image keys failed", "propertyId", property.ID, "error", err.Error())
	}
	if property.Model3DKey != "" {
		if url, err := s.media.GetPresignedGetUrl(ctx, property.Model3DKey); err == nil {
			property.Model3DURL = url
		} else {
			s.logger.Warn(ctx, "presigning 3d model key failed", "propertyId", property.ID, "error", err.Error())
		}
	}
}

func (s *PropertyService) Create(ctx context.Context, property *models.Property) (*models.Property, error) {
	if property.Status == "" {
		property.Status = models.PropertyStatusAvailable
	}
	if !validStatus(property.Status) {
		return nil, common.ErrorValidation
	}
	return s.repomanager.Properties(s.db).Create(ctx, property)
}

func (s *PropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	property, err := s.repomanager.Properties(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(ctx, property)
	return property, nil
}

func (s *PropertyService) List(ctx context.Context, filter models.PropertyFilter) ([]*models.Property, error) {
	if filter.Status != "" && !validStatus(filter.Status) {
		return nil, common.ErrorValidation
	}
	list, err := s.repomanager.Properties(s.db).List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for _, property := range list {
		s.decorate(ctx, property)
	}
	return list, nil
}

func (s *PropertyService) Update(ctx context.Context, property *models.Property) error {
	if !validStatus(property.Status) {
		return common.ErrorValidation
	}
	return s.repomanager.Properties(s.db).Update(ctx, property)
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Properties(s.db).Delete(ctx, id)
}
