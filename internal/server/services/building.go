package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/realtyhub/internal/logging"
	"github.com/dmitrijs2005/realtyhub/internal/server/models"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/repomanager"
)

// BuildingService exposes CRUD over buildings; reads are decorated with
// presigned image URLs.
type BuildingService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	media       *MediaService
	logger      logging.Logger
}

func NewBuildingService(db *sql.DB, m repomanager.RepositoryManager, media *MediaService, logger logging.Logger) *BuildingService {
	return &BuildingService{db: db, repomanager: m, media: media, logger: logger}
}

func (s *BuildingService) decorate(ctx context.Context, building *models.Building) {
	if urls, err := s.media.PresignKeys(ctx, building.ImageKeys); err == nil {
		building.ImageURLs = urls
	} else {
		s.logger.Warn(ctx, "presigning image keys failed", "buildingId", building.ID, "error", err.Error())
	}
}

func (s *BuildingService) Create(ctx context.Context, building *models.Building) (*models.Building, error) {
	return s.repomanager.Buildings(s.db).Create(ctx, building)
}

func (s *BuildingService) Get(ctx context.Context, id string) (*models.Building, error) {
	building, err := s.repomanager.Buildings(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(ctx, building)
	return building, nil
}

func (s *BuildingService) List(ctx context.Context, companyID string) ([]*models.Building, error) {
	list, err := s.repomanager.Buildings(s.db).List(ctx, companyID)
	if err != nil {
		return nil, err
	}
	for _, building := range list {
		s.decorate(ctx, building)
	}
	return list, nil
}

func (s *BuildingService) Update(ctx context.Context, building *models.Building) error {
	return s.repomanager.Buildings(s.db).Update(ctx, building)
}

func (s *BuildingService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Buildings(s.db).Delete(ctx, id)
}
