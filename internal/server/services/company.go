package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/realtyhub/internal/logging"
	"github.com/dmitrijs2005/realtyhub/internal/server/models"
	"github.com/dmitrijs2005/realtyhub/internal/server/repositories/repomanager"
)

// CompanyService exposes CRUD over developer companies; reads are decorated
// with a presigned logo URL.
type CompanyService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	media       *MediaService
	logger      logging.Logger
}

func NewCompanyService(db *sql.DB, m repomanager.RepositoryManager, media *MediaService, logger logging.Logger) *CompanyService {
	return &CompanyService{db: db, repomanager: m, media: media, logger: logger}
}

func (s *CompanyService) decorate(ctx context.Context, company *models.Company) {
	if company.LogoKey == "" {
		return
	}
	// best effort: a missing URL only degrades the listing
	if url, err := s.media.GetPresignedGetUrl(ctx, company.LogoKey); err == nil {
		company.LogoURL = url
	} else {
		s.logger.Warn(ctx, "presigning logo key failed", "companyId", company.ID, "error", err.Error())
	}
}

func (s *CompanyService) Create(ctx context.Context, company *models.Company) (*models.Company, error) {
	return s.repomanager.Companies(s.db).Create(ctx, company)
}

func (s *CompanyService) Get(ctx context.Context, id string) (*models.Company, error) {
	company, err := s.repomanager.Companies(s.db).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.decorate(ctx, company)
	return company, nil
}

func (s *CompanyService) List(ctx context.Context) ([]*models.Company, error) {
	list, err := s.repomanager.Companies(s.db).List(ctx)
	if err != nil {
		return nil, err
	}
	for _, company := range list {
		s.decorate(ctx, company)
	}
	return list, nil
}

func (s *CompanyService) Update(ctx context.Context, company *models.Company) error {
	return s.repomanager.Companies(s.db).Update(ctx, company)
}

func (s *CompanyService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Companies(s.db).Delete(ctx, id)
}
