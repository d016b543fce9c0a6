package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

type companyRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Website     string `json:"website"`
	LogoKey     string `json:"logoKey"`
}

func (s *Server) createCompany(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company, err := s.companies.Create(c.Request.Context(), &models.Company{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoKey:     req.LogoKey,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (s *Server) getCompany(c *gin.Context) {
	company, err := s.companies.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (s *Server) listCompanies(c *gin.Context) {
	list, err := s.companies.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) updateCompany(c *gin.Context) {
	var req companyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	company := &models.Company{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoKey:     req.LogoKey,
	}
	if err := s.companies.Update(c.Request.Context(), company); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (s *Server) deleteCompany(c *gin.Context) {
	if err := s.companies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
