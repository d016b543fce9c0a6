package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

type buildingRequest struct {
	CompanyID string   `json:"companyId" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	ImageKeys []string `json:"imageKeys"`
}

func (r *buildingRequest) toModel(id string) *models.Building {
	return &models.Building{
		ID:        id,
		CompanyID: r.CompanyID,
		Name:      r.Name,
		Address:   r.Address,
		City:      r.City,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		ImageKeys: r.ImageKeys,
	}
}

func (s *Server) createBuilding(c *gin.Context) {
	var req buildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	building, err := s.buildings.Create(c.Request.Context(), req.toModel(""))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, building)
}

func (s *Server) getBuilding(c *gin.Context) {
	building, err := s.buildings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, building)
}

func (s *Server) listBuildings(c *gin.Context) {
	list, err := s.buildings.List(c.Request.Context(), c.Query("companyId"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) updateBuilding(c *gin.Context) {
	var req buildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	building := req.toModel(c.Param("id"))
	if err := s.buildings.Update(c.Request.Context(), building); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, building)
}

func (s *Server) deleteBuilding(c *gin.Context) {
	if err := s.buildings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
