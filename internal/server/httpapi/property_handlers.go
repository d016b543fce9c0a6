package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/realtyhub/internal/server/models"
)

type propertyRequest struct {
	BuildingID  string   `json:"buildingId" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	AreaM2      float64  `json:"areaM2"`
	Rooms       int      `json:"rooms"`
	Floor       int      `json:"floor"`
	Status      string   `json:"status"`
	ImageKeys   []string `json:"imageKeys"`
	Model3DKey  string   `json:"model3dKey"`
}

func (r *propertyRequest) toModel(id string) *models.Property {
	return &models.Property{
		ID:          id,
		BuildingID:  r.BuildingID,
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		AreaM2:      r.AreaM2,
		Rooms:       r.Rooms,
		Floor:       r.Floor,
		Status:      r.Status,
		ImageKeys:   r.ImageKeys,
		Model3DKey:  r.Model3DKey,
	}
}

// propertyFilterFromQuery reads listing filters off the query string.
// Unparseable numbers are treated as absent.
func propertyFilterFromQuery(c *gin.Context) models.PropertyFilter {
	filter := models.PropertyFilter{
		BuildingID: c.Query("buildingId"),
		City:       c.Query("city"),
		Status:     c.Query("status"),
	}
	if v, err := strconv.ParseInt(c.Query("minPrice"), 10, 64); err == nil {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseInt(c.Query("maxPrice"), 10, 64); err == nil {
		filter.MaxPrice = v
	}
	if v, err := strconv.Atoi(c.Query("rooms")); err == nil {
		filter.Rooms = v
	}
	return filter
}

func (s *Server) createProperty(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property, err := s.properties.Create(c.Request.Context(), req.toModel(""))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, property)
}

func (s *Server) getProperty(c *gin.Context) {
	property, err := s.properties.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (s *Server) listProperties(c *gin.Context) {
	list, err := s.properties.List(c.Request.Context(), propertyFilterFromQuery(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) updateProperty(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	property := req.toModel(c.Param("id"))
	if err := s.properties.Update(c.Request.Context(), property); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, property)
}

func (s *Server) deleteProperty(c *gin.Context) {
	if err := s.properties.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
