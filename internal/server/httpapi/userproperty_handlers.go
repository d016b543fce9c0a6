package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type linkPropertyRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
	Relation   string `json:"relation" binding:"required"`
}

// User-property links are always scoped to the authenticated user; the
// handlers never accept a userId from the client.

func (s *Server) linkUserProperty(c *gin.Context) {
	var req linkPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := s.userProperties.Link(c.Request.Context(), currentUserID(c), req.PropertyID, req.Relation)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

func (s *Server) listUserProperties(c *gin.Context) {
	list, err := s.userProperties.ListByUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) unlinkUserProperty(c *gin.Context) {
	if err := s.userProperties.Unlink(c.Request.Context(), currentUserID(c), c.Param("propertyId")); err != nil {
		s.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
