package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/realtyhub/internal/common"
)

// writeError maps service errors onto HTTP responses. Known sentinels get
// their status and a stable message; anything else is logged in full and
// surfaced as a generic 500.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": common.ErrorInvalidCredentials.Error()})
	case errors.Is(err, common.ErrorInvalidSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": common.ErrorInvalidSession.Error()})
	case errors.Is(err, common.ErrorUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": common.ErrorNotFound.Error()})
	case errors.Is(err, common.ErrorAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": common.ErrorAlreadyExists.Error()})
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrorValidation.Error()})
	case errors.Is(err, common.ErrorInternal):
		fallthrough
	default:
		s.logger.Error(c.Request.Context(), "unexpected error", "error", err.Error(), "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
