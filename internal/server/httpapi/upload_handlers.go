package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// presignUpload hands the client a short-lived PUT URL plus the storage key
// to persist on the owning entity once the upload completes.
func (s *Server) presignUpload(c *gin.Context) {
	key, url, err := s.media.GetPresignedPutUrl(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "url": url})
}
