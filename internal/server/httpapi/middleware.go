package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/realtyhub/internal/server/auth"
)

// Context keys set by the session gate for downstream handlers.
const (
	ctxUserIDKey = "userID"
	ctxEmailKey  = "email"
)

// extractAccessToken pulls the access token from the Authorization header
// (preferred) or the access token cookie.
func extractAccessToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

// requireAuth is the session gate applied to protected routes. It verifies
// the access token's signature and expiry only; the token store is not
// consulted, so a rotated-but-unexpired access token is still honored until
// its stamped expiry elapses.
func requireAuth(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractAccessToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		claims, err := auth.ParseToken(tokenString, secretKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxEmailKey, claims.Email)
		c.Next()
	}
}

// currentUserID returns the authenticated user's id placed by requireAuth.
func currentUserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}

// requestLogger logs each request with its status through the server logger.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
		)
	}
}
