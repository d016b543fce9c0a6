package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/realtyhub/internal/common"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, pair, err := s.auth.Register(c.Request.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		s.writeError(c, err)
		return
	}

	setAuthCookies(c.Writer, pair.AccessToken, pair.RefreshToken, s.config.CookieDomain,
		s.config.AccessTokenValidityDuration, s.config.RefreshTokenValidityDuration)
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, pair, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	setAuthCookies(c.Writer, pair.AccessToken, pair.RefreshToken, s.config.CookieDomain,
		s.config.AccessTokenValidityDuration, s.config.RefreshTokenValidityDuration)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

type refreshRequest struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// refreshToken rotates a token pair. The pair is taken from the request body
// when provided, otherwise from the cookies; the service rejects anything
// that does not match the stored pair.
func (s *Server) refreshToken(c *gin.Context) {
	var req refreshRequest
	_ = c.ShouldBindJSON(&req)

	accessToken, refreshToken := req.AccessToken, req.RefreshToken
	if accessToken == "" || refreshToken == "" {
		var errA, errR error
		accessToken, errA = c.Cookie(AccessTokenCookie)
		refreshToken, errR = c.Cookie(RefreshTokenCookie)
		if errA != nil || errR != nil {
			s.writeError(c, common.ErrorInvalidSession)
			return
		}
	}

	pair, err := s.auth.Refresh(c.Request.Context(), accessToken, refreshToken)
	if err != nil {
		s.writeError(c, err)
		return
	}

	setAuthCookies(c.Writer, pair.AccessToken, pair.RefreshToken, s.config.CookieDomain,
		s.config.AccessTokenValidityDuration, s.config.RefreshTokenValidityDuration)
	c.JSON(http.StatusOK, gin.H{"refreshed": true})
}

// logout clears both cookies. The stored pair is left in place; it becomes
// unreachable once the browser drops the cookies and is overwritten on the
// next login.
func (s *Server) logout(c *gin.Context) {
	clearAuthCookies(c.Writer, s.config.CookieDomain)
	c.JSON(http.StatusOK, gin.H{"loggedOut": true})
}

func (s *Server) me(c *gin.Context) {
	user, err := s.auth.Me(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
