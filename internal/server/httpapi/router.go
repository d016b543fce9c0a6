package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/realtyhub/internal/logging"
	"github.com/dmitrijs2005/realtyhub/internal/server/config"
)

// Server wires the gin engine, the services, and the http.Server lifecycle.
type Server struct {
	config *config.Config
	logger logging.Logger

	auth           AuthService
	companies      CompanyService
	buildings      BuildingService
	properties     PropertyService
	users          UserService
	userProperties UserPropertyService
	media          MediaService

	httpServer *http.Server
}

// Services bundles the concrete service implementations handed to the server.
type Services struct {
	Auth           AuthService
	Companies      CompanyService
	Buildings      BuildingService
	Properties     PropertyService
	Users          UserService
	UserProperties UserPropertyService
	Media          MediaService
}

func NewServer(cfg *config.Config, logger logging.Logger, svc Services) *Server {
	return &Server{
		config:         cfg,
		logger:         logger,
		auth:           svc.Auth,
		companies:      svc.Companies,
		buildings:      svc.Buildings,
		properties:     svc.Properties,
		users:          svc.Users,
		userProperties: svc.UserProperties,
		media:          svc.Media,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", s.register)
		authGroup.POST("/login", s.login)
		authGroup.POST("/refresh-token", s.refreshToken)
		authGroup.POST("/logout", requireAuth([]byte(s.config.SecretKey)), s.logout)
		authGroup.GET("/me", requireAuth([]byte(s.config.SecretKey)), s.me)
	}

	// catalog reads are public, everything mutating is gated
	api.GET("/companies", s.listCompanies)
	api.GET("/companies/:id", s.getCompany)
	api.GET("/buildings", s.listBuildings)
	api.GET("/buildings/:id", s.getBuilding)
	api.GET("/properties", s.listProperties)
	api.GET("/properties/:id", s.getProperty)

	protected := api.Group("/", requireAuth([]byte(s.config.SecretKey)))
	{
		protected.POST("/companies", s.createCompany)
		protected.PUT("/companies/:id", s.updateCompany)
		protected.DELETE("/companies/:id", s.deleteCompany)

		protected.POST("/buildings", s.createBuilding)
		protected.PUT("/buildings/:id", s.updateBuilding)
		protected.DELETE("/buildings/:id", s.deleteBuilding)

		protected.POST("/properties", s.createProperty)
		protected.PUT("/properties/:id", s.updateProperty)
		protected.DELETE("/properties/:id", s.deleteProperty)

		protected.GET("/users", s.listUsers)
		protected.GET("/users/:id", s.getUser)
		protected.PUT("/users/:id", s.updateUser)
		protected.DELETE("/users/:id", s.deleteUser)

		protected.GET("/user-properties", s.listUserProperties)
		protected.POST("/user-properties", s.linkUserProperty)
		protected.DELETE("/user-properties/:propertyId", s.unlinkUserProperty)

		protected.POST("/uploads/presign", s.presignUpload)
	}

	return r
}

// Run starts the HTTP server and blocks until ctx is canceled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.config.EndpointAddrHTTP,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.config.EndpointAddrHTTP)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info(ctx, "shutting down http server")
	return s.httpServer.Shutdown(shutdownCtx)
}
