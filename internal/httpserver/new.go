package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"project-planner/internal/middleware"
	recHTTP "project-planner/internal/recommendation/delivery/http"
	"project-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Recommendation domain
	recommendationHandler recHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	RecommendationHandler recHTTP.Handler
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:                     logger,
		gin:                   gin.New(),
		port:                  cfg.Port,
		mode:                  cfg.Mode,
		environment:           cfg.Environment,
		mw:                    cfg.Middleware,
		recommendationHandler: cfg.RecommendationHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.recommendationHandler == nil {
		return errors.New("recommendation handler is required")
	}
	return nil
}
