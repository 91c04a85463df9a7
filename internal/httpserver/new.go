package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"support-router/config"
	"support-router/internal/customer"
	"support-router/internal/router"
	"support-router/internal/support"
	"support-router/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Domains
	customerUC customer.UseCase
	supportUC  support.UseCase
	router     router.Router

	// Readiness probe, e.g. a database ping. Nil means always ready.
	ready func() error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	CustomerUC customer.UseCase
	SupportUC  support.UseCase
	Router     router.Router

	Ready func() error
}

// New creates a new HTTPServer instance with every route mounted.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimit,
		customerUC:  cfg.CustomerUC,
		supportUC:   cfg.SupportUC,
		router:      cfg.Router,
		ready:       cfg.Ready,
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
	if srv.customerUC == nil || srv.supportUC == nil || srv.router == nil {
		return errors.New("customer, support and router use cases are required")
	}
	return nil
}
