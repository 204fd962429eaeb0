package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ai-task-assistant/internal/middleware"
	"ai-task-assistant/internal/summary"
	"ai-task-assistant/internal/task"
	"ai-task-assistant/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	trustedProxies  []string
	mw              middleware.Middleware

	// Domains
	taskUC    task.UseCase
	summaryUC summary.UseCase

	readinessCheck func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	TrustedProxies  []string // nil trusts no proxy headers
	Middleware      middleware.Middleware

	// Domains
	TaskUseCase    task.UseCase
	SummaryUseCase summary.UseCase

	// ReadinessCheck is optional; a non-nil error makes /ready answer 503.
	ReadinessCheck func(ctx context.Context) error
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		trustedProxies:  cfg.TrustedProxies,
		mw:              cfg.Middleware,
		taskUC:          cfg.TaskUseCase,
		summaryUC:       cfg.SummaryUseCase,
		readinessCheck:  cfg.ReadinessCheck,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.gin.SetTrustedProxies(srv.trustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

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
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	if srv.summaryUC == nil {
		return errors.New("summary use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}
