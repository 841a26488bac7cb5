// Package httpapi exposes the user directory over a reqres-compatible REST
// API built on gin.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/employwise/internal/logging"
	"github.com/dmitrijs2005/employwise/internal/server/users"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// UserService is the subset of users.Service the handlers depend on.
type UserService interface {
	Login(ctx context.Context, email string, password []byte) (string, error)
	Authenticate(ctx context.Context, token string) (int, error)
	List(ctx context.Context, page, perPage int) (*users.PageResult, error)
	Get(ctx context.Context, id int) (*users.User, error)
	Update(ctx context.Context, id int, patch users.Patch) (*users.User, error)
	Delete(ctx context.Context, id int) error
}

type HTTPServer struct {
	address string
	users   UserService
	logger  logging.Logger
}

func NewHTTPServer(address string, l logging.Logger, us UserService) *HTTPServer {
	return &HTTPServer{
		address: address,
		logger:  l.With("module", "http_server"),
		users:   us,
	}
}

// Router builds the gin engine with all routes mounted under /api.
func (s *HTTPServer) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	api := r.Group("/api")
	api.POST("/login", s.login)

	protected := api.Group("/users", s.bearerAuth())
	protected.GET("", s.listUsers)
	protected.GET("/:id", s.getUser)
	protected.PUT("/:id", s.updateUser)
	protected.PATCH("/:id", s.updateUser)
	protected.DELETE("/:id", s.deleteUser)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
