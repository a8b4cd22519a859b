package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/dgraph-io/badger/v4"

	"storefront/internal/repository/cartrecord"
	"storefront/internal/storefront"
)

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
	store      *badger.DB
}

// Deps carries the collaborators the handlers need.
type Deps struct {
	Remote  *storefront.Client
	Records cartrecord.Repository
}

// New builds a Server with the storefront routes.
func New(addr string, logger *log.Logger, store *badger.DB, deps Deps, allowedOrigins []string) (*Server, error) {
	router := buildRouter(logger, store, deps, allowedOrigins)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
		store:      store,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
