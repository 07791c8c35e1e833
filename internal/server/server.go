package server

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/bobmcallan/insurancebuddy/internal/app"
	"github.com/bobmcallan/insurancebuddy/internal/common"
)

// Server wraps the HTTP server and application reference.
type Server struct {
	app            *app.App
	server         *http.Server
	logger         *common.Logger
	pages          map[string]*template.Template
	contactLimiter *clientLimiter
	loginLimiter   *clientLimiter
}

// NewServer creates the site server: HTML pages plus the JSON API.
func NewServer(a *app.App) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		app:            a,
		logger:         a.Logger,
		pages:          pages,
		contactLimiter: newClientLimiter(a.Config.Contact.RatePerMinute, a.Config.Contact.Burst),
		loginLimiter:   newClientLimiter(a.Config.Contact.RatePerMinute, a.Config.Contact.Burst),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := applyMiddleware(mux, a.Logger, a.Config, a.Storage.InternalStore())

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", a.Config.Server.Host, a.Config.Server.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s, nil
}

func (s *Server) clientKey(r *http.Request) string {
	return clientKey(r, s.app.Config.Server.TrustProxy)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting site server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
