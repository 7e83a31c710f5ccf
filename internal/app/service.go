package app

import (
	"context"
	"log"
	"time"

	"school-portal/internal/config"
	transporthttp "school-portal/internal/http"
	"school-portal/internal/repository/postgres"
)

// Service is the assembled portal: database pool, authorization gate, and
// HTTP server, ready to run.
type Service struct {
	config *config.Config
	db     *postgres.DB
	server *transporthttp.Server
}

// NewService creates and initializes a new Service instance.
// This is a convenience wrapper around InitializeService.
func NewService() (*Service, error) {
	return InitializeService()
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Service) Start() error {
	log.Printf("Starting school portal on port %s...", s.config.Server.Port)
	return s.server.Start(":" + s.config.Server.Port)
}

// Shutdown gracefully shuts down the service and closes the database pool.
func (s *Service) Shutdown(ctx context.Context) error {
	defer s.db.Close()
	return s.server.Shutdown(ctx)
}

// ShutdownTimeout reports how long a graceful shutdown may take.
func (s *Service) ShutdownTimeout() time.Duration {
	return s.config.Server.ShutdownTimeout
}
