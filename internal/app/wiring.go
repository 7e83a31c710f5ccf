package app

import (
	"fmt"

	"school-portal/internal/auth"
	"school-portal/internal/authz"
	"school-portal/internal/config"
	transporthttp "school-portal/internal/http"
	"school-portal/internal/http/handler"
	"school-portal/internal/repository/postgres"
	"school-portal/internal/storage/s3"
)

// InitializeService wires up all dependencies and returns a configured Service
func InitializeService() (*Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	accountRepo := postgres.NewAccountRepository(db)
	cardRepo := postgres.NewAccessCardRepository(db)
	permissionRepo := postgres.NewPermissionRepository(db)
	schoolRepo := postgres.NewSchoolRepository(db)
	itineraryRepo := postgres.NewItineraryRepository(db)

	gate := authz.NewGate(cardRepo, permissionRepo)
	jwtService := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpiryDuration)
	authMiddleware := auth.NewMiddleware(jwtService, gate)

	logos, err := logoResolver(cfg.Logos)
	if err != nil {
		db.Close()
		return nil, err
	}

	server := transporthttp.NewServer(&transporthttp.ServerDependencies{
		Config:         cfg,
		AccountRepo:    accountRepo,
		CardRepo:       cardRepo,
		SchoolRepo:     schoolRepo,
		ItineraryRepo:  itineraryRepo,
		Gate:           gate,
		JWTService:     jwtService,
		AuthMiddleware: authMiddleware,
		Logos:          logos,
	})

	return &Service{
		config: cfg,
		db:     db,
		server: server,
	}, nil
}

func logoResolver(cfg config.LogoConfig) (handler.LogoResolver, error) {
	if !cfg.Enabled() {
		return s3.PassthroughResolver{}, nil
	}

	client, err := s3.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}
	return client, nil
}
