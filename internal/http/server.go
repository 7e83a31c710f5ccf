package http

import (
	"context"
	stdhttp "net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"school-portal/internal/auth"
	"school-portal/internal/authz"
	"school-portal/internal/config"
	"school-portal/internal/http/handler"
	"school-portal/internal/http/middleware"
	"school-portal/internal/repository"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	requestBodyLimit = "1M"

	// Resource pairs for the permission registry. Route definitions own
	// these; request content never does.
	resourceItineraries = "itineraries"
	resourceNameView    = "view"
	resourceNameManage  = "manage"
	resourceAccessCards = "access-cards"
	resourceNameOwn     = "own"
)

type ServerDependencies struct {
	Config         *config.Config
	AccountRepo    repository.AccountRepository
	CardRepo       repository.AccessCardRepository
	SchoolRepo     repository.SchoolRepository
	ItineraryRepo  repository.ItineraryRepository
	Gate           *authz.Gate
	JWTService     *auth.JWTService
	AuthMiddleware *auth.Middleware
	Logos          handler.LogoResolver
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID first, so all logs have one.
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	globalRateLimiter := middleware.NewGlobalRateLimiter()
	strictRateLimiter := middleware.NewStrictRateLimiter()

	authHandler := handler.NewAuthHandler(deps.AccountRepo, deps.CardRepo, deps.JWTService, deps.Logos)
	cardHandler := handler.NewAccessCardHandler(deps.CardRepo, deps.Logos)
	schoolHandler := handler.NewSchoolHandler(deps.SchoolRepo, deps.Logos)
	itineraryHandler := handler.NewItineraryHandler(deps.ItineraryRepo)
	accessHandler := handler.NewAccessHandler(deps.Gate)

	e.POST("/auth/login", authHandler.Login, strictRateLimiter.Middleware())
	e.GET("/health", healthCheck)

	api := e.Group("/api")
	api.Use(deps.AuthMiddleware.RequireSession())
	// After RequireSession so the limiter keys by account, not IP.
	api.Use(globalRateLimiter.Middleware())

	api.GET("/access-cards", cardHandler.List, deps.AuthMiddleware.RequireAccess(resourceAccessCards, resourceNameOwn))
	api.GET("/schools", schoolHandler.List)
	api.GET("/access/:type/:resource", accessHandler.Check)

	api.GET("/itineraries", itineraryHandler.List, deps.AuthMiddleware.RequireAccess(resourceItineraries, resourceNameView))
	api.GET("/itineraries/:id", itineraryHandler.Get, deps.AuthMiddleware.RequireAccess(resourceItineraries, resourceNameView))
	api.POST("/itineraries", itineraryHandler.Create, deps.AuthMiddleware.RequireAccess(resourceItineraries, resourceNameManage))
	api.PUT("/itineraries/:id", itineraryHandler.Update, deps.AuthMiddleware.RequireAccess(resourceItineraries, resourceNameManage))
	api.DELETE("/itineraries/:id", itineraryHandler.Delete, deps.AuthMiddleware.RequireAccess(resourceItineraries, resourceNameManage))

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(c echo.Context) error {
	return c.JSON(stdhttp.StatusOK, map[string]string{
		jsonKeyStatus: statusOK,
	})
}
