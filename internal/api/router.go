package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cargopanel/dashboard-gateway/internal/api/handler"
	"github.com/cargopanel/dashboard-gateway/internal/api/middleware"
	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
	"github.com/cargopanel/dashboard-gateway/internal/core/ports"
	"github.com/cargopanel/dashboard-gateway/internal/core/routes"
	"github.com/cargopanel/dashboard-gateway/internal/core/service"
	"github.com/cargopanel/dashboard-gateway/internal/core/session"
)

// Deps carries the constructed services the router wires into handlers.
type Deps struct {
	Mongo       *mongo.Database
	Redis       *redis.Client
	JWTSecret   string
	AuthService ports.AuthService
	Resources   ports.ResourceService
	Store       *session.Store
	BackendAuth *service.BackendAuthService
	Gate        *routes.Gate
	Logger      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	navHandler := handler.NewNavHandler(d.Gate)
	sessionHandler := handler.NewSessionHandler(d.Store, d.BackendAuth)
	partyHandler := handler.NewPartyHandler(d.Resources)
	packetHandler := handler.NewPacketHandler(d.Resources)
	productHandler := handler.NewProductHandler(d.Resources)
	clientHandler := handler.NewClientHandler(d.Resources)

	authRequired := middleware.Auth(d.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Mongo, d.Redis, d.Store)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?

	// --- Authenticated routes ---
	auth := e.Group("", authRequired)
	auth.POST("/auth/register", authHandler.Register, adminOnly)

	auth.GET("/nav/routes", navHandler.Routes)
	auth.GET("/nav/menu", navHandler.Menu)
	auth.GET("/nav/resolve", navHandler.Resolve)

	auth.GET("/session", sessionHandler.Current)
	auth.PUT("/session/lang", sessionHandler.SetLanguage)
	auth.POST("/session/login", sessionHandler.Login, adminOnly)
	auth.POST("/session/logout", sessionHandler.Logout, adminOnly)

	auth.GET("/parties", partyHandler.List)
	auth.POST("/parties", partyHandler.Create)
	auth.GET("/parties/:id", partyHandler.Get)
	auth.PUT("/parties/:id", partyHandler.Update)
	auth.DELETE("/parties/:id", partyHandler.Delete, adminOnly)

	auth.GET("/packets", packetHandler.List)
	auth.GET("/packets/:id", packetHandler.Get)
	auth.PUT("/packets/:id/status", packetHandler.UpdateStatus)

	auth.GET("/products", productHandler.List)

	auth.GET("/clients", clientHandler.List, adminOnly)

	return e
}
