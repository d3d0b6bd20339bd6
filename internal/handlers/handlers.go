package handlers

import (
	"VitalLog/internal/config"
	"VitalLog/internal/middleware"
	"VitalLog/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	healthService *service.HealthService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	healthHandler := NewHealthHandler(healthService, logger, config)

	// User routes
	r.Post("/api/users", userHandler.Register)
	r.Post("/api/users/login", userHandler.Login)

	// Health-data routes
	r.Post("/api/health-data", healthHandler.Submit)
	r.Get("/api/health-data/{userID}", healthHandler.List)

	return &Handler{Router: r}
}
