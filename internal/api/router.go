package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/care-io/booking-system/internal/api/handler"
	"github.com/care-io/booking-system/internal/api/middleware"
	"github.com/care-io/booking-system/internal/core/domain"
	"github.com/care-io/booking-system/internal/core/ports"
	"github.com/care-io/booking-system/internal/infrastructure/http/handlers"
)

// Dependencies carries everything the HTTP surface needs. All handles are
// constructed and owned by the composition root.
type Dependencies struct {
	DB        *mongo.Database
	Redis     *redis.Client
	JWTSecret string
	Logger    zerolog.Logger

	Bookings ports.BookingService
	Auth     ports.AuthService
	Admin    ports.AdminService
	Profile  ports.ProfileService
	Payments ports.PaymentGateway
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("careio"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	paymentHandler := handler.NewPaymentHandler(deps.Payments)
	adminHandler := handler.NewAdminHandler(deps.Admin)
	userHandler := handler.NewUserHandler(deps.Profile)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/federated", authHandler.Federated)

	// --- Authenticated API ---
	v1 := e.Group("/v1", middleware.Auth(deps.JWTSecret))
	v1.POST("/bookings", bookingHandler.Create)
	v1.GET("/bookings", bookingHandler.List)
	v1.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)
	v1.PUT("/users/me", userHandler.UpdateProfile)
	v1.POST("/payments/intent", paymentHandler.CreateIntent)

	// --- Admin routes ---
	admin := v1.Group("/admin", middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/payments", adminHandler.PaymentHistory)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users", adminHandler.UpdateUserRole)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
