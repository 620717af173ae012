// Command server runs the Care.IO booking API.
//
// @title        Care.IO Booking API
// @version      1.0
// @description  Caregiving-services booking API: listings, bookings, payments, admin.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/care-io/booking-system/docs"
	"github.com/care-io/booking-system/internal/api"
	"github.com/care-io/booking-system/internal/core/service"
	"github.com/care-io/booking-system/internal/infrastructure/config"
	mongodb "github.com/care-io/booking-system/internal/infrastructure/db/mongo"
	redisdb "github.com/care-io/booking-system/internal/infrastructure/db/redis"
	"github.com/care-io/booking-system/internal/infrastructure/notify"
	"github.com/care-io/booking-system/internal/infrastructure/payment"
	"github.com/care-io/booking-system/internal/infrastructure/queue"
	"github.com/care-io/booking-system/pkg/logger"
)

const (
	tokenTTL      = 24 * time.Hour
	noticeWorkers = 4
)

func main() {
	cfg := config.Load()

	log := logger.Init(cfg.LogLevel, cfg.Env == "development")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Persistence clients, owned here for the process lifetime ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	bookingRepo := mongodb.NewBookingRepository(db)
	userRepo := mongodb.NewUserRepository(db)

	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("booking indexes failed")
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	// --- Notification pipeline ---
	mailer := notify.NewMailer(notify.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	dispatcher := queue.NewDispatcher(noticeWorkers, mailer, redisdb.NewNoticeDedup(rdb), log)
	dispatcher.Start(ctx)

	// --- Services ---
	bookingService := service.NewBookingService(bookingRepo, dispatcher, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)
	adminService := service.NewAdminService(bookingRepo, userRepo, log)
	gateway := payment.NewStripeGateway(cfg.Stripe.SecretKey)

	e := api.NewRouter(api.Dependencies{
		DB:        db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
		Bookings:  bookingService,
		Auth:      authService,
		Admin:     adminService,
		Profile:   adminService,
		Payments:  gateway,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
