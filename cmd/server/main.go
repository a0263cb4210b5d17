package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"

	"github.com/outfique/backend/internal/config"
	"github.com/outfique/backend/internal/delivery/http"
	"github.com/outfique/backend/internal/domain"
	"github.com/outfique/backend/internal/logging"
	"github.com/outfique/backend/internal/media"
	"github.com/outfique/backend/internal/repository/postgres"
	"github.com/outfique/backend/internal/repository/session"
	"github.com/outfique/backend/internal/repository/supabase"
	"github.com/outfique/backend/internal/scheduler"
	"github.com/outfique/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	log := logging.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Dependency Injection: Repositories
	wardrobeRepo, notificationRepo, closeStore := openStore(ctx, cfg, log)
	defer closeStore()

	sessionStore, closeSession, err := openSessionStore(ctx, cfg, log)
	if err != nil {
		log.Error("Could not open session store", "backend", cfg.Session.Backend, "error", err)
		os.Exit(1)
	}
	defer closeSession()

	var uploader http.Uploader
	if cfg.S3Enabled() {
		s3Uploader, err := media.NewS3Uploader(ctx, media.S3Options{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			Endpoint:  cfg.S3.Endpoint,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			PublicURL: cfg.S3.PublicURL,
			Expires:   cfg.S3.PresignValid,
		})
		if err != nil {
			log.Warn("Photo uploads disabled", "error", err)
		} else {
			uploader = s3Uploader
			log.Info("Photo uploads enabled", "bucket", cfg.S3.Bucket)
		}
	}

	// Dependency Injection: Services
	notices := service.NewNoticeBoard(service.DefaultNoticeLimit, log)
	authSvc := service.NewAuthService(service.NewMockIdentityProvider(), sessionStore, log)
	wardrobeSvc := service.NewWardrobeService(wardrobeRepo, authSvc, notices, log)
	notificationSvc := service.NewNotificationService(notificationRepo, authSvc, log)
	authSvc.Subscribe(wardrobeSvc.OnUserChange)
	authSvc.Subscribe(notificationSvc.OnUserChange)

	weatherSvc := service.NewWeatherService(cfg.Weather.APIKey, cfg.Weather.BaseURL, cfg.Weather.Timeout)
	tracker := service.NewWeatherTracker(weatherSvc, log)
	suggestionSvc := service.NewSuggestionService(tracker, wardrobeSvc)
	feedSvc := service.NewFeedService(notices)

	if err := authSvc.Load(ctx); err != nil {
		log.Warn("Could not restore session", "error", err)
	}
	if !authSvc.IsAuthenticated() {
		// settle the initial loading state
		_ = wardrobeSvc.Fetch(ctx)
	}

	// Scheduled jobs
	sched := scheduler.New(log)
	if err := sched.AddSuggestionJob(cfg.Schedule.SuggestionCron, &scheduler.SuggestionJob{
		City:    cfg.Schedule.HomeCity,
		Users:   authSvc,
		Weather: weatherSvc,
		Inbox:   notificationSvc,
		Logger:  log,
		Timeout: cfg.Weather.Timeout,
	}); err != nil {
		log.Warn("Suggestion job not scheduled", "error", err)
	}
	sched.Start()

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "Outfique API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency}) ${locals:requestid}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Routes
	http.SetupRoutes(app, http.Deps{
		Auth:          authSvc,
		Wardrobe:      wardrobeSvc,
		Weather:       tracker,
		Suggestions:   suggestionSvc,
		Feed:          feedSvc,
		Notifications: notificationSvc,
		Notices:       notices,
		Uploader:      uploader,
		Store:         wardrobeRepo,
	})

	// Graceful shutdown
	go func() {
		log.Info("Server starting", "port", cfg.Server.Port, "env", cfg.App.Environment)
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	sched.Stop(shutdownCtx)
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
	}
	log.Info("Server exited gracefully")
}

// openStore picks the wardrobe and notification backends.
// A postgres connection failure falls back to memory so the API stays usable.
func openStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (domain.WardrobeRepository, domain.NotificationRepository, func()) {
	noop := func() {}

	switch cfg.Store.Backend {
	case config.StorePostgres:
		db, err := postgres.Connect(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			log.Warn("Could not connect to database, running in memory mode", "error", err)
			break
		}
		if err := db.Migrate(ctx); err != nil {
			log.Error("Migrations failed", "error", err)
			db.Close()
			os.Exit(1)
		}
		log.Info("Connected to PostgreSQL")
		return postgres.NewWardrobeRepository(db.DB()), postgres.NewNotificationRepository(db.DB()), db.Close

	case config.StoreSupabase:
		client := supabase.NewClient(cfg.Store.SupabaseURL, cfg.Store.SupabaseAnonKey, 10*time.Second)
		if err := client.Health(ctx); err != nil {
			log.Warn("Supabase health check failed", "error", err)
		}
		log.Info("Using Supabase wardrobe store", "url", cfg.Store.SupabaseURL)
		return client, postgres.NewMemoryNotificationRepository(), noop
	}

	log.Info("Using in-memory store")
	return postgres.NewMemoryWardrobeRepository(), postgres.NewMemoryNotificationRepository(), noop
}

func openSessionStore(ctx context.Context, cfg *config.Config, log *slog.Logger) (domain.SessionStore, func(), error) {
	switch cfg.Session.Backend {
	case config.SessionRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Session.RedisAddr,
			Password: cfg.Session.RedisPassword,
			DB:       cfg.Session.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		log.Info("Session store: redis", "addr", cfg.Session.RedisAddr)
		return session.NewRedisStore(client), closer(log, client), nil

	case config.SessionMemory:
		log.Info("Session store: memory")
		return session.NewMemoryStore(), func() {}, nil
	}

	store, err := session.OpenSQLite(ctx, cfg.Session.SQLitePath)
	if err != nil {
		return nil, nil, err
	}
	log.Info("Session store: sqlite", "path", cfg.Session.SQLitePath)
	return store, closer(log, store), nil
}

func closer(log *slog.Logger, c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			log.Error("Close failed", "error", err)
		}
	}
}
