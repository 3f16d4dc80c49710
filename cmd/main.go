package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/step_challenge_backend/internal/cache"
	"github.com/shenikar/step_challenge_backend/internal/config"
	"github.com/shenikar/step_challenge_backend/internal/fcm"
	v1 "github.com/shenikar/step_challenge_backend/internal/handler/http/v1"
	"github.com/shenikar/step_challenge_backend/internal/repository"
	"github.com/shenikar/step_challenge_backend/internal/service"
	"github.com/shenikar/step_challenge_backend/pkg/logger"
	"github.com/shenikar/step_challenge_backend/pkg/postgres"
	redisclient "github.com/shenikar/step_challenge_backend/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/step_challenge_backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Step Challenge API
// @version 1.0
// @description Backend of the step challenge app: access code webhook, push notifications, GPS sessions and dashboards.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newPushSender returns nil when no FCM credentials are configured.
// Notifications then fail with service.ErrPushNotConfigured.
func newPushSender(cfg *config.Config, log *logrus.Logger) (service.PushSender, error) {
	account, err := fcm.LoadServiceAccount(cfg.FirebaseCredentials, cfg.FirebaseCredentialsPath)
	if err != nil {
		if errors.Is(err, fcm.ErrNoCredentials) {
			log.Warn("FCM credentials not configured, push notifications disabled")
			return nil, nil
		}
		return nil, err
	}

	client, err := fcm.NewClient(*account, fcm.WithHTTPClient(&http.Client{Timeout: cfg.FCMTimeout}))
	if err != nil {
		return nil, err
	}
	log.WithField("project_id", account.ProjectID).Info("FCM client initialized")
	return client, nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	userCache := cache.New(cache.NewRedisStore(redisClient), cfg.CachePrefix, log, cache.WithTTL(cfg.CacheTTL))

	pushSender, err := newPushSender(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize FCM client: %v", err)
	}

	accessCodeRepo := repository.NewAccessCodeRepository(dbpool)
	pushTokenRepo := repository.NewPushTokenRepository(dbpool)
	walkSessionRepo := repository.NewWalkSessionRepository(dbpool)
	profileRepo := repository.NewProfileRepository(dbpool)

	handler := v1.NewHandler(v1.Services{
		AccessCodes:   service.NewAccessCodeService(accessCodeRepo, log),
		Notifications: service.NewNotificationService(pushTokenRepo, pushSender, log, cfg.FCMSendConcurrency),
		Tracking:      service.NewTrackingService(walkSessionRepo, log, cfg.MinMovementKm()),
		Profiles:      service.NewProfileService(profileRepo, userCache, log, cfg.LeaderboardLimit),
	}, log, cfg)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), v1.PrometheusMiddleware())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", v1.MetricsHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
