package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sjperalta/gestor-negocios-api/docs" // Swagger docs
	"github.com/sjperalta/gestor-negocios-api/internal/config"
	"github.com/sjperalta/gestor-negocios-api/internal/database"
	"github.com/sjperalta/gestor-negocios-api/internal/handlers"
	"github.com/sjperalta/gestor-negocios-api/internal/jobs"
	"github.com/sjperalta/gestor-negocios-api/internal/metrics"
	"github.com/sjperalta/gestor-negocios-api/internal/middleware"
	"github.com/sjperalta/gestor-negocios-api/internal/notify"
	"github.com/sjperalta/gestor-negocios-api/internal/repository"
	"github.com/sjperalta/gestor-negocios-api/internal/services"
	"github.com/sjperalta/gestor-negocios-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Gestor de Negocios API
// @version 1.0
// @description REST API for small business bookkeeping: income, expenses, client debts and installments

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Setup(cfg.Environment, cfg.LogLevel)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.TelegramBotToken == "" {
		logger.Warn("Telegram notifications disabled: TELEGRAM_BOT_TOKEN not set")
	}
	if cfg.EnableEmailNotifications && cfg.ResendAPIKey == "" {
		logger.Warn("Email notifications enabled but RESEND_API_KEY is not set; emails will fail")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.IsProduction())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database", "postgres", database.IsPostgresURL(cfg.DatabaseURL))

	if cfg.AutoMigrate {
		if err := database.Migrate(db, cfg.DatabaseURL); err != nil {
			logger.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	repos := repository.NewRepositories(db)
	transactor := repository.NewTransactor(db, cfg.DBRetryAttempts)
	m := metrics.New()

	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	sink := notify.NewMulti(m.ObserveNotification,
		notify.NewTelegramSink(cfg.TelegramAPIURL, cfg.TelegramBotToken),
		notify.NewEmailSink(notify.EmailConfig{
			Enabled: cfg.EnableEmailNotifications,
			APIKey:  cfg.ResendAPIKey,
			From:    cfg.FromEmail,
		}),
		notify.NewInAppSink(repos.Notification),
	)

	svcs := services.NewServices(db, repos, transactor, worker, sink, m, cfg)
	scheduleJobs(worker, svcs)

	router := setupRouter(handlers.NewHandlers(svcs), m, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Queued notifications are dropped
	worker.Shutdown()
	logger.Info("Background worker stopped")

	if err := database.Close(db); err != nil {
		logger.Error("Failed to close database", "error", err)
	}

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, m *metrics.Metrics, cfg *config.Config) *gin.Engine {
	router := gin.New()

	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(m))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", h.Health.Index)
	router.GET("/metrics", gin.WrapH(m.Handler()))

	handlers.RegisterRoutes(router.Group("/api/v1"), h, cfg.JWTSecret)

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	// Purge expired refresh tokens once a day
	worker.ScheduleEvery(24*time.Hour, func(ctx context.Context) error {
		logger.Info("[Job] Purging expired refresh tokens...")
		return svcs.Auth.PurgeExpiredTokens(ctx)
	})

	logger.Info("Scheduled recurring jobs")
}
