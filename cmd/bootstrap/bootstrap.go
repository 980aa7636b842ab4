package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"visus-api/config"
	deliveryHttp "visus-api/internal/delivery/http"
	"visus-api/internal/delivery/http/handler"
	"visus-api/internal/delivery/http/middleware"
	"visus-api/internal/infrastructure/cache"
	"visus-api/internal/infrastructure/database"
	"visus-api/internal/infrastructure/storage"
	"visus-api/internal/repository"
	"visus-api/internal/service"
	"visus-api/internal/usecase"
	"visus-api/pkg/validator"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const metricsNamespace = "visus"

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.App.LogLevel)
	app.Log = log
	log.Info("Configuration loaded successfully")

	ctx := context.Background()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if cfg.App.SeedOnStartup {
		if err := database.Seed(db, log); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}

	// Initialize file storage
	fileStorage, mediaRoot, err := newFileStorage(ctx, cfg.Storage, log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Initialize Redis (optional)
	notificationService := service.NewNoopNotificationService()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		notificationService = service.NewRedisNotificationService(redisClient, cfg.Redis.NotifyChannel, log)
		log.Info("Redis connected successfully")
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, db, fileStorage, mediaRoot, notificationService)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)

	return log
}

// newFileStorage picks the storage backend. The second return value is the
// directory to serve under /media/, empty when files live in a bucket.
func newFileStorage(ctx context.Context, cfg config.StorageConfig, log *logrus.Logger) (storage.FileStorage, string, error) {
	switch cfg.Mode {
	case config.StorageModeS3:
		s, err := storage.NewMinioStorage(ctx, storage.MinioConfig{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		}, log)
		if err != nil {
			return nil, "", err
		}
		log.Infof("Using S3 storage bucket %s", cfg.S3Bucket)
		return s, "", nil
	default:
		s, err := storage.NewLocalStorage(cfg.LocalPath, cfg.LocalPublicURL, log)
		if err != nil {
			return nil, "", err
		}
		log.Infof("Using local storage at %s", s.Root())
		return s, s.Root(), nil
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(
	cfg *config.Config,
	log *logrus.Logger,
	db *gorm.DB,
	fileStorage storage.FileStorage,
	mediaRoot string,
	notificationService service.NotificationService,
) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	serviceItemRepo := repository.NewServiceItemRepository()
	reviewRepo := repository.NewReviewRepository()
	mediaAssetRepo := repository.NewMediaAssetRepository()
	callbackRequestRepo := repository.NewCallbackRequestRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, fileStorage, auditService)
	serviceItemUsecase := usecase.NewServiceItemUsecase(db, log, serviceItemRepo, auditService)
	reviewUsecase := usecase.NewReviewUsecase(db, log, reviewRepo, auditService)
	mediaAssetUsecase := usecase.NewMediaAssetUsecase(db, log, mediaAssetRepo, fileStorage, auditService)
	callbackRequestUsecase := usecase.NewCallbackRequestUsecase(db, log, callbackRequestRepo, notificationService)
	uploadUsecase := usecase.NewUploadUsecase(log, fileStorage)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize router
	router := deliveryHttp.NewRouter(deliveryHttp.RouterOptions{
		Log:                    log,
		DoctorHandler:          handler.NewDoctorHandler(doctorUsecase, customValidator),
		ServiceItemHandler:     handler.NewServiceItemHandler(serviceItemUsecase, customValidator),
		ReviewHandler:          handler.NewReviewHandler(reviewUsecase, customValidator),
		MediaAssetHandler:      handler.NewMediaAssetHandler(mediaAssetUsecase, customValidator),
		CallbackRequestHandler: handler.NewCallbackRequestHandler(callbackRequestUsecase, customValidator),
		UploadHandler:          handler.NewUploadHandler(uploadUsecase, cfg.Storage.UploadMaxMemory),
		AuditLogHandler:        handler.NewAuditLogHandler(auditLogUsecase),
		AuthMiddleware:         middleware.NewAuthMiddleware(cfg.Admin, log),
		CORSMiddleware:         middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins),
		MetricsMiddleware:      middleware.NewMetricsMiddleware(registry, metricsNamespace),
		Gatherer:               registry,
		MediaRoot:              mediaRoot,
	})

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("%s starting on port %s", app.Config.App.Name, app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
