package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore/config"
	deliveryHttp "clinicore/internal/delivery/http"
	"clinicore/internal/delivery/http/handler"
	"clinicore/internal/delivery/http/middleware"
	"clinicore/internal/infrastructure/cache"
	"clinicore/internal/infrastructure/database"
	"clinicore/internal/repository"
	"clinicore/internal/service"
	"clinicore/internal/service/imagestore"
	"clinicore/internal/usecase"
	"clinicore/pkg/jwt"
	"clinicore/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize image storage
	store, err := imagestore.NewS3Store(context.Background(), cfg.Storage, redisClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	patientProfileRepo := repository.NewPatientProfileRepository(db)
	staffProfileRepo := repository.NewStaffProfileRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	testRepo := repository.NewMedicalTestRepository(db)
	reportRepo := repository.NewDiagnosisReportRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	logRepo := repository.NewWorkflowLogRepository(db)
	imageRepo := repository.NewMedicalImageRepository(db)

	// Initialize services
	workflowLogService := service.NewWorkflowLogService(log, logRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService)
	userUsecase := usecase.NewUserUsecase(log, userRepo, patientProfileRepo, staffProfileRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, workflowLogService)
	testUsecase := usecase.NewMedicalTestUsecase(log, testRepo, reportRepo, staffProfileRepo, workflowLogService)
	billingUsecase := usecase.NewBillingUsecase(log, billingRepo, appointmentRepo, workflowLogService)
	logUsecase := usecase.NewWorkflowLogUsecase(log, logRepo)
	imageUsecase := usecase.NewImageUsecase(log, imageRepo, store, workflowLogService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	testHandler := handler.NewMedicalTestHandler(testUsecase, customValidator)
	billingHandler := handler.NewBillingHandler(billingUsecase, customValidator)
	logHandler := handler.NewWorkflowLogHandler(logUsecase, customValidator)
	imageHandler := handler.NewImageHandler(imageUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		appointmentHandler,
		testHandler,
		billingHandler,
		logHandler,
		imageHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
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

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
