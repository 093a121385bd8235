package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/felixcirebea/medicalsys-sub000/config"
	deliveryHttp "github.com/felixcirebea/medicalsys-sub000/internal/delivery/http"
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/http/handler"
	"github.com/felixcirebea/medicalsys-sub000/internal/delivery/http/middleware"
	"github.com/felixcirebea/medicalsys-sub000/internal/infrastructure/cache"
	"github.com/felixcirebea/medicalsys-sub000/internal/infrastructure/database"
	"github.com/felixcirebea/medicalsys-sub000/internal/jobs"
	"github.com/felixcirebea/medicalsys-sub000/internal/repository"
	"github.com/felixcirebea/medicalsys-sub000/internal/service"
	"github.com/felixcirebea/medicalsys-sub000/internal/usecase"
	"github.com/felixcirebea/medicalsys-sub000/pkg/validator"

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
	LockService *service.DoctorLockService
	DailyJob    *jobs.DailyJob
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
	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	if cfg.App.MigrateOnStart {
		if err := database.MigrateUp(cfg.DB); err != nil {
			return nil, err
		}
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	if err := app.initialize(cfg, db, redisClient); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// initialize wires repositories, services, usecases, handlers and the daily job
func (app *App) initialize(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) error {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	specialtyRepo := repository.NewSpecialtyRepository()
	doctorRepo := repository.NewDoctorRepository()
	investigationRepo := repository.NewInvestigationRepository()
	workingHoursRepo := repository.NewWorkingHoursRepository()
	vacationRepo := repository.NewVacationRepository()
	holidayRepo := repository.NewHolidayRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	clock := service.NewOperationalClock(redisClient, log)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := clock.Load(ctx); err != nil {
		return fmt.Errorf("failed to load operational date: %w", err)
	}

	lockService := service.NewDoctorLockService(redisClient, log, cfg.Booking.LockTTL)
	app.LockService = lockService
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, clock, cfg.Booking.SlotStep, doctorRepo, investigationRepo, holidayRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, clock, lockService, doctorRepo, investigationRepo, appointmentRepo, auditService)
	vacationUsecase := usecase.NewVacationUsecase(db, log, clock, lockService, cfg.Booking.VacationOverlapAll, doctorRepo, vacationRepo, auditService)
	cascadeUsecase := usecase.NewCascadeUsecase(db, log, lockService, specialtyRepo, doctorRepo, investigationRepo, vacationRepo, workingHoursRepo, appointmentUsecase, auditService)
	specialtyUsecase := usecase.NewSpecialtyUsecase(db, log, specialtyRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, specialtyRepo)
	investigationUsecase := usecase.NewInvestigationUsecase(db, log, investigationRepo, specialtyRepo)
	workingHoursUsecase := usecase.NewWorkingHoursUsecase(db, log, workingHoursRepo, doctorRepo)
	holidayUsecase := usecase.NewHolidayUsecase(db, log, holidayRepo)
	clockUsecase := usecase.NewClockUsecase(db, log, clock, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Availability:  handler.NewAvailabilityHandler(availabilityUsecase, customValidator),
		Appointment:   handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		Vacation:      handler.NewVacationHandler(vacationUsecase, customValidator),
		Specialty:     handler.NewSpecialtyHandler(specialtyUsecase, cascadeUsecase, customValidator),
		Doctor:        handler.NewDoctorHandler(doctorUsecase, cascadeUsecase, customValidator),
		Investigation: handler.NewInvestigationHandler(investigationUsecase, customValidator),
		WorkingHours:  handler.NewWorkingHoursHandler(workingHoursUsecase, customValidator),
		Holiday:       handler.NewHolidayHandler(holidayUsecase, customValidator),
		Clock:         handler.NewClockHandler(clockUsecase, customValidator),
		AuditLog:      handler.NewAuditLogHandler(auditLogUsecase, customValidator),
	}

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, corsMiddleware, loggingMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	app.Server = &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Schedule the daily job
	app.DailyJob = jobs.NewDailyJob(log, clockUsecase, vacationUsecase)
	if err := app.DailyJob.Start(cfg.Scheduler.DailyJobSpec); err != nil {
		return err
	}

	return nil
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

	// Let a running daily job finish
	if app.DailyJob != nil {
		app.DailyJob.Stop(ctx)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases the lock service, database and redis connections
func (app *App) Close() {
	if app.LockService != nil {
		app.LockService.Stop()
	}

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
