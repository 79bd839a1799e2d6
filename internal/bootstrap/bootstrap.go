package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/daudx/sfhms/internal/app/controllers"
	appMigrations "github.com/daudx/sfhms/internal/app/migrations"
	appRepos "github.com/daudx/sfhms/internal/app/repositories"
	appRoutes "github.com/daudx/sfhms/internal/app/routes"
	appServices "github.com/daudx/sfhms/internal/app/services"
	"github.com/daudx/sfhms/internal/config"
	"github.com/daudx/sfhms/internal/db"
	appMiddleware "github.com/daudx/sfhms/internal/middleware"
	pkgAuth "github.com/daudx/sfhms/internal/pkg/auth"
	"github.com/daudx/sfhms/internal/pkg/helpers"
	"github.com/daudx/sfhms/internal/pkg/logger"
	"github.com/daudx/sfhms/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService             appServices.AuthService
	AdminService            appServices.AdminService
	AuthController          *appControllers.AuthController
	AdminController         *appControllers.AdminController
	MedicalRecordController *appControllers.MedicalRecordController
	TrainingPlanController  *appControllers.TrainingPlanController
	AppointmentController   *appControllers.AppointmentController
	NurseController         *appControllers.NurseController
	ViewController          *appControllers.ViewController
	Repos                   *appRepos.Repositories
	JWTService              *pkgAuth.JWTService
	Logger                  zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations
// and seeds the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, lgr); err != nil {
		// Seeding failure should not block startup
		lgr.Error().Err(err).Msg("Failed to seed default admin, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: helpers.ParseDuration(cfg.JWT.TokenExpiry, 12*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.AdminService = appServices.NewAdminService(deps.Repos.AdminRepository, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, lgr)
	deps.MedicalRecordController = appControllers.NewMedicalRecordController(deps.Repos.MedicalRecordRepository, lgr)
	deps.TrainingPlanController = appControllers.NewTrainingPlanController(deps.Repos.TrainingPlanRepository, lgr)
	deps.AppointmentController = appControllers.NewAppointmentController(deps.Repos.AppointmentRepository, lgr)
	deps.NurseController = appControllers.NewNurseController(deps.Repos.AppointmentRepository, deps.Repos.MedicalRecordRepository, lgr)
	deps.ViewController = appControllers.NewViewController(deps.Repos.ViewRepository, lgr)

	return deps, nil
}

// SetupRouter builds the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.IdentityResolver(deps.JWTService))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.AdminController,
		deps.MedicalRecordController,
		deps.TrainingPlanController,
		deps.AppointmentController,
		deps.NurseController,
		deps.ViewController,
	)

	return router
}
