package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/registrar/academics/internal/app/controllers"
	appMigrations "github.com/registrar/academics/internal/app/migrations"
	appRepos "github.com/registrar/academics/internal/app/repositories"
	appRoutes "github.com/registrar/academics/internal/app/routes"
	appServices "github.com/registrar/academics/internal/app/services"
	"github.com/registrar/academics/internal/config"
	"github.com/registrar/academics/internal/db"
	appMiddleware "github.com/registrar/academics/internal/middleware"
	"github.com/registrar/academics/internal/pkg/logger"
	"github.com/registrar/academics/internal/seed"
)

// maxBodyBytes caps bulk request bodies
const maxBodyBytes = 10 << 20

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database    *db.Database
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// OpenDatabase establishes the database connection and checks it answers.
func OpenDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	lgr.Info().Str("driver", cfg.Database.Driver).Msg("Establishing database connection...")
	database, err := db.New(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := database.Ping(pingCtx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, database *db.Database, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(database, lgr).Up(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase opens the database, then migrates and seeds it as configured.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.Database, error) {
	database, err := OpenDatabase(ctx, cfg, lgr)
	if err != nil {
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := Migrate(ctx, database, lgr); err != nil {
			database.Close()
			return nil, err
		}
	}

	if cfg.Database.Seed {
		if _, err := seed.CreateDefaultData(ctx, database, lgr); err != nil {
			// sample data is optional
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(database *db.Database, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Database: database, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)
	deps.Services = appServices.NewServices(deps.Repos, database, lgr)
	deps.Controllers = appControllers.NewControllers(deps.Services)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.Recovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(),
		appMiddleware.BodyLimit(maxBodyBytes),
	)

	appRoutes.SetupRouter(router, deps.Controllers, deps.Database)

	return router
}
