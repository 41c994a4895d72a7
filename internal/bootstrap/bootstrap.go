package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/demiray/campusms/internal/app/controllers"
	appMigrations "github.com/demiray/campusms/internal/app/migrations"
	appRepos "github.com/demiray/campusms/internal/app/repositories"
	appRoutes "github.com/demiray/campusms/internal/app/routes"
	appServices "github.com/demiray/campusms/internal/app/services"
	"github.com/demiray/campusms/internal/config"
	"github.com/demiray/campusms/internal/db"
	appMiddleware "github.com/demiray/campusms/internal/middleware"
	pkgAuth "github.com/demiray/campusms/internal/pkg/auth"
	"github.com/demiray/campusms/internal/pkg/helpers"
	"github.com/demiray/campusms/internal/pkg/logger"
	"github.com/demiray/campusms/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                *appRepos.Repositories
	Services             *appServices.Services
	JWTService           *pkgAuth.JWTService
	AuthController       *appControllers.AuthController
	TeacherController    *appControllers.TeacherController
	StudentController    *appControllers.StudentController
	SubjectController    *appControllers.SubjectController
	GradeController      *appControllers.GradeController
	AttendanceController *appControllers.AttendanceController
	ReportController     *appControllers.ReportController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations, and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, lgr); err != nil {
		// The admin account and catalog can be fixed by hand; startup
		// continues so the service stays reachable.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Repos = appRepos.NewRepositories(database)
	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth, lgr)
	deps.TeacherController = appControllers.NewTeacherController(deps.Services.Teacher, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.Services.Student, lgr)
	deps.SubjectController = appControllers.NewSubjectController(deps.Services.Subject, lgr)
	deps.GradeController = appControllers.NewGradeController(deps.Services.Grade, lgr)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.Services.Attendance, lgr)
	deps.ReportController = appControllers.NewReportController(deps.Services.Report, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter creates the gin engine and registers all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.EqualFold(cfg.Server.Mode, "production") {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.TeacherController,
		deps.StudentController,
		deps.SubjectController,
		deps.GradeController,
		deps.AttendanceController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	return router
}

// requestLogger emits one structured line per request
func requestLogger(lgr zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		event := lgr.Info()
		if c.Writer.Status() >= 500 {
			event = lgr.Error()
		}
		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}
