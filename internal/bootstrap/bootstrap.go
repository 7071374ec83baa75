package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/seojun/meeplehub/docs" // Import generated swagger docs
	appControllers "github.com/seojun/meeplehub/internal/app/controllers"
	appMigrations "github.com/seojun/meeplehub/internal/app/migrations"
	appRepos "github.com/seojun/meeplehub/internal/app/repositories"
	appRoutes "github.com/seojun/meeplehub/internal/app/routes"
	appServices "github.com/seojun/meeplehub/internal/app/services"
	"github.com/seojun/meeplehub/internal/config"
	"github.com/seojun/meeplehub/internal/db"
	appMiddleware "github.com/seojun/meeplehub/internal/middleware"
	pkgAuth "github.com/seojun/meeplehub/internal/pkg/auth"
	"github.com/seojun/meeplehub/internal/pkg/email"
	"github.com/seojun/meeplehub/internal/pkg/helpers"
	"github.com/seojun/meeplehub/internal/pkg/logger"
	"github.com/seojun/meeplehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	PostService         appServices.PostService
	BoardGameService    appServices.BoardGameService
	MeetingService      appServices.MeetingService
	AuthController      *appControllers.AuthController
	PostController      *appControllers.PostController
	BoardGameController *appControllers.BoardGameController
	MeetingController   *appControllers.MeetingController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	EmailService        email.EmailService
	Logger              zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the board game catalog.
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

	// Seed the catalog (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:      cfg.Email.Host,
		Port:      cfg.Email.Port,
		Username:  cfg.Email.Username,
		Password:  cfg.Email.Password,
		FromName:  cfg.Email.FromName,
		FromEmail: cfg.Email.FromEmail,
		UseTLS:    cfg.Email.UseTLS,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.PasswordResetTokenRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		deps.EmailService,
		helpers.ParseDuration(cfg.Email.ResetCodeExpiry, 5*time.Minute),
		lgr,
	)
	deps.PostService = appServices.NewPostService(
		deps.Repos.PostRepository,
		deps.Repos.CommentRepository,
		lgr,
	)
	deps.BoardGameService = appServices.NewBoardGameService(
		deps.Repos.BoardGameRepository,
		deps.Repos.GameReviewRepository,
		deps.Repos.UserRepository,
		lgr,
	)
	deps.MeetingService = appServices.NewMeetingService(
		deps.Repos.MeetingRepository,
		deps.Repos.MeetingParticipantRepository,
		deps.Repos.UserRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.PostController = appControllers.NewPostController(deps.PostService, lgr)
	deps.BoardGameController = appControllers.NewBoardGameController(deps.BoardGameService, lgr)
	deps.MeetingController = appControllers.NewMeetingController(deps.MeetingService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PostController,
		deps.BoardGameController,
		deps.MeetingController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
