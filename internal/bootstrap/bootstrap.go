package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ampro/academy-manager/docs" // Import generated swagger docs
	appControllers "github.com/ampro/academy-manager/internal/app/controllers"
	appRepos "github.com/ampro/academy-manager/internal/app/repositories"
	appRoutes "github.com/ampro/academy-manager/internal/app/routes"
	appServices "github.com/ampro/academy-manager/internal/app/services"
	"github.com/ampro/academy-manager/internal/config"
	appMiddleware "github.com/ampro/academy-manager/internal/middleware"
	pkgAuth "github.com/ampro/academy-manager/internal/pkg/auth"
	"github.com/ampro/academy-manager/internal/pkg/logger"
	"github.com/ampro/academy-manager/internal/storage/kv"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         appServices.AuthService
	StudentService      appServices.StudentService
	SettingsService     appServices.SettingsService
	DashboardService    appServices.DashboardService
	ReminderService     appServices.ReminderService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	SettingsController  *appControllers.SettingsController
	DashboardController *appControllers.DashboardController
	ReminderController  *appControllers.ReminderController
	ReceiptController   *appControllers.ReceiptController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	TokenService        *pkgAuth.TokenService
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

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage opens the key-value store backing all persisted records.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (kv.Store, error) {
	lgr.Info().Str("driver", cfg.Storage.Driver).Msg("Opening storage...")

	var store kv.Store
	var err error
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err = kv.NewSQLiteStore(cfg.Storage.Path)
	case "postgres":
		store, err = kv.NewPostgresStore(cfg.Storage.DSN)
	case "memory":
		store = kv.NewMemoryStore()
	default:
		err = fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open storage")
		return nil, err
	}

	lgr.Info().Msg("Storage successfully opened.")
	return store, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, store kv.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(store)

	deps.TokenService = pkgAuth.NewTokenService(pkgAuth.TokenConfig{
		SecretKey:   cfg.Auth.TokenSecret,
		TokenIssuer: cfg.Auth.TokenIssuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.Session,
		deps.Repos.Settings,
		deps.Repos.Students,
		deps.TokenService,
		cfg.Auth.Password,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.Students)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.Settings)
	deps.DashboardService = appServices.NewDashboardService(deps.Repos.Students)
	deps.ReminderService = appServices.NewReminderService(deps.Repos.Students, deps.Repos.Settings)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Repos.Session)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.ReminderController = appControllers.NewReminderController(deps.ReminderService)
	deps.ReceiptController = appControllers.NewReceiptController(deps.StudentService, deps.SettingsService)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.SettingsController,
		deps.DashboardController,
		deps.ReminderController,
		deps.ReceiptController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
