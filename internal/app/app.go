package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"nurvo_backend/internal/config"
	"nurvo_backend/internal/controller"
	"nurvo_backend/internal/repository"
	"nurvo_backend/internal/service"
	"nurvo_backend/pkg/configwatcher"
	"nurvo_backend/pkg/database"
	"nurvo_backend/pkg/logger"
	"nurvo_backend/pkg/monitoring"
	"nurvo_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracer          *sdktrace.TracerProvider
	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	content    *repository.ContentRepository
	edu        *repository.EduRepository
	lesson     *repository.LessonRepository
	bookmark   *repository.BookmarkRepository
	attendance *repository.AttendanceRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	content    *service.ContentService
	edu        *service.EduService
	bookmark   *service.BookmarkService
	attendance *service.AttendanceService
}

type controllers struct {
	auth       *controller.AuthController
	dialogue   *controller.DialogueController
	bookmark   *controller.BookmarkController
	edu        *controller.EduController
	attendance *controller.AttendanceController
	user       *controller.UserController
	health     *controller.HealthController
}

// RegisterConfigCallback adds a function run with every reloaded config.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		content:    repository.NewContentRepository(db),
		edu:        repository.NewEduRepository(db),
		lesson:     repository.NewLessonRepository(db),
		bookmark:   repository.NewBookmarkRepository(db),
		attendance: repository.NewAttendanceRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	loc := cfg.Location()

	var cache service.ContentCache
	if rdb != nil {
		cache = service.NewRedisContentCache(rdb)
	}

	return &services{
		auth:       service.NewAuthService(repos.user, cfg),
		user:       service.NewUserService(repos.user),
		content:    service.NewContentService(repos.content, repos.edu, cache, cfg.Cache.ContentTTL),
		edu:        service.NewEduService(repos.edu, repos.lesson, loc),
		bookmark:   service.NewBookmarkService(repos.bookmark, loc),
		attendance: service.NewAttendanceService(repos.attendance, loc),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		dialogue:   controller.NewDialogueController(s.content, s.bookmark),
		bookmark:   controller.NewBookmarkController(s.bookmark),
		edu:        controller.NewEduController(s.edu),
		attendance: controller.NewAttendanceController(s.attendance),
		user:       controller.NewUserController(s.user),
		health:     controller.NewHealthController(db),
	}
}

// New wires an App around an open database. rdb may be nil.
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		if logger.SetLevel(newCfg.Log.Level) {
			logger.Log.Info("Log level changed", zap.String("level", newCfg.Log.Level))
		}
	})

	return app
}

// NewApp opens the pool, optionally Redis and tracing, and builds the router.
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, err
	}

	if cfg.ForceMigrate || cfg.Server.Mode == gin.DebugMode {
		if err := database.AutoMigrate(db); err != nil {
			database.Close(db)
			return nil, err
		}
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}, nil
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Warn("Redis unavailable, content cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	app := New(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	return app, nil
}

// Run serves HTTP until SIGINT or SIGTERM, then drains requests and closes
// the pool.
func (a *App) Run() error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.Config.Server.WatchConfig && a.Config.File != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.Config.File, a.applyConfig); err != nil {
				logger.Log.Error("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Log.Info("Shutting down server...")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	a.Close(shutdownCtx)
	logger.Log.Info("Server exiting")
	return serveErr
}

// Close releases the pool, Redis and the tracer.
func (a *App) Close(ctx context.Context) {
	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if a.DB != nil {
		if err := database.Close(a.DB); err != nil {
			logger.Log.Error("Failed to close database", zap.Error(err))
		}
	}
}
