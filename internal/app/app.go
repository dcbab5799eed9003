package app

import (
	"career_path_backend/internal/config"
	"career_path_backend/internal/controller"
	"career_path_backend/internal/repository"
	"career_path_backend/internal/service"
	"career_path_backend/pkg/database"
	"career_path_backend/pkg/logger"
	"career_path_backend/pkg/monitoring"
	"career_path_backend/pkg/security"
	"career_path_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user     *repository.UserRepository
	test     *repository.TestRepository
	result   *repository.ResultRepository
	profile  *repository.ProfileRepository
	plan     *repository.LearningPlanRepository
	feedback *repository.FeedbackRepository
}

type services struct {
	auth      *service.AuthService
	user      *service.UserService
	test      *service.TestService
	result    *service.ResultService
	plan      *service.LearningPlanService
	analytics *service.AnalyticsService
	storage   *service.StorageService
}

type controllers struct {
	auth      *controller.AuthController
	test      *controller.TestController
	result    *controller.ResultController
	user      *controller.UserController
	plan      *controller.LearningPlanController
	analytics *controller.AnalyticsController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		test:     repository.NewTestRepository(db),
		result:   repository.NewResultRepository(db),
		profile:  repository.NewProfileRepository(db),
		plan:     repository.NewLearningPlanRepository(db),
		feedback: repository.NewFeedbackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	return &services{
		auth:      service.NewAuthService(repos.user, cfg),
		user:      service.NewUserService(repos.user, repos.profile),
		test:      service.NewTestService(repos.test, repos.result),
		result:    service.NewResultService(repos.result, repos.test, repos.user, repos.feedback, rdb, cfg.Server.FrontendURL),
		plan:      service.NewLearningPlanService(repos.result, repos.plan),
		analytics: service.NewAnalyticsService(repos.user, repos.test, repos.result),
		storage:   storage,
	}, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth, s.user),
		test:      controller.NewTestController(s.test),
		result:    controller.NewResultController(s.result),
		user:      controller.NewUserController(s.user, s.storage),
		plan:      controller.NewLearningPlanController(s.plan),
		analytics: controller.NewAnalyticsController(s.analytics),
		health:    controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 15
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis only backs caching; the API stays up without it.
		logger.Log.Warn("Redis unavailable, leaderboard caching disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("career-path-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
