package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/suraksha-health/training-portal-api/api/swagger"
	"github.com/suraksha-health/training-portal-api/internal/handler"
	"github.com/suraksha-health/training-portal-api/internal/middleware"
	"github.com/suraksha-health/training-portal-api/internal/models"
	"github.com/suraksha-health/training-portal-api/internal/repository"
	"github.com/suraksha-health/training-portal-api/internal/service"
	"github.com/suraksha-health/training-portal-api/pkg/cache"
	"github.com/suraksha-health/training-portal-api/pkg/config"
	"github.com/suraksha-health/training-portal-api/pkg/database"
	"github.com/suraksha-health/training-portal-api/pkg/logger"
	corsmiddleware "github.com/suraksha-health/training-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/suraksha-health/training-portal-api/pkg/middleware/requestid"
)

// @title Suraksha Training Portal API
// @version 1.0.0
// @description Role-based training record management for health professionals
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	// Redis is fail-soft: without it the dashboard computes fresh stats on
	// every request.
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()

	userRepo := repository.NewUserRepository(db)
	professionalRepo := repository.NewProfessionalRepository(db)
	traineeRepo := repository.NewTraineeRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "training-portal-api",
	})
	metricsSvc := service.NewMetricsService()
	professionalSvc := service.NewProfessionalService(professionalRepo, validate, logr)
	traineeSvc := service.NewTraineeService(traineeRepo, validate, logr)
	trainingSvc := service.NewTrainingService(trainingRepo, validate, logr)
	dashboardSvc := service.NewDashboardService(professionalRepo, traineeRepo, trainingRepo, cacheRepo, cfg.Dashboard.CacheTTL, metricsSvc, logr)
	dataSvc := service.NewDataService(userRepo, traineeRepo, trainingRepo)
	exportSvc := service.NewExportService(traineeSvc, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	professionalHandler := handler.NewProfessionalHandler(professionalSvc, dashboardSvc)
	traineeHandler := handler.NewTraineeHandler(traineeSvc, dashboardSvc)
	trainingHandler := handler.NewTrainingHandler(trainingSvc, dashboardSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	dataHandler := handler.NewDataHandler(dataSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc, db)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	api.POST("/login", authHandler.Login)
	api.POST("/refresh", authHandler.Refresh)

	auth := api.Group("")
	auth.Use(middleware.JWT(authSvc))

	auth.POST("/logout", authHandler.Logout)
	auth.POST("/change_password", authHandler.ChangePassword)

	auth.GET("/dashboard", dashboardHandler.Stats)
	auth.GET("/get_trainees", traineeHandler.List)
	auth.POST("/register_trainee", middleware.Audit(userRepo, models.AuditActionRegister, "trainee"), traineeHandler.Register)
	auth.PUT("/edit_trainee/:id", middleware.Audit(userRepo, models.AuditActionEdit, "trainee"), traineeHandler.Edit)
	auth.DELETE("/delete_trainee/:id", middleware.Audit(userRepo, models.AuditActionDelete, "trainee"), traineeHandler.Delete)

	auth.GET("/get_trainings", trainingHandler.List)
	auth.POST("/create_training", middleware.Audit(userRepo, models.AuditActionRegister, "training"), trainingHandler.Create)
	auth.PUT("/edit_training/:id", middleware.Audit(userRepo, models.AuditActionEdit, "training"), trainingHandler.Edit)
	auth.DELETE("/delete_training/:id", middleware.Audit(userRepo, models.AuditActionDelete, "training"), trainingHandler.Delete)

	admin := auth.Group("")
	admin.Use(middleware.RequireRoles(models.RoleAdmin))

	admin.GET("/get_professionals", professionalHandler.List)
	admin.POST("/register_professional", middleware.Audit(userRepo, models.AuditActionRegister, "professional"), professionalHandler.Register)
	admin.PUT("/edit_professional/:id", middleware.Audit(userRepo, models.AuditActionEdit, "professional"), professionalHandler.Edit)
	admin.DELETE("/delete_professional/:id", middleware.Audit(userRepo, models.AuditActionDelete, "professional"), professionalHandler.Delete)
	admin.GET("/data", dataHandler.Tables)

	if cfg.Exports.Enabled {
		admin.GET("/export/trainees.csv", exportHandler.TraineesCSV)
		admin.GET("/export/trainees.pdf", exportHandler.TraineesPDF)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
