package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/deptsched/timetable-api/api/swagger"
	"github.com/deptsched/timetable-api/internal/handler"
	"github.com/deptsched/timetable-api/internal/middleware"
	"github.com/deptsched/timetable-api/internal/repository"
	"github.com/deptsched/timetable-api/internal/service"
	"github.com/deptsched/timetable-api/pkg/cache"
	"github.com/deptsched/timetable-api/pkg/config"
	"github.com/deptsched/timetable-api/pkg/database"
	"github.com/deptsched/timetable-api/pkg/logger"
	corsmiddleware "github.com/deptsched/timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/deptsched/timetable-api/pkg/middleware/requestid"
)

// @title Department Timetable API
// @version 1.0.0
// @description Semester catalog management and automatic timetable generation for an academic department
// @BasePath /api
// @schemes http

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable, timetable view caching disabled", "error", err)
	} else {
		defer redisClient.Close()
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Timetable.ViewCacheTTL, logr, true)
	}

	semesterRepo := repository.NewSemesterRepository(db)
	classRepo := repository.NewClassRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	timetableRepo := repository.NewTimetableRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	userRepo := repository.NewUserRepository(db)

	authSvc := service.NewAuthService(userRepo, nil, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	semesterSvc := service.NewSemesterService(semesterRepo, classRepo, nil, logr)
	courseSvc := service.NewCourseService(courseRepo, semesterRepo, nil, logr)
	timetableSvc := service.NewTimetableService(timetableRepo, classRepo, courseRepo, settingsRepo, cacheSvc, nil, logr)
	generatorSvc := service.NewGeneratorService(semesterRepo, classRepo, courseRepo, timetableRepo, settingsRepo, cacheSvc, metricsSvc, db, nil, logr)
	exportSvc := service.NewExportService(timetableSvc, cfg.Exports.Enabled, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	router := &handler.Router{
		Auth:        handler.NewAuthHandler(authSvc),
		Semesters:   handler.NewSemesterHandler(semesterSvc),
		Courses:     handler.NewCourseHandler(courseSvc),
		Timetable:   handler.NewTimetableHandler(timetableSvc),
		Generator:   handler.NewGeneratorHandler(generatorSvc),
		Exports:     handler.NewExportHandler(exportSvc),
		Metrics:     handler.NewMetricsHandler(metricsSvc),
		AuthService: authSvc,
	}
	router.Register(r, cfg.APIPrefix)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
