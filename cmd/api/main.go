package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/deptsite/cms-api/api/swagger"
	"github.com/deptsite/cms-api/pkg/cache"

	"github.com/deptsite/cms-api/internal/handler"
	"github.com/deptsite/cms-api/internal/middleware"
	"github.com/deptsite/cms-api/internal/repository"
	"github.com/deptsite/cms-api/internal/service"
	"github.com/deptsite/cms-api/pkg/config"
	"github.com/deptsite/cms-api/pkg/database"
	"github.com/deptsite/cms-api/pkg/logger"
	corsmiddleware "github.com/deptsite/cms-api/pkg/middleware/cors"
	reqidmiddleware "github.com/deptsite/cms-api/pkg/middleware/requestid"
)

// @title Department CMS API
// @version 1.0.0
// @description Content management backend for the department's public website
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	validate := service.NewValidator()

	userRepo := repository.NewUserRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	eventRepo := repository.NewEventRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	contactRepo := repository.NewContactRepository(db)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	newsSvc := service.NewNewsService(newsRepo, nil, 0, validate, logr)
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, news cache disabled", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			newsSvc = service.NewNewsService(newsRepo, cacheRepo, cfg.Cache.TTL, validate, logr)
		}
	}

	facultySvc := service.NewFacultyService(facultyRepo, validate, logr)
	eventSvc := service.NewEventService(eventRepo, validate, logr)
	noteSvc := service.NewNoteService(noteRepo, validate, logr)
	mediaSvc := service.NewMediaService(mediaRepo, validate, logr)
	contactSvc := service.NewContactService(contactRepo, validate, logr)
	metricsSvc := service.NewMetricsService()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, authSvc, handler.Handlers{
		Auth:    handler.NewAuthHandler(authSvc),
		Faculty: handler.NewFacultyHandler(facultySvc),
		News:    handler.NewNewsHandler(newsSvc),
		Event:   handler.NewEventHandler(eventSvc),
		Note:    handler.NewNoteHandler(noteSvc),
		Media:   handler.NewMediaHandler(mediaSvc),
		Contact: handler.NewContactHandler(contactSvc),
		Metrics: handler.NewMetricsHandler(metricsSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
