package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/unisched/campus-api/api/swagger"
	"github.com/unisched/campus-api/internal/catalog"
	"github.com/unisched/campus-api/internal/handler"
	"github.com/unisched/campus-api/internal/middleware"
	"github.com/unisched/campus-api/internal/models"
	"github.com/unisched/campus-api/internal/service"
	"github.com/unisched/campus-api/pkg/config"
	"github.com/unisched/campus-api/pkg/database"
	"github.com/unisched/campus-api/pkg/logger"
	corsmiddleware "github.com/unisched/campus-api/pkg/middleware/cors"
	reqidmiddleware "github.com/unisched/campus-api/pkg/middleware/requestid"
	"github.com/unisched/campus-api/pkg/storage"
)

// @title Campus Administration API
// @version 1.0.0
// @description University scheduling and administration portal backend
// @BasePath /api/v1
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
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close() //nolint:errcheck

	// Upload directory is created once here, not per request.
	uploadStore, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init upload storage", "error", err)
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	validate := validator.New()

	uploadSvc := service.NewUploadService(uploadStore, logr, service.UploadServiceConfig{
		MaxFileSize:   cfg.Uploads.MaxFileSizeBytes,
		URLPrefix:     cfg.Uploads.URLPrefix,
		PublicBaseURL: cfg.Uploads.PublicBaseURL,
	})
	uploadHandler := handler.NewUploadHandler(uploadSvc)

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
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.Static(cfg.Uploads.URLPrefix, uploadStore.Dir())

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.RequireRole(models.RoleAdmin, models.RoleStaff, models.RoleStudent))

	adminOnly := middleware.RequireRole(models.RoleAdmin)
	for _, res := range catalog.Build(db, validate, logr, catalog.Options{
		ExportsEnabled: cfg.Exports.Enabled,
		Metrics:        metricsSvc,
	}) {
		res.Register(api, adminOnly)
	}
	api.POST("/uploads", adminOnly, uploadHandler.Upload)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
