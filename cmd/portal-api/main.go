package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campusware/portal-api/api/swagger"
	"github.com/campusware/portal-api/internal/handler"
	"github.com/campusware/portal-api/internal/middleware"
	"github.com/campusware/portal-api/internal/repository"
	"github.com/campusware/portal-api/internal/service"
	"github.com/campusware/portal-api/pkg/cache"
	"github.com/campusware/portal-api/pkg/config"
	"github.com/campusware/portal-api/pkg/export"
	"github.com/campusware/portal-api/pkg/logger"
	corsmiddleware "github.com/campusware/portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campusware/portal-api/pkg/middleware/requestid"
	"github.com/campusware/portal-api/pkg/recordstore"
	"github.com/campusware/portal-api/pkg/storage"
)

// @title Course Registration Portal API
// @version 1.0.0
// @description Backend for student course registration, approvals and override tokens
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

	store, closeStore, err := openStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to open record store", "driver", cfg.Store.Driver, "error", err)
	}
	if closeStore != nil {
		defer closeStore() //nolint:errcheck
	}

	photos, err := storage.NewUploads(cfg.Uploads.PhotosDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init photo storage", "error", err)
	}
	signatureImages, err := storage.NewUploads(cfg.Uploads.SignaturesDir)
	if err != nil {
		logr.Sugar().Fatalw("failed to init signature storage", "error", err)
	}

	studentRepo := repository.NewStudentRepository(store)
	configRepo := repository.NewConfigRepository(store)
	tokenRepo := repository.NewTokenRepository(store)
	auditRepo := repository.NewAuditRepository(store)
	catalogRepo := repository.NewCatalogRepository(store)

	if err := configRepo.EnsureSeeded(context.Background()); err != nil {
		logr.Sugar().Fatalw("failed to seed portal config", "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			defer redisClient.Close() //nolint:errcheck
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, logr, cfg.Cache.Enabled && cacheRepo != nil)

	authSvc := service.NewAuthService(studentRepo, configRepo, auditRepo, nil, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	registrationSvc := service.NewRegistrationService(studentRepo, configRepo, auditRepo, cacheSvc, metricsSvc, nil, logr)
	tokenSvc := service.NewTokenService(tokenRepo, auditRepo, nil, logr)
	configSvc := service.NewConfigService(configRepo, auditRepo, signatureImages, nil, logr)
	studentSvc := service.NewStudentService(studentRepo, export.NewCSVExporter(), logr)
	dashboardSvc := service.NewDashboardService(studentRepo, cacheSvc, cfg.Cache.DashboardTTL, logr)
	catalogSvc := service.NewCatalogService(catalogRepo, cacheSvc, cfg.Cache.CatalogTTL, logr)
	auditSvc := service.NewAuditService(auditRepo)

	authHandler := handler.NewAuthHandler(authSvc, photos, logr)
	studentHandler := handler.NewStudentHandler(registrationSvc, studentSvc, tokenSvc, configSvc, export.NewCourseFormExporter())
	adminHandler := handler.NewAdminHandler(registrationSvc, studentSvc, dashboardSvc, tokenSvc, configSvc, auditSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	configHandler := handler.NewConfigHandler(configSvc)
	signatureHandler := handler.NewSignatureHandler(configSvc, signatureImages, logr)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Matric numbers contain encoded slashes, so routing matches on the raw
	// path and handlers decode params themselves.
	r.UseRawPath = true
	r.UnescapePathValues = false

	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.MaxMultipartMemory = cfg.Uploads.MaxFileBytes

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	r.Static("/uploads", cfg.Uploads.PhotosDir)
	r.Static("/signatures", cfg.Uploads.SignaturesDir)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.POST("/create-admin", authHandler.CreateAdmin)
		api.GET("/public/signatures", signatureHandler.List)

		authed := api.Group("", middleware.JWT(authSvc))
		{
			authed.GET("/config", configHandler.Public)
			authed.GET("/courses/:department/:level/:semester", catalogHandler.Courses)
		}

		student := api.Group("/student", middleware.JWT(authSvc), middleware.RequireStudent())
		{
			student.GET("/profile", studentHandler.Profile)
			student.POST("/register-courses", studentHandler.RegisterCourses)
			student.GET("/registered-courses/:semester", studentHandler.RegisteredCourses)
			student.POST("/validate-token", studentHandler.ValidateToken)
			student.GET("/course-form/:semester", studentHandler.CourseForm)
		}

		admin := api.Group("/admin", middleware.JWT(authSvc), middleware.RequireAdmin())
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/students", adminHandler.Students)
			admin.GET("/students/export", adminHandler.ExportStudents)
			admin.POST("/approve/:matric/:semester", adminHandler.Approve)
			admin.POST("/reject/:matric/:semester", adminHandler.Reject)
			admin.DELETE("/delete-registration/:matric/:semester", adminHandler.DeleteRegistration)
			admin.PUT("/config", adminHandler.UpdateConfig)
			admin.POST("/generate-token", adminHandler.GenerateToken)
			admin.GET("/logs", adminHandler.Logs)
			admin.GET("/signatures", signatureHandler.List)
			admin.POST("/signatures", signatureHandler.Save)
			admin.DELETE("/signatures/:role", signatureHandler.Delete)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func openStore(cfg *config.Config) (recordstore.Store, func() error, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverPostgres:
		pg, err := recordstore.NewPostgres(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	case config.StoreDriverFile, "":
		fs, err := recordstore.NewFileStore(cfg.Store.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
