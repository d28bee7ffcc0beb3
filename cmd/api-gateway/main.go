package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/campuslabs/campus-events-api/internal/handler"
	"github.com/campuslabs/campus-events-api/internal/middleware"
	"github.com/campuslabs/campus-events-api/internal/models"
	"github.com/campuslabs/campus-events-api/internal/repository"
	"github.com/campuslabs/campus-events-api/internal/service"
	"github.com/campuslabs/campus-events-api/pkg/cache"
	"github.com/campuslabs/campus-events-api/pkg/config"
	"github.com/campuslabs/campus-events-api/pkg/database"
	"github.com/campuslabs/campus-events-api/pkg/logger"
	corsmiddleware "github.com/campuslabs/campus-events-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campuslabs/campus-events-api/pkg/middleware/requestid"
)

// @title Campus Events API
// @version 1.0.0
// @description Campus event lifecycle and registration service
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
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Events.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, approved listing cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Events.CacheTTL, logr, true)
			defer cacheRepo.Close()
		}
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	eventSvc := service.NewEventService(eventRepo, userRepo, cacheSvc, nil, logr).
		WithScopedPendingFilter(cfg.Events.ScopedPendingFilter)

	var purgeSvc *service.PurgeService
	if cfg.Events.PurgeEnabled {
		purgeSvc = service.NewPurgeService(eventSvc, cfg.Events.PurgeWorkers, logr)
		purgeSvc.Start(context.Background())
		defer purgeSvc.Stop()
		eventSvc.WithRejectionNotifier(purgeSvc)
	}

	registrationSvc := service.NewRegistrationService(registrationRepo, userRepo, eventRepo, nil, logr).
		WithUniqueEnforcement(cfg.Registrations.EnforceUnique)
	verifier := service.NewCredentialVerifier(cfg.Auth.PasswordScheme)
	adminSvc := service.NewAdminService(userRepo, eventSvc, verifier, nil, logr)
	authSvc := service.NewAuthService(userRepo, verifier, nil, logr, service.AuthConfig{
		JWTSecret:     cfg.Auth.JWTSecret,
		JWTExpiration: cfg.Auth.JWTExpiration,
	})
	exportSvc := service.NewExportService(eventRepo, registrationRepo, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	proposalHandler := handler.NewProposalHandler(eventSvc)
	adminHandler := handler.NewAdminHandler(adminSvc)
	studentHandler := handler.NewStudentHandler(registrationSvc)
	facultyHandler := handler.NewFacultyHandler(registrationSvc, exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))

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
	r.GET("/metrics", metricsHandler.Scrape)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)

	events := api.Group("/events")
	events.POST("", eventHandler.Create)
	events.GET("", eventHandler.List)
	events.DELETE("/:id", eventHandler.Delete)

	proposals := api.Group("/event-proposal")
	proposals.POST("/request-event", proposalHandler.Request)
	proposals.GET("/all-requested-events", proposalHandler.ListAll)
	proposals.GET("/by-faculty/:facultyId", proposalHandler.ListByFaculty)
	proposals.GET("/:id", proposalHandler.GetByID)
	proposals.POST("/approve-event/:id", proposalHandler.Approve)
	proposals.POST("/reject-event/:id", proposalHandler.Reject)

	admin := api.Group("/admin")
	if cfg.Auth.RequireTokens {
		admin.Use(middleware.JWT(authSvc), middleware.RequireRoles(models.RoleAdmin))
	}
	admin.POST("/add-faculty", adminHandler.AddFaculty)
	admin.PUT("/modify-event/:id", adminHandler.ModifyEvent)
	admin.PATCH("/events/:id/remark", adminHandler.SetRemark)

	students := api.Group("/students")
	students.POST("/register-student", studentHandler.Register)
	students.GET("/all-registered-students", studentHandler.ListAll)
	students.GET("/get-students-by-faculty-id/:facultyId", studentHandler.ListByFaculty)
	students.GET("/check-registration/:studentId/:eventId", studentHandler.CheckRegistration)
	students.GET("/all-events-registered-by-student/:studentId", studentHandler.ListByStudent)
	students.DELETE("/registrations/:id", studentHandler.DeleteRegistration)

	faculty := api.Group("/faculty")
	faculty.GET("/all-registrations/:eventId", facultyHandler.RosterByEvent)
	faculty.GET("/roster/:eventId/export", facultyHandler.ExportRoster)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
