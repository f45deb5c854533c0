package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/student-success-portal/internal/handler"
	"github.com/noah-isme/student-success-portal/internal/middleware"
	"github.com/noah-isme/student-success-portal/internal/repository"
	"github.com/noah-isme/student-success-portal/internal/service"
	"github.com/noah-isme/student-success-portal/internal/view"
	"github.com/noah-isme/student-success-portal/pkg/cache"
	"github.com/noah-isme/student-success-portal/pkg/config"
	"github.com/noah-isme/student-success-portal/pkg/database"
	"github.com/noah-isme/student-success-portal/pkg/logger"
	reqidmiddleware "github.com/noah-isme/student-success-portal/pkg/middleware/requestid"
)

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

	if cfg.UsingFallbackSecret() {
		logr.Warn("AUTH_TOKEN_SECRET is not set; running with the built-in development secret. Do not deploy like this.")
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var tokens *repository.TokenRepository
	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Warnw("redis unavailable; logout revocation disabled", "error", err)
	} else {
		defer redisClient.Close()
		tokens = repository.NewTokenRepository(redisClient)
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	renderer := view.New(logr)

	studentRepo := repository.NewStudentRepository(db)
	guidanceRepo := repository.NewGuidanceRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)

	authCfg := service.AuthConfig{
		TokenSecret: cfg.Auth.TokenSecret,
		TokenTTL:    cfg.Auth.TokenTTL,
		Issuer:      "student-success-portal",
	}
	var authSvc *service.AuthService
	if tokens != nil {
		authSvc = service.NewAuthService(studentRepo, tokens, validate, logr, authCfg)
	} else {
		authSvc = service.NewAuthService(studentRepo, nil, validate, logr, authCfg)
	}
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	guidanceSvc := service.NewGuidanceService(guidanceRepo, validate, logr)
	recommendationSvc := service.NewRecommendationService(recommendationRepo, validate, logr)
	dashboardSvc := service.NewDashboardService(studentRepo, guidanceRepo, recommendationRepo, logr)
	exportSvc := service.NewExportService(studentRepo, logr)

	cookie := handler.CookieSettings{
		Name:   cfg.Auth.CookieName,
		MaxAge: int(cfg.Auth.TokenTTL.Seconds()),
	}

	handlers := handler.Handlers{
		Pages:           handler.NewPageHandler(dashboardSvc, renderer),
		Auth:            handler.NewAuthHandler(authSvc, metricsSvc, renderer, cookie),
		Students:        handler.NewStudentHandler(studentSvc, renderer),
		Guidance:        handler.NewGuidanceHandler(guidanceSvc, renderer),
		Recommendations: handler.NewRecommendationHandler(recommendationSvc, renderer),
		Admin:           handler.NewAdminHandler(studentSvc, guidanceSvc, recommendationSvc, exportSvc, renderer),
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(metricsSvc))

	r.LoadHTMLGlob("web/templates/*.tmpl")
	r.Static("/static", "web/static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	handler.SetupRoutes(r, handlers, authSvc, cfg.Auth.CookieName, renderer, cfg.Export.Enabled)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: middleware.MethodOverride(r),
	}

	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
