package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noah-isme/timetable-api/internal/handler"
	"github.com/noah-isme/timetable-api/internal/middleware"
	"github.com/noah-isme/timetable-api/internal/models"
	"github.com/noah-isme/timetable-api/pkg/config"
	"github.com/noah-isme/timetable-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/timetable-api/pkg/middleware/requestid"
)

// NewRouter registers every HTTP route of the service.
func NewRouter(a *App) *gin.Engine {
	cfg := a.Config
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(a.Logger))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(a.Metrics))
	r.Use(middleware.WithResponseMeta())

	metricsHandler := handler.NewMetricsHandler(a.Metrics, a.ReadinessProbes())
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/metrics/summary", metricsHandler.Summary)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	timetableHandler := handler.NewTimetableHandler(a.Timetable)
	assignmentHandler := handler.NewAssignmentHandler(a.Assignments)

	api := r.Group(cfg.APIPrefix)
	authenticated := api.Group("", middleware.Guard(cfg.Auth.Enabled, a.Auth)...)

	var adminOnly []gin.HandlerFunc
	if cfg.Auth.Enabled {
		adminOnly = append(adminOnly, middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin))
	}

	timetable := authenticated.Group("/timetable")
	timetable.POST("/generate", append(adminOnly, timetableHandler.Generate)...)
	timetable.GET("/departments/:departmentId", timetableHandler.View)
	timetable.GET("/departments/:departmentId/export", timetableHandler.Export)
	timetable.POST("/conflicts/check", timetableHandler.CheckConflict)

	authenticated.POST("/assignments", append(adminOnly, assignmentHandler.Create)...)
	authenticated.GET("/sections/:sectionId/assignments", assignmentHandler.ListBySection)

	return r
}
