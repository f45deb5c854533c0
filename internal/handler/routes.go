package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-success-portal/internal/middleware"
	"github.com/noah-isme/student-success-portal/internal/service"
	"github.com/noah-isme/student-success-portal/internal/view"
)

// Handlers groups every page handler for route registration.
type Handlers struct {
	Pages           *PageHandler
	Auth            *AuthHandler
	Students        *StudentHandler
	Guidance        *GuidanceHandler
	Recommendations *RecommendationHandler
	Admin           *AdminHandler
}

// SetupRoutes registers the canonical route table. PUT and DELETE arrive as
// tunneled POSTs rewritten by the method-override wrapper around the engine.
func SetupRoutes(router *gin.Engine, h Handlers, authSvc *service.AuthService, cookieName string, renderer *view.Renderer, exportEnabled bool) {
	requireAuth := middleware.RequireAuth(authSvc, cookieName)
	requireAdmin := middleware.RequireAdmin(authSvc, cookieName, renderer)

	router.GET("/", h.Pages.Home)
	router.GET("/login", h.Auth.LoginForm)
	router.POST("/login", h.Auth.Login)
	router.GET("/logout", h.Auth.Logout)
	router.GET("/dashboard", requireAuth, h.Pages.Dashboard)

	// The signup pair stays open; everything else on the resource needs a
	// session, and deletion needs the admin role.
	router.GET("/students/new", h.Students.NewForm)
	router.POST("/students", h.Students.Create)
	router.GET("/students", requireAuth, h.Students.List)
	router.GET("/students/:id/edit", requireAuth, h.Students.EditForm)
	router.PUT("/students/:id", requireAuth, h.Students.Update)
	router.DELETE("/students/:id", requireAdmin, h.Students.Delete)

	guidance := router.Group("/guidance")
	{
		guidance.GET("", h.Guidance.List)
		guidance.GET("/new", requireAdmin, h.Guidance.NewForm)
		guidance.POST("", requireAdmin, h.Guidance.Create)
		guidance.GET("/:id/edit", requireAdmin, h.Guidance.EditForm)
		guidance.PUT("/:id", requireAdmin, h.Guidance.Update)
		guidance.DELETE("/:id", requireAdmin, h.Guidance.Delete)
	}

	recommendations := router.Group("/recommendations")
	{
		recommendations.GET("", h.Recommendations.List)
		recommendations.GET("/new", requireAdmin, h.Recommendations.NewForm)
		recommendations.POST("", requireAdmin, h.Recommendations.Create)
		recommendations.GET("/:id/edit", requireAdmin, h.Recommendations.EditForm)
		recommendations.PUT("/:id", requireAdmin, h.Recommendations.Update)
		recommendations.DELETE("/:id", requireAdmin, h.Recommendations.Delete)
	}

	router.GET("/admin", requireAdmin, h.Admin.Landing)
	router.GET("/guidePage", requireAdmin, h.Admin.GuidePage)
	router.GET("/recommendPages", requireAdmin, h.Admin.RecommendPages)
	if exportEnabled {
		router.GET("/admin/students/export", requireAdmin, h.Admin.ExportRoster)
	}
}
