package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-success-portal/internal/service"
	"github.com/noah-isme/student-success-portal/internal/view"
)

type dashboardService interface {
	Build(ctx context.Context, studentID string) (*service.Dashboard, error)
}

// PageHandler serves the home page and the student dashboard.
type PageHandler struct {
	dashboard dashboardService
	renderer  *view.Renderer
}

// NewPageHandler constructs PageHandler.
func NewPageHandler(dashboard dashboardService, renderer *view.Renderer) *PageHandler {
	return &PageHandler{dashboard: dashboard, renderer: renderer}
}

// Home renders the landing page.
func (h *PageHandler) Home(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "home.tmpl", gin.H{"title": "Student Success"})
}

// Dashboard renders the per-student dashboard: the freshly loaded student row
// plus matching guidance and recommendations.
func (h *PageHandler) Dashboard(c *gin.Context) {
	claims := view.CurrentClaims(c)
	if claims == nil {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	dash, err := h.dashboard.Build(c.Request.Context(), claims.UserID)
	if err != nil {
		h.renderer.Error(c, err)
		return
	}

	h.renderer.HTML(c, http.StatusOK, "dashboard.tmpl", gin.H{
		"title":           "Dashboard",
		"student":         dash.Student,
		"guidance":        dash.Guidance,
		"recommendations": dash.Recommendations,
	})
}
