package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-success-portal/internal/service"
	"github.com/noah-isme/student-success-portal/internal/view"
)

type rosterExporter interface {
	Roster(ctx context.Context, format service.ExportFormat) (*service.RosterFile, error)
}

// AdminHandler serves the admin landing page, the admin listing views and the
// roster export. The admin listing routes keep their historical names
// (/guidePage, /recommendPages) even though the public routes use the
// singular resource form.
type AdminHandler struct {
	students        studentService
	guidance        guidanceService
	recommendations recommendationService
	exports         rosterExporter
	renderer        *view.Renderer
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(students studentService, guidance guidanceService, recommendations recommendationService, exports rosterExporter, renderer *view.Renderer) *AdminHandler {
	return &AdminHandler{
		students:        students,
		guidance:        guidance,
		recommendations: recommendations,
		exports:         exports,
		renderer:        renderer,
	}
}

// Landing renders the admin home with the full student listing.
func (h *AdminHandler) Landing(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "admin.tmpl", gin.H{
		"title":    "Admin",
		"students": students,
	})
}

// GuidePage renders the admin guidance listing.
func (h *AdminHandler) GuidePage(c *gin.Context) {
	rules, err := h.guidance.List(c.Request.Context(), nil)
	if err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "guidance-list.tmpl", gin.H{
		"title":    "Manage Guidance",
		"guidance": rules,
		"admin":    true,
	})
}

// RecommendPages renders the admin recommendation listing.
func (h *AdminHandler) RecommendPages(c *gin.Context) {
	recs, err := h.recommendations.List(c.Request.Context(), "")
	if err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "recommendation-list.tmpl", gin.H{
		"title":           "Manage Recommendations",
		"recommendations": recs,
		"admin":           true,
	})
}

// ExportRoster streams the student roster as CSV or PDF.
func (h *AdminHandler) ExportRoster(c *gin.Context) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.FormatCSV)))

	file, err := h.exports.Roster(c.Request.Context(), format)
	if err != nil {
		h.renderer.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
