package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-success-portal/internal/models"
	"github.com/noah-isme/student-success-portal/internal/service"
	"github.com/noah-isme/student-success-portal/internal/view"
	appErrors "github.com/noah-isme/student-success-portal/pkg/errors"
)

type guidanceService interface {
	List(ctx context.Context, match *models.GuidanceMatch) ([]models.Guidance, error)
	Get(ctx context.Context, id string) (*models.Guidance, error)
	Create(ctx context.Context, req service.GuidanceRequest) (*models.Guidance, error)
	Update(ctx context.Context, id string, req service.GuidanceRequest) error
	Delete(ctx context.Context, id string) error
}

// GuidanceHandler exposes the guidance resource pages.
type GuidanceHandler struct {
	guidance guidanceService
	renderer *view.Renderer
}

// NewGuidanceHandler constructs GuidanceHandler.
func NewGuidanceHandler(guidance guidanceService, renderer *view.Renderer) *GuidanceHandler {
	return &GuidanceHandler{guidance: guidance, renderer: renderer}
}

// List renders guidance rules. When major, status and gpa query parameters
// are all present the wildcard/range predicate filters the listing.
func (h *GuidanceHandler) List(c *gin.Context) {
	var match *models.GuidanceMatch
	major := c.Query("major")
	status := c.Query("status")
	if gpa, err := strconv.ParseFloat(c.Query("gpa"), 64); err == nil && major != "" && status != "" {
		match = &models.GuidanceMatch{Major: major, Status: status, GPA: gpa}
	}

	rules, err := h.guidance.List(c.Request.Context(), match)
	if err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "guidance-list.tmpl", gin.H{
		"title":    "Guidance",
		"guidance": rules,
	})
}

// NewForm renders the create form.
func (h *GuidanceHandler) NewForm(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "guidance-new.tmpl", gin.H{"title": "New Guidance"})
}

// Create stores a new guidance rule.
func (h *GuidanceHandler) Create(c *gin.Context) {
	var req service.GuidanceRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.HTML(c, http.StatusBadRequest, "guidance-new.tmpl", gin.H{
			"title": "New Guidance",
			"error": "invalid form submission",
			"form":  req,
		})
		return
	}

	if _, err := h.guidance.Create(c.Request.Context(), req); err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Status == http.StatusBadRequest {
			h.renderer.HTML(c, appErr.Status, "guidance-new.tmpl", gin.H{
				"title": "New Guidance",
				"error": appErr.Message,
				"form":  req,
			})
			return
		}
		h.renderer.Error(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/guidance")
}

// EditForm renders the edit form for one rule.
func (h *GuidanceHandler) EditForm(c *gin.Context) {
	rule, err := h.guidance.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "guidance-edit.tmpl", gin.H{
		"title":    "Edit Guidance",
		"guidance": rule,
	})
}

// Update rewrites a guidance rule.
func (h *GuidanceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req service.GuidanceRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderEditError(c, id, appErrors.Clone(appErrors.ErrValidation, "invalid form submission"), req)
		return
	}

	if err := h.guidance.Update(c.Request.Context(), id, req); err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Status == http.StatusBadRequest {
			h.renderEditError(c, id, appErr, req)
			return
		}
		h.renderer.Error(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/guidance")
}

func (h *GuidanceHandler) renderEditError(c *gin.Context, id string, appErr *appErrors.Error, req service.GuidanceRequest) {
	h.renderer.HTML(c, appErr.Status, "guidance-edit.tmpl", gin.H{
		"title": "Edit Guidance",
		"error": appErr.Message,
		"guidance": &models.Guidance{
			ID:          id,
			MinGPA:      req.MinGPA,
			MaxGPA:      req.MaxGPA,
			StatusLevel: req.StatusLevel,
			Major:       req.Major,
			Content:     req.Content,
		},
	})
}

// Delete removes a guidance rule.
func (h *GuidanceHandler) Delete(c *gin.Context) {
	if err := h.guidance.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.renderer.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/guidance")
}
