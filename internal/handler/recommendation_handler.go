package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-success-portal/internal/models"
	"github.com/noah-isme/student-success-portal/internal/service"
	"github.com/noah-isme/student-success-portal/internal/view"
	appErrors "github.com/noah-isme/student-success-portal/pkg/errors"
)

type recommendationService interface {
	List(ctx context.Context, major string) ([]models.Recommendation, error)
	Get(ctx context.Context, id string) (*models.Recommendation, error)
	Create(ctx context.Context, req service.RecommendationRequest) (*models.Recommendation, error)
	Update(ctx context.Context, id string, req service.RecommendationRequest) error
	Delete(ctx context.Context, id string) error
}

// RecommendationHandler exposes the recommendation resource pages.
type RecommendationHandler struct {
	recommendations recommendationService
	renderer        *view.Renderer
}

// NewRecommendationHandler constructs RecommendationHandler.
func NewRecommendationHandler(recommendations recommendationService, renderer *view.Renderer) *RecommendationHandler {
	return &RecommendationHandler{recommendations: recommendations, renderer: renderer}
}

// List renders recommendations, filtered to an exact major when given.
func (h *RecommendationHandler) List(c *gin.Context) {
	recs, err := h.recommendations.List(c.Request.Context(), c.Query("major"))
	if err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "recommendation-list.tmpl", gin.H{
		"title":           "Recommendations",
		"recommendations": recs,
	})
}

// NewForm renders the create form.
func (h *RecommendationHandler) NewForm(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "recommendation-new.tmpl", gin.H{"title": "New Recommendation"})
}

// Create stores a new recommendation.
func (h *RecommendationHandler) Create(c *gin.Context) {
	var req service.RecommendationRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderer.HTML(c, http.StatusBadRequest, "recommendation-new.tmpl", gin.H{
			"title": "New Recommendation",
			"error": "invalid form submission",
			"form":  req,
		})
		return
	}

	if _, err := h.recommendations.Create(c.Request.Context(), req); err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Status == http.StatusBadRequest {
			h.renderer.HTML(c, appErr.Status, "recommendation-new.tmpl", gin.H{
				"title": "New Recommendation",
				"error": appErr.Message,
				"form":  req,
			})
			return
		}
		h.renderer.Error(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/recommendations")
}

// EditForm renders the edit form for one recommendation.
func (h *RecommendationHandler) EditForm(c *gin.Context) {
	rec, err := h.recommendations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "recommendation-edit.tmpl", gin.H{
		"title":          "Edit Recommendation",
		"recommendation": rec,
	})
}

// Update rewrites a recommendation.
func (h *RecommendationHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req service.RecommendationRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderEditError(c, id, appErrors.Clone(appErrors.ErrValidation, "invalid form submission"), req)
		return
	}

	if err := h.recommendations.Update(c.Request.Context(), id, req); err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Status == http.StatusBadRequest {
			h.renderEditError(c, id, appErr, req)
			return
		}
		h.renderer.Error(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/recommendations")
}

func (h *RecommendationHandler) renderEditError(c *gin.Context, id string, appErr *appErrors.Error, req service.RecommendationRequest) {
	h.renderer.HTML(c, appErr.Status, "recommendation-edit.tmpl", gin.H{
		"title": "Edit Recommendation",
		"error": appErr.Message,
		"recommendation": &models.Recommendation{
			ID:          id,
			Title:       req.Title,
			Major:       req.Major,
			Type:        req.Type,
			URL:         req.URL,
			Description: req.Description,
		},
	})
}

// Delete removes a recommendation.
func (h *RecommendationHandler) Delete(c *gin.Context) {
	if err := h.recommendations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.renderer.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/recommendations")
}
