package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/student-success-portal/internal/models"
	appErrors "github.com/noah-isme/student-success-portal/pkg/errors"
)

type recommendationRepository interface {
	List(ctx context.Context) ([]models.Recommendation, error)
	MatchByMajor(ctx context.Context, major string) ([]models.Recommendation, error)
	FindByID(ctx context.Context, id string) (*models.Recommendation, error)
	Create(ctx context.Context, rec *models.Recommendation) error
	Update(ctx context.Context, rec *models.Recommendation) error
	Delete(ctx context.Context, id string) error
}

// RecommendationRequest holds the create/edit form payload.
type RecommendationRequest struct {
	Title       string `form:"title" validate:"required"`
	Major       string `form:"major" validate:"required"`
	Type        string `form:"type"`
	URL         string `form:"url" validate:"omitempty,url"`
	Description string `form:"description"`
}

// RecommendationService handles recommendation use-cases.
type RecommendationService struct {
	repo      recommendationRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRecommendationService constructs the recommendation service.
func NewRecommendationService(repo recommendationRepository, validate *validator.Validate, logger *zap.Logger) *RecommendationService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecommendationService{repo: repo, validator: validate, logger: logger}
}

// List returns all recommendations, or only the exact-major matches when
// major is non-empty.
func (s *RecommendationService) List(ctx context.Context, major string) ([]models.Recommendation, error) {
	var (
		recs []models.Recommendation
		err  error
	)
	if major != "" {
		recs, err = s.repo.MatchByMajor(ctx, major)
	} else {
		recs, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list recommendations")
	}
	return recs, nil
}

// Get returns one recommendation by ID.
func (s *RecommendationService) Get(ctx context.Context, id string) (*models.Recommendation, error) {
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "recommendation not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recommendation")
	}
	return rec, nil
}

// Create stores a new recommendation.
func (s *RecommendationService) Create(ctx context.Context, req RecommendationRequest) (*models.Recommendation, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title and major are required")
	}

	rec := &models.Recommendation{
		Title:       req.Title,
		Major:       req.Major,
		Type:        req.Type,
		URL:         req.URL,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create recommendation")
	}
	return rec, nil
}

// Update rewrites a recommendation.
func (s *RecommendationService) Update(ctx context.Context, id string, req RecommendationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title and major are required")
	}

	rec := &models.Recommendation{
		ID:          id,
		Title:       req.Title,
		Major:       req.Major,
		Type:        req.Type,
		URL:         req.URL,
		Description: req.Description,
	}
	if err := s.repo.Update(ctx, rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "recommendation not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update recommendation")
	}
	return nil
}

// Delete removes a recommendation.
func (s *RecommendationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "recommendation not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete recommendation")
	}
	return nil
}
