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

type guidanceRepository interface {
	List(ctx context.Context) ([]models.Guidance, error)
	Match(ctx context.Context, m models.GuidanceMatch) ([]models.Guidance, error)
	FindByID(ctx context.Context, id string) (*models.Guidance, error)
	Create(ctx context.Context, rule *models.Guidance) error
	Update(ctx context.Context, rule *models.Guidance) error
	Delete(ctx context.Context, id string) error
}

// GuidanceRequest holds the create/edit form payload for a guidance rule.
type GuidanceRequest struct {
	MinGPA      float64 `form:"min_gpa" validate:"min=0,max=4"`
	MaxGPA      float64 `form:"max_gpa" validate:"min=0,max=4"`
	StatusLevel string  `form:"status_level" validate:"required"`
	Major       string  `form:"major" validate:"required"`
	Content     string  `form:"content" validate:"required"`
}

// GuidanceService handles guidance-rule use-cases.
type GuidanceService struct {
	repo      guidanceRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGuidanceService constructs the guidance service.
func NewGuidanceService(repo guidanceRepository, validate *validator.Validate, logger *zap.Logger) *GuidanceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GuidanceService{repo: repo, validator: validate, logger: logger}
}

// List returns all guidance rules, or only the rules matching the given
// student attributes when match is non-nil.
func (s *GuidanceService) List(ctx context.Context, match *models.GuidanceMatch) ([]models.Guidance, error) {
	var (
		rules []models.Guidance
		err   error
	)
	if match != nil {
		rules, err = s.repo.Match(ctx, *match)
	} else {
		rules, err = s.repo.List(ctx)
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list guidance")
	}
	return rules, nil
}

// Get returns one guidance rule by ID.
func (s *GuidanceService) Get(ctx context.Context, id string) (*models.Guidance, error) {
	rule, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "guidance rule not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load guidance")
	}
	return rule, nil
}

// Create stores a new guidance rule after range validation.
func (s *GuidanceService) Create(ctx context.Context, req GuidanceRequest) (*models.Guidance, error) {
	if err := s.validateRule(req); err != nil {
		return nil, err
	}

	rule := &models.Guidance{
		MinGPA:      req.MinGPA,
		MaxGPA:      req.MaxGPA,
		StatusLevel: req.StatusLevel,
		Major:       req.Major,
		Content:     req.Content,
	}
	if err := s.repo.Create(ctx, rule); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create guidance")
	}
	return rule, nil
}

// Update rewrites a guidance rule after range validation.
func (s *GuidanceService) Update(ctx context.Context, id string, req GuidanceRequest) error {
	if err := s.validateRule(req); err != nil {
		return err
	}

	rule := &models.Guidance{
		ID:          id,
		MinGPA:      req.MinGPA,
		MaxGPA:      req.MaxGPA,
		StatusLevel: req.StatusLevel,
		Major:       req.Major,
		Content:     req.Content,
	}
	if err := s.repo.Update(ctx, rule); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "guidance rule not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update guidance")
	}
	return nil
}

// Delete removes a guidance rule.
func (s *GuidanceService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "guidance rule not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete guidance")
	}
	return nil
}

func (s *GuidanceService) validateRule(req GuidanceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "major, status level and content are required")
	}
	if req.MinGPA > req.MaxGPA {
		return appErrors.Clone(appErrors.ErrValidation, "minimum GPA must not exceed maximum GPA")
	}
	return nil
}
