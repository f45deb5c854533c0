package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/noah-isme/student-success-portal/internal/models"
	appErrors "github.com/noah-isme/student-success-portal/pkg/errors"
)

type dashboardStudentRepository interface {
	FindByID(ctx context.Context, id string) (*models.Student, error)
}

type guidanceMatcher interface {
	Match(ctx context.Context, m models.GuidanceMatch) ([]models.Guidance, error)
}

type recommendationMatcher interface {
	MatchByMajor(ctx context.Context, major string) ([]models.Recommendation, error)
}

// Dashboard aggregates everything the student landing page renders.
type Dashboard struct {
	Student         *models.Student
	Guidance        []models.Guidance
	Recommendations []models.Recommendation
}

// DashboardService composes the per-student dashboard payload.
type DashboardService struct {
	students        dashboardStudentRepository
	guidance        guidanceMatcher
	recommendations recommendationMatcher
	logger          *zap.Logger
}

// NewDashboardService constructs the dashboard service.
func NewDashboardService(students dashboardStudentRepository, guidance guidanceMatcher, recommendations recommendationMatcher, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{students: students, guidance: guidance, recommendations: recommendations, logger: logger}
}

// Build re-fetches the student row by session ID and collects the matching
// guidance and recommendations. Session claims are never trusted for display
// data; the database row is authoritative.
func (s *DashboardService) Build(ctx context.Context, studentID string) (*Dashboard, error) {
	student, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load student")
	}

	guidance, err := s.guidance.Match(ctx, models.GuidanceMatch{
		Major:  student.Major,
		Status: student.Status,
		GPA:    student.GPA,
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to match guidance")
	}

	recs, err := s.recommendations.MatchByMajor(ctx, student.Major)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to match recommendations")
	}

	return &Dashboard{Student: student, Guidance: guidance, Recommendations: recs}, nil
}
