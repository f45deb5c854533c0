package service

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/noah-isme/student-success-portal/internal/models"
	appErrors "github.com/noah-isme/student-success-portal/pkg/errors"
	"github.com/noah-isme/student-success-portal/pkg/export"
)

type rosterLister interface {
	List(ctx context.Context) ([]models.Student, error)
}

// ExportFormat selects the roster download encoding.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// RosterFile is a rendered roster download.
type RosterFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the admin roster download.
type ExportService struct {
	students rosterLister
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs the export service.
func NewExportService(students rosterLister, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		students: students,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// Roster renders the full student roster in the requested format.
func (s *ExportService) Roster(ctx context.Context, format ExportFormat) (*RosterFile, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load roster")
	}

	data := export.Dataset{
		Columns: []string{"Name", "Email", "Student ID", "Major", "Status", "GPA", "Semester"},
	}
	for _, st := range students {
		data.Rows = append(data.Rows, []string{
			st.Name,
			st.Email,
			st.StudentID,
			st.Major,
			st.Status,
			strconv.FormatFloat(st.GPA, 'f', 2, 64),
			st.Semester,
		})
	}

	switch format {
	case FormatCSV:
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &RosterFile{Content: content, ContentType: "text/csv", Filename: "students.csv"}, nil
	case FormatPDF:
		content, err := s.pdf.Render(data, "Student Roster")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &RosterFile{Content: content, ContentType: "application/pdf", Filename: "students.pdf"}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}
