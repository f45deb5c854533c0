package handler

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-success-portal/internal/models"
	"github.com/noah-isme/student-success-portal/internal/service"
	"github.com/noah-isme/student-success-portal/internal/view"
	appErrors "github.com/noah-isme/student-success-portal/pkg/errors"
)

type mockGuidanceService struct {
	rules     []models.Guidance
	rule      *models.Guidance
	createErr error

	lastMatch *models.GuidanceMatch
	matchSeen bool
}

func (m *mockGuidanceService) List(_ context.Context, match *models.GuidanceMatch) ([]models.Guidance, error) {
	m.lastMatch = match
	m.matchSeen = true
	return m.rules, nil
}

func (m *mockGuidanceService) Get(_ context.Context, id string) (*models.Guidance, error) {
	if m.rule == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "guidance rule not found")
	}
	return m.rule, nil
}

func (m *mockGuidanceService) Create(_ context.Context, req service.GuidanceRequest) (*models.Guidance, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.Guidance{ID: "g1"}, nil
}

func (m *mockGuidanceService) Update(context.Context, string, service.GuidanceRequest) error {
	return nil
}

func (m *mockGuidanceService) Delete(context.Context, string) error { return nil }

func newGuidanceRouter(t *testing.T, svc *mockGuidanceService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(`
{{define "guidance-list.tmpl"}}guidance:{{len .guidance}}{{end}}
{{define "guidance-new.tmpl"}}new {{with .error}}error={{.}}{{end}}{{end}}
{{define "guidance-edit.tmpl"}}edit {{with .error}}error={{.}}{{end}}{{end}}
{{define "error.tmpl"}}{{.status}}: {{.message}}{{end}}`)))

	h := NewGuidanceHandler(svc, view.New(nil))
	r.GET("/guidance", h.List)
	r.POST("/guidance", h.Create)
	r.GET("/guidance/:id/edit", h.EditForm)
	r.PUT("/guidance/:id", h.Update)
	return r
}

func TestGuidanceHandlerListWithoutFilter(t *testing.T) {
	svc := &mockGuidanceService{rules: []models.Guidance{{ID: "g1"}}}
	r := newGuidanceRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guidance", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.True(t, svc.matchSeen)
	assert.Nil(t, svc.lastMatch)
}

func TestGuidanceHandlerListWithFilter(t *testing.T) {
	svc := &mockGuidanceService{}
	r := newGuidanceRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guidance?major=CS&status=Junior&gpa=3.2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastMatch)
	assert.Equal(t, models.GuidanceMatch{Major: "CS", Status: "Junior", GPA: 3.2}, *svc.lastMatch)
}

func TestGuidanceHandlerCreateInvertedRangeReRendersForm(t *testing.T) {
	svc := &mockGuidanceService{createErr: appErrors.Clone(appErrors.ErrValidation, "minimum GPA must not exceed maximum GPA")}
	r := newGuidanceRouter(t, svc)

	w := submitForm(r, http.MethodPost, "/guidance", url.Values{
		"min_gpa":      {"3.5"},
		"max_gpa":      {"2.0"},
		"status_level": {"Junior"},
		"major":        {"CS"},
		"content":      {"x"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "minimum GPA must not exceed maximum GPA")
}

func TestGuidanceHandlerUpdateBindFailureReRendersEditForm(t *testing.T) {
	svc := &mockGuidanceService{}
	r := newGuidanceRouter(t, svc)

	w := submitForm(r, http.MethodPut, "/guidance/g1", url.Values{
		"min_gpa":      {"two point five"},
		"max_gpa":      {"4.0"},
		"status_level": {"Junior"},
		"major":        {"CS"},
		"content":      {"x"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "edit")
	assert.Contains(t, w.Body.String(), "error=invalid form submission")
}

func TestGuidanceHandlerEditFormMissingRule(t *testing.T) {
	svc := &mockGuidanceService{}
	r := newGuidanceRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guidance/missing/edit", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "guidance rule not found")
}
