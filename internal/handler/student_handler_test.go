package handler

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/student-success-portal/internal/models"
	"github.com/noah-isme/student-success-portal/internal/service"
	"github.com/noah-isme/student-success-portal/internal/view"
	appErrors "github.com/noah-isme/student-success-portal/pkg/errors"
)

type mockStudentService struct {
	students  []models.Student
	student   *models.Student
	createErr error
	updateErr error
	deleteErr error

	createdReq *service.CreateStudentRequest
	updatedID  string
	deletedID  string
}

func (m *mockStudentService) List(context.Context) ([]models.Student, error) {
	return m.students, nil
}

func (m *mockStudentService) Get(_ context.Context, id string) (*models.Student, error) {
	if m.student == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	return m.student, nil
}

func (m *mockStudentService) Create(_ context.Context, req service.CreateStudentRequest) (*models.Student, error) {
	m.createdReq = &req
	if m.createErr != nil {
		return nil, m.createErr
	}
	return &models.Student{ID: "s1"}, nil
}

func (m *mockStudentService) Update(_ context.Context, id string, req service.UpdateStudentRequest) error {
	m.updatedID = id
	return m.updateErr
}

func (m *mockStudentService) Delete(_ context.Context, id string) error {
	m.deletedID = id
	return m.deleteErr
}

func newStudentRouter(t *testing.T, svc *mockStudentService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(`
{{define "students.tmpl"}}students:{{len .students}}{{end}}
{{define "student-new.tmpl"}}new {{with .error}}error={{.}}{{end}}{{end}}
{{define "student-edit.tmpl"}}edit {{with .error}}error={{.}}{{end}}{{end}}
{{define "error.tmpl"}}{{.status}}: {{.message}}{{end}}`)))

	h := NewStudentHandler(svc, view.New(nil))
	r.GET("/students", h.List)
	r.GET("/students/new", h.NewForm)
	r.POST("/students", h.Create)
	r.GET("/students/:id/edit", h.EditForm)
	r.PUT("/students/:id", h.Update)
	r.DELETE("/students/:id", h.Delete)
	return r
}

func submitForm(r *gin.Engine, method, path string, values url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestStudentHandlerList(t *testing.T) {
	svc := &mockStudentService{students: []models.Student{{Name: "Alice"}, {Name: "Bob"}}}
	r := newStudentRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "students:2")
}

func TestStudentHandlerCreateRedirects(t *testing.T) {
	svc := &mockStudentService{}
	r := newStudentRouter(t, svc)

	w := submitForm(r, http.MethodPost, "/students", url.Values{
		"name":       {"Alice"},
		"email":      {"alice@example.edu"},
		"student_id": {"S001"},
		"password":   {"pw"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/students", w.Header().Get("Location"))
	assert.NotNil(t, svc.createdReq)
	assert.Equal(t, "Alice", svc.createdReq.Name)
}

func TestStudentHandlerCreateValidationReRendersForm(t *testing.T) {
	svc := &mockStudentService{createErr: appErrors.Clone(appErrors.ErrValidation, "name, email, student ID and password are required")}
	r := newStudentRouter(t, svc)

	w := submitForm(r, http.MethodPost, "/students", url.Values{"name": {"Alice"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error=")
}

func TestStudentHandlerCreateConflictReRendersForm(t *testing.T) {
	svc := &mockStudentService{createErr: appErrors.Clone(appErrors.ErrConflict, "email is already registered")}
	r := newStudentRouter(t, svc)

	w := submitForm(r, http.MethodPost, "/students", url.Values{
		"name":       {"Alice"},
		"email":      {"alice@example.edu"},
		"student_id": {"S001"},
		"password":   {"pw"},
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "email is already registered")
}

func TestStudentHandlerEditFormMissingStudent(t *testing.T) {
	svc := &mockStudentService{}
	r := newStudentRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/students/missing/edit", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "student not found")
}

func TestStudentHandlerUpdateRedirects(t *testing.T) {
	svc := &mockStudentService{}
	r := newStudentRouter(t, svc)

	w := submitForm(r, http.MethodPut, "/students/s1", url.Values{
		"name":       {"Alice"},
		"email":      {"alice@example.edu"},
		"student_id": {"S001"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/students", w.Header().Get("Location"))
	assert.Equal(t, "s1", svc.updatedID)
}

func TestStudentHandlerDeleteMissingStudent(t *testing.T) {
	svc := &mockStudentService{deleteErr: appErrors.Clone(appErrors.ErrNotFound, "student not found")}
	r := newStudentRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/students/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "missing", svc.deletedID)
}

func TestStudentHandlerDeleteRedirects(t *testing.T) {
	svc := &mockStudentService{}
	r := newStudentRouter(t, svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/students/s1", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/students", w.Header().Get("Location"))
}
