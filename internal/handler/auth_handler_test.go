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
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/student-success-portal/internal/models"
	"github.com/noah-isme/student-success-portal/internal/view"
	appErrors "github.com/noah-isme/student-success-portal/pkg/errors"
)

type mockAuthService struct {
	student     *models.Student
	token       string
	err         error
	loggedOut   string
	logoutCalls int
}

func (m *mockAuthService) Login(_ context.Context, req models.LoginRequest) (*models.Student, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return m.student, m.token, nil
}

func (m *mockAuthService) Logout(_ context.Context, token string) {
	m.loggedOut = token
	m.logoutCalls++
}

func newAuthRouter(t *testing.T, auth *mockAuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("").Parse(`
{{define "login.tmpl"}}login {{with .error}}error={{.}}{{end}}{{end}}
{{define "error.tmpl"}}{{.status}}: {{.message}}{{end}}`)))

	h := NewAuthHandler(auth, nil, view.New(nil), CookieSettings{Name: "ssp_token", MaxAge: 86400})
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	return r
}

func postLoginForm(r *gin.Engine, values url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandlerLoginAdminRedirect(t *testing.T) {
	auth := &mockAuthService{
		student: &models.Student{ID: "s1", Role: models.RoleAdmin},
		token:   "signed-token",
	}
	r := newAuthRouter(t, auth)

	w := postLoginForm(r, url.Values{"email": {"alice@example.edu"}, "password": {"pw"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "ssp_token", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)
}

func TestAuthHandlerLoginStudentHonorsReturnTo(t *testing.T) {
	auth := &mockAuthService{
		student: &models.Student{ID: "s1", Role: models.RoleStudent},
		token:   "signed-token",
	}
	r := newAuthRouter(t, auth)

	w := postLoginForm(r, url.Values{
		"email":     {"alice@example.edu"},
		"password":  {"pw"},
		"return_to": {"/students"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/students", w.Header().Get("Location"))
}

func TestAuthHandlerLoginIgnoresExternalReturnTo(t *testing.T) {
	for _, target := range []string{
		"https://evil.example.com/",
		"//evil.example.com/phish",
		"/\\evil.example.com/phish",
		"evil.example.com",
	} {
		auth := &mockAuthService{
			student: &models.Student{ID: "s1", Role: models.RoleStudent},
			token:   "signed-token",
		}
		r := newAuthRouter(t, auth)

		w := postLoginForm(r, url.Values{
			"email":     {"alice@example.edu"},
			"password":  {"pw"},
			"return_to": {target},
		})

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/dashboard", w.Header().Get("Location"), "return_to=%s", target)
	}
}

func TestAuthHandlerLoginFailureReRendersForm(t *testing.T) {
	auth := &mockAuthService{err: appErrors.Clone(appErrors.ErrInvalidCredentials, "")}
	r := newAuthRouter(t, auth)

	w := postLoginForm(r, url.Values{"email": {"alice@example.edu"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error=invalid email or password")
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandlerLogoutClearsCookie(t *testing.T) {
	auth := &mockAuthService{}
	r := newAuthRouter(t, auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "ssp_token", Value: "signed-token"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, "signed-token", auth.loggedOut)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandlerLogoutWithoutCookie(t *testing.T) {
	auth := &mockAuthService{}
	r := newAuthRouter(t, auth)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Zero(t, auth.logoutCalls)
}
