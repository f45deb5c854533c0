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

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.Student, string, error)
	Logout(ctx context.Context, token string)
}

// CookieSettings describes how the auth cookie is written. Secure is left off
// deliberately: the deployed system assumes plaintext HTTP.
type CookieSettings struct {
	Name   string
	MaxAge int
}

// AuthHandler wires the login and logout flows.
type AuthHandler struct {
	auth     authService
	metrics  *service.MetricsService
	renderer *view.Renderer
	cookie   CookieSettings
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(auth authService, metrics *service.MetricsService, renderer *view.Renderer, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{auth: auth, metrics: metrics, renderer: renderer, cookie: cookie}
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "login.tmpl", gin.H{
		"title":     "Sign In",
		"return_to": c.Query("return_to"),
	})
}

// Login authenticates the submitted credentials. Failures re-render the form
// with an inline message; success sets the token cookie and redirects by role.
func (h *AuthHandler) Login(c *gin.Context) {
	req := models.LoginRequest{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	returnTo := c.PostForm("return_to")

	student, token, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		if h.metrics != nil {
			h.metrics.ObserveLogin("failure")
		}
		appErr := appErrors.FromError(err)
		if appErr.Status == http.StatusUnauthorized || appErr.Status == http.StatusBadRequest {
			h.renderer.HTML(c, appErr.Status, "login.tmpl", gin.H{
				"title":     "Sign In",
				"error":     appErr.Message,
				"email":     req.Email,
				"return_to": returnTo,
			})
			return
		}
		h.renderer.Error(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveLogin("success")
	}

	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", false, true)

	switch {
	case student.Role == models.RoleAdmin:
		c.Redirect(http.StatusFound, "/admin")
	case isLocalPath(returnTo):
		c.Redirect(http.StatusFound, returnTo)
	default:
		c.Redirect(http.StatusFound, "/dashboard")
	}
}

// isLocalPath accepts only same-site redirect targets. A second slash or
// backslash after the first would make the browser treat the value as
// protocol-relative and resolve it against another host.
func isLocalPath(target string) bool {
	if target == "" || target[0] != '/' {
		return false
	}
	if len(target) > 1 && (target[1] == '/' || target[1] == '\\') {
		return false
	}
	return true
}

// Logout destroys the token unconditionally and redirects home. No validity
// check happens first.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookie.Name); err == nil && token != "" {
		h.auth.Logout(c.Request.Context(), token)
	}
	c.SetCookie(h.cookie.Name, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}
