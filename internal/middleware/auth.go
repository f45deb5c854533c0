package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-success-portal/internal/service"
	"github.com/noah-isme/student-success-portal/internal/view"
	appErrors "github.com/noah-isme/student-success-portal/pkg/errors"
)

// RequireAuth gates routes behind a valid cookie token. Missing and invalid
// tokens are treated identically: redirect to the login form with the
// originally requested path as the return-to parameter.
func RequireAuth(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			redirectToLogin(c)
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			redirectToLogin(c)
			return
		}

		c.Set(view.ContextUserKey, claims)
		c.Next()
	}
}

// RequireAdmin gates routes behind the admin role. Anyone else gets a 403
// error view, never a login redirect; a logged-out visitor and a logged-in
// student are indistinguishable here.
func RequireAdmin(authService *service.AuthService, cookieName string, renderer *view.Renderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			renderer.Error(c, appErrors.Clone(appErrors.ErrForbidden, "admin access required"))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil || !claims.IsAdmin() {
			renderer.Error(c, appErrors.Clone(appErrors.ErrForbidden, "admin access required"))
			c.Abort()
			return
		}

		c.Set(view.ContextUserKey, claims)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	target := "/login?return_to=" + url.QueryEscape(c.Request.URL.RequestURI())
	c.Redirect(http.StatusFound, target)
	c.Abort()
}
