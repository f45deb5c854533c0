package view

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/noah-isme/student-success-portal/internal/models"
	appErrors "github.com/noah-isme/student-success-portal/pkg/errors"
	"github.com/noah-isme/student-success-portal/pkg/middleware/requestid"
)

// ContextUserKey is the gin context key storing the session claims.
const ContextUserKey = "currentUser"

// CurrentClaims returns the session claims stored by the auth guard, if any.
func CurrentClaims(c *gin.Context) *models.SessionClaims {
	if v, exists := c.Get(ContextUserKey); exists {
		if claims, ok := v.(*models.SessionClaims); ok {
			return claims
		}
	}
	return nil
}

// Renderer fills HTML templates and owns the error-to-page mapping.
type Renderer struct {
	logger *zap.Logger
}

// New constructs a Renderer.
func New(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger}
}

// HTML renders a template, always exposing the current session to the view.
func (r *Renderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["user"]; !ok {
		if claims := CurrentClaims(c); claims != nil {
			data["user"] = claims
		}
	}
	c.HTML(status, name, data)
}

// Error renders the error page with the taxonomy's safe message. The full
// error detail only ever reaches the server log.
func (r *Renderer) Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)

	fields := []zap.Field{
		zap.String("code", appErr.Code),
		zap.Int("status", appErr.Status),
		zap.String("path", c.Request.URL.Path),
		zap.Error(appErr),
	}
	if reqID := requestid.Value(c); reqID != "" {
		fields = append(fields, zap.String("request_id", reqID))
	}
	if appErr.Status >= http.StatusInternalServerError {
		r.logger.Error("request failed", fields...)
	} else {
		r.logger.Warn("request rejected", fields...)
	}

	r.HTML(c, appErr.Status, "error.tmpl", gin.H{
		"status":  appErr.Status,
		"message": appErr.Message,
	})
}
