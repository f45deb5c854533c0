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

type studentService interface {
	List(ctx context.Context) ([]models.Student, error)
	Get(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, req service.CreateStudentRequest) (*models.Student, error)
	Update(ctx context.Context, id string, req service.UpdateStudentRequest) error
	Delete(ctx context.Context, id string) error
}

// StudentHandler exposes the student resource pages.
type StudentHandler struct {
	students studentService
	renderer *view.Renderer
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students studentService, renderer *view.Renderer) *StudentHandler {
	return &StudentHandler{students: students, renderer: renderer}
}

// List renders all students ordered by name.
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "students.tmpl", gin.H{
		"title":    "Students",
		"students": students,
	})
}

// NewForm renders the signup form.
func (h *StudentHandler) NewForm(c *gin.Context) {
	h.renderer.HTML(c, http.StatusOK, "student-new.tmpl", gin.H{"title": "New Student"})
}

// Create registers a student from the signup form.
func (h *StudentHandler) Create(c *gin.Context) {
	var req service.CreateStudentRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderFormError(c, "student-new.tmpl", appErrors.Clone(appErrors.ErrValidation, "invalid form submission"), req)
		return
	}

	if _, err := h.students.Create(c.Request.Context(), req); err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Status == http.StatusBadRequest || appErr.Status == http.StatusConflict {
			h.renderFormError(c, "student-new.tmpl", appErr, req)
			return
		}
		h.renderer.Error(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/students")
}

// EditForm renders the edit form for one student.
func (h *StudentHandler) EditForm(c *gin.Context) {
	student, err := h.students.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderer.Error(c, err)
		return
	}
	h.renderer.HTML(c, http.StatusOK, "student-edit.tmpl", gin.H{
		"title":   "Edit Student",
		"student": student,
	})
}

// Update rewrites every mutable field except the password.
func (h *StudentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req service.UpdateStudentRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderEditError(c, id, appErrors.Clone(appErrors.ErrValidation, "invalid form submission"), req)
		return
	}

	if err := h.students.Update(c.Request.Context(), id, req); err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Status == http.StatusBadRequest || appErr.Status == http.StatusConflict {
			h.renderEditError(c, id, appErr, req)
			return
		}
		h.renderer.Error(c, err)
		return
	}

	c.Redirect(http.StatusFound, "/students")
}

// Delete removes a student and returns to the listing.
func (h *StudentHandler) Delete(c *gin.Context) {
	if err := h.students.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.renderer.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/students")
}

func (h *StudentHandler) renderFormError(c *gin.Context, name string, appErr *appErrors.Error, req service.CreateStudentRequest) {
	h.renderer.HTML(c, appErr.Status, name, gin.H{
		"title": "New Student",
		"error": appErr.Message,
		"form":  req,
	})
}

func (h *StudentHandler) renderEditError(c *gin.Context, id string, appErr *appErrors.Error, req service.UpdateStudentRequest) {
	h.renderer.HTML(c, appErr.Status, "student-edit.tmpl", gin.H{
		"title": "Edit Student",
		"error": appErr.Message,
		"student": &models.Student{
			ID:        id,
			Name:      req.Name,
			Email:     req.Email,
			StudentID: req.StudentID,
			Major:     req.Major,
			Status:    req.Status,
			GPA:       req.GPA,
			Semester:  req.Semester,
		},
	})
}
