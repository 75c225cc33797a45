package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-gateway/internal/api/dto"
	"github.com/spec-kit/course-gateway/internal/service"
	"github.com/spec-kit/course-gateway/internal/session"
	apperrors "github.com/spec-kit/course-gateway/pkg/util"
)

// CoursesHandler exposes course CRUD. Routes sit behind the session
// gate; each request resolves its own token so the store handle built
// downstream carries exactly the calling identity.
type CoursesHandler struct {
	service *service.CoursesService
}

// NewCoursesHandler constructs handler.
func NewCoursesHandler(coursesService *service.CoursesService) *CoursesHandler {
	return &CoursesHandler{service: coursesService}
}

// List GET /api/courses.
func (h *CoursesHandler) List(c *fiber.Ctx) error {
	courses, err := h.service.List(c.UserContext(), session.TokenFromRequest(c))
	if err != nil {
		return err
	}
	return c.JSON(courses)
}

// Get GET /api/courses/:id.
func (h *CoursesHandler) Get(c *fiber.Ctx) error {
	course, err := h.service.Get(c.UserContext(), session.TokenFromRequest(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(course)
}

// Create POST /api/courses.
func (h *CoursesHandler) Create(c *fiber.Ctx) error {
	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	course, err := h.service.Create(c.UserContext(), session.TokenFromRequest(c), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(course)
}

// Update PUT /api/courses/:id.
func (h *CoursesHandler) Update(c *fiber.Ctx) error {
	var req dto.CourseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	course, err := h.service.Update(c.UserContext(), session.TokenFromRequest(c), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(course)
}

// Delete DELETE /api/courses/:id.
func (h *CoursesHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), session.TokenFromRequest(c), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}
