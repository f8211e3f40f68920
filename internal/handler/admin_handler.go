package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "coachhub/internal/errors"
	"coachhub/internal/service"
)

// AdminHandler handles course management and coach promotion endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates an admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CourseRequest represents the course body accepted on create and update.
type CourseRequest struct {
	UserID          string `json:"user_id" validate:"omitempty,uuid"`
	SkillID         string `json:"skill_id" validate:"required,uuid"`
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description" validate:"required"`
	StartAt         string `json:"start_at" validate:"required"`
	EndAt           string `json:"end_at" validate:"required"`
	MaxParticipants int    `json:"max_participants" validate:"required,gt=0"`
	MeetingURL      string `json:"meeting_url" validate:"required,startswith=https"`
}

// PromoteCoachRequest represents a coach promotion body.
type PromoteCoachRequest struct {
	ExperienceYears int    `json:"experience_years" validate:"gte=0"`
	Description     string `json:"description" validate:"required"`
	ProfileImageURL string `json:"profile_image_url" validate:"omitempty,startswith=https"`
}

// courseInput converts the validated request into service input. Timestamps
// are RFC 3339; a parse failure is a field error.
func (r *CourseRequest) courseInput() (service.CourseInput, error) {
	var input service.CourseInput
	var err error

	if r.UserID != "" {
		if input.UserID, err = uuid.Parse(r.UserID); err != nil {
			return input, err
		}
	}
	if input.SkillID, err = uuid.Parse(r.SkillID); err != nil {
		return input, err
	}
	if input.StartAt, err = time.Parse(time.RFC3339, r.StartAt); err != nil {
		return input, err
	}
	if input.EndAt, err = time.Parse(time.RFC3339, r.EndAt); err != nil {
		return input, err
	}

	input.Name = r.Name
	input.Description = r.Description
	input.MaxParticipants = r.MaxParticipants
	input.MeetingURL = r.MeetingURL
	return input, nil
}

// CreateCourse godoc
// @Summary Create a course for a coach
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CourseRequest true "Course data"
// @Success 201 {object} Response
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/coaches/courses [post]
func (h *AdminHandler) CreateCourse(c echo.Context) error {
	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}
	if err := c.Validate(&req); err != nil || req.UserID == "" {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	input, err := req.courseInput()
	if err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	course, err := h.adminService.CreateCourse(c.Request().Context(), input)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return apperrors.New(http.StatusBadRequest, "使用者不存在")
		case service.ErrNotCoach:
			return apperrors.New(http.StatusConflict, "使用者尚未成為教練")
		}
		return err
	}

	return c.JSON(http.StatusCreated, success(echo.Map{
		"course": course,
	}))
}

// UpdateCourse godoc
// @Summary Update an existing course
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param request body CourseRequest true "Course data"
// @Success 201 {object} Response
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/coaches/courses/{courseId} [put]
func (h *AdminHandler) UpdateCourse(c echo.Context) error {
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	var req CourseRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	input, err := req.courseInput()
	if err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	course, err := h.adminService.UpdateCourse(c.Request().Context(), courseID, input)
	if err != nil {
		switch err {
		case service.ErrCourseNotFound:
			return apperrors.New(http.StatusBadRequest, "課程不存在")
		case service.ErrUpdateFailed:
			return apperrors.New(http.StatusBadRequest, "更新課程失敗")
		}
		return err
	}

	return c.JSON(http.StatusCreated, success(echo.Map{
		"course": course,
	}))
}

// PromoteCoach godoc
// @Summary Promote a user to coach
// @Tags admin
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param request body PromoteCoachRequest true "Coach profile data"
// @Success 201 {object} Response
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/coaches/{userId} [post]
func (h *AdminHandler) PromoteCoach(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	var req PromoteCoachRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	user, coach, err := h.adminService.PromoteCoach(
		c.Request().Context(),
		userID,
		req.ExperienceYears,
		req.Description,
		req.ProfileImageURL,
	)
	if err != nil {
		switch err {
		case service.ErrUserNotFound:
			return apperrors.New(http.StatusBadRequest, "使用者不存在")
		case service.ErrAlreadyCoach:
			return apperrors.New(http.StatusConflict, "使用者已經是教練")
		case service.ErrUpdateFailed:
			return apperrors.New(http.StatusBadRequest, "更新使用者失敗")
		}
		return err
	}

	return c.JSON(http.StatusCreated, success(echo.Map{
		"user": echo.Map{
			"name": user.Name,
			"role": user.Role,
		},
		"coach": coach,
	}))
}
