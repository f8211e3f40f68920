package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "coachhub/internal/errors"
	"coachhub/internal/service"
)

// SkillHandler handles skill catalog endpoints.
type SkillHandler struct {
	skillService service.SkillService
}

// NewSkillHandler creates a skill handler.
func NewSkillHandler(skillService service.SkillService) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

// CreateSkillRequest represents a skill creation request.
type CreateSkillRequest struct {
	Name string `json:"name" validate:"required"`
}

// SkillItem is the projected catalog listing entry.
type SkillItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ListSkills godoc
// @Summary List skills
// @Tags skill
// @Produce json
// @Success 200 {object} Response
// @Router /skill [get]
func (h *SkillHandler) ListSkills(c echo.Context) error {
	skills, err := h.skillService.List(c.Request().Context())
	if err != nil {
		return err
	}

	items := make([]SkillItem, 0, len(skills))
	for _, s := range skills {
		items = append(items, SkillItem{ID: s.ID, Name: s.Name})
	}
	return c.JSON(http.StatusOK, success(items))
}

// CreateSkill godoc
// @Summary Create a skill
// @Tags skill
// @Accept json
// @Produce json
// @Param request body CreateSkillRequest true "Skill data"
// @Success 200 {object} Response
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /skill [post]
func (h *SkillHandler) CreateSkill(c echo.Context) error {
	var req CreateSkillRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	skill, err := h.skillService.Create(c.Request().Context(), req.Name)
	if err != nil {
		if err == service.ErrDuplicateRecord {
			return apperrors.New(http.StatusConflict, "資料重複")
		}
		return err
	}

	return c.JSON(http.StatusOK, success(skill))
}

// DeleteSkill godoc
// @Summary Delete a skill
// @Tags skill
// @Produce json
// @Param id path string true "Skill ID"
// @Success 200 {object} Response
// @Failure 400 {object} map[string]string
// @Router /skill/{id} [delete]
func (h *SkillHandler) DeleteSkill(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperrors.New(http.StatusBadRequest, "ID錯誤")
	}

	if err := h.skillService.Delete(c.Request().Context(), id); err != nil {
		if err == service.ErrRecordNotFound {
			return apperrors.New(http.StatusBadRequest, "ID錯誤")
		}
		return err
	}

	return c.JSON(http.StatusOK, success(nil))
}
