package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "coachhub/internal/errors"
	"coachhub/internal/middleware"
	"coachhub/internal/service"
)

// UserHandler handles signup, login and profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a profile rename request.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required"`
}

// Signup godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} Response
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	user, err := h.userService.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrPasswordPolicy:
			return apperrors.New(http.StatusBadRequest, "密碼不符合規則，需要包含英文數字大小寫，最短8個字，最長16個字")
		case service.ErrEmailTaken:
			return apperrors.New(http.StatusConflict, "Email 已被使用")
		}
		return err
	}

	return c.JSON(http.StatusCreated, success(echo.Map{
		"user": echo.Map{
			"id":   user.ID,
			"name": user.Name,
		},
	}))
}

// Login godoc
// @Summary Login and receive a token
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 201 {object} Response
// @Failure 400 {object} map[string]string
// @Router /users/login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	token, user, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrPasswordPolicy:
			return apperrors.New(http.StatusBadRequest, "密碼不符合規則，需要包含英文數字大小寫，最短8個字，最長16個字")
		case service.ErrInvalidCredentials:
			return apperrors.New(http.StatusBadRequest, "使用者不存在或密碼輸入錯誤")
		}
		return err
	}

	return c.JSON(http.StatusCreated, success(echo.Map{
		"token": token,
		"user": echo.Map{
			"name": user.Name,
		},
	}))
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Failure 401 {object} map[string]string
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	ident := middleware.IdentityFrom(c)
	if ident == nil {
		return apperrors.New(http.StatusUnauthorized, "你尚未登入！")
	}

	user, err := h.userService.GetProfile(c.Request().Context(), ident.ID)
	if err != nil {
		if err == service.ErrUserNotFound {
			return apperrors.New(http.StatusBadRequest, "使用者不存在")
		}
		return err
	}

	return c.JSON(http.StatusOK, success(echo.Map{
		"email": user.Email,
		"name":  user.Name,
	}))
}

// UpdateProfile godoc
// @Summary Rename the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "New name"
// @Success 200 {object} Response
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	ident := middleware.IdentityFrom(c)
	if ident == nil {
		return apperrors.New(http.StatusUnauthorized, "你尚未登入！")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, "欄位未填寫正確")
	}

	if err := h.userService.UpdateName(c.Request().Context(), ident.ID, req.Name); err != nil {
		switch err {
		case service.ErrUserNotFound:
			return apperrors.New(http.StatusBadRequest, "使用者不存在")
		case service.ErrNameUnchanged:
			return apperrors.New(http.StatusBadRequest, "使用者名稱未變更")
		case service.ErrUpdateFailed:
			return apperrors.New(http.StatusBadRequest, "更新使用者失敗")
		}
		return err
	}

	return c.JSON(http.StatusOK, success(nil))
}
