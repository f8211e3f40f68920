package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"coachhub/internal/auth"
	"coachhub/internal/errors"
	"coachhub/internal/handler"
	"coachhub/internal/middleware"
	"coachhub/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userRepo repository.UserRepository,
	userHandler *handler.UserHandler,
	adminHandler *handler.AdminHandler,
	skillHandler *handler.SkillHandler,
	packageHandler *handler.CreditPackageHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = errors.HTTPErrorHandler

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	requireAuth := middleware.RequireAuth(jwtService, userRepo)
	requireCoach := middleware.RequireCoach()

	// User routes
	users := e.Group("/users")
	users.POST("/signup", userHandler.Signup)
	users.POST("/login", userHandler.Login)
	users.GET("/profile", userHandler.GetProfile, requireAuth)
	users.PUT("/profile", userHandler.UpdateProfile, requireAuth)

	// Catalog routes
	e.GET("/credit-package", packageHandler.ListCreditPackages)
	e.POST("/credit-package", packageHandler.CreateCreditPackage)
	e.DELETE("/credit-package/:id", packageHandler.DeleteCreditPackage)

	e.GET("/skill", skillHandler.ListSkills)
	e.POST("/skill", skillHandler.CreateSkill)
	e.DELETE("/skill/:id", skillHandler.DeleteSkill)

	// Admin routes. Coach promotion carries no gates, matching the observed
	// route table; see DESIGN.md.
	admin := e.Group("/admin")
	admin.POST("/coaches/courses", adminHandler.CreateCourse, requireAuth, requireCoach)
	admin.PUT("/coaches/courses/:courseId", adminHandler.UpdateCourse, requireAuth, requireCoach)
	admin.POST("/coaches/:userId", adminHandler.PromoteCoach)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
