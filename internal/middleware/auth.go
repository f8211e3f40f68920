package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"coachhub/internal/auth"
	apperrors "coachhub/internal/errors"
	"coachhub/internal/model"
	"coachhub/internal/repository"
)

// identityKey is the echo context key the authentication gate stores the
// resolved identity under.
const identityKey = "identity"

// Identity is the minimal authenticated identity attached to a request.
type Identity struct {
	ID   uuid.UUID
	Role string
	Name string
}

// IdentityFrom returns the identity attached by RequireAuth, or nil when the
// request did not pass the gate.
func IdentityFrom(c echo.Context) *Identity {
	ident, _ := c.Get(identityKey).(*Identity)
	return ident
}

// RequireAuth extracts the bearer token, validates it and confirms the user
// row still exists before attaching the identity. A valid token whose user
// has since been deleted is rejected.
func RequireAuth(jwtService *auth.JWTService, userRepo repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return apperrors.New(http.StatusUnauthorized, "你尚未登入！")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				if errors.Is(err, auth.ErrTokenExpired) {
					return apperrors.New(http.StatusUnauthorized, "Token 已過期")
				}
				return apperrors.New(http.StatusUnauthorized, "無效的 token")
			}

			user, err := userRepo.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return apperrors.New(http.StatusUnauthorized, "查無此使用者")
			}

			c.Set(identityKey, &Identity{
				ID:   user.ID,
				Role: user.Role,
				Name: user.Name,
			})
			return next(c)
		}
	}
}

// RequireCoach passes the request through only when the attached identity has
// the coach role. Without an identity it rejects rather than panicking, so
// misordered route wiring fails closed.
func RequireCoach() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident := IdentityFrom(c)
			if ident == nil || ident.Role != model.RoleCoach {
				return apperrors.New(http.StatusUnauthorized, "使用者尚未成為教練")
			}
			return next(c)
		}
	}
}
