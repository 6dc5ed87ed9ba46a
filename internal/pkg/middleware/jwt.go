package middleware

import (
	"strings"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/constants"
	jwtpkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/jwt"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/AxelRadin/LudoKan-sub000/internal/utils"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			role := claims.Role
			if role == "" {
				role = constants.RoleUser
			}

			c.Set(constants.ContextKeyUserID, claims.UserID)
			c.Set(constants.ContextKeyUserRole, role)
			SetUserID(c, claims.UserID.String())

			return next(c)
		}
	}
}

// RequireRole rejects callers whose role is not one of roles.
// Must run after JWTAuthMiddleware.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(constants.ContextKeyUserRole).(string)
			for _, r := range roles {
				if r == role {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "")
		}
	}
}

// UserIDFromContext returns the authenticated user id
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(constants.ContextKeyUserID).(uuid.UUID)
	return userID, ok
}

// IsAdmin reports whether the authenticated user has the admin role
func IsAdmin(c echo.Context) bool {
	role, _ := c.Get(constants.ContextKeyUserRole).(string)
	return role == constants.RoleAdmin
}
