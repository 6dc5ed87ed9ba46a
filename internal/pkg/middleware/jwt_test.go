package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/constants"
	jwtpkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/jwt"
	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWTConfig = models.JWTConfig{
	Secret:     "middleware-test-secret",
	Expiration: 30,
	Issuer:     "ludokan-test",
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	validToken, _, err := jwtpkg.GenerateToken(userID, constants.RoleAdmin, testJWTConfig)
	require.NoError(t, err)
	noRoleToken, _, err := jwtpkg.GenerateToken(userID, "", testJWTConfig)
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedRole   string
	}{
		{
			name:           "Missing header",
			header:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			header:         "Basic " + validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Invalid token",
			header:         "Bearer garbage",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Valid admin token",
			header:         "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectedRole:   constants.RoleAdmin,
		},
		{
			name:           "Token without role defaults to user",
			header:         "Bearer " + noRoleToken,
			expectedStatus: http.StatusOK,
			expectedRole:   constants.RoleUser,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := JWTAuthMiddleware(testJWTConfig)(func(c echo.Context) error {
				gotID, ok := UserIDFromContext(c)
				assert.True(t, ok)
				assert.Equal(t, userID, gotID)
				assert.Equal(t, tt.expectedRole, c.Get(constants.ContextKeyUserRole))
				return c.NoContent(http.StatusOK)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name           string
		role           interface{}
		expectedStatus int
	}{
		{name: "Admin allowed", role: constants.RoleAdmin, expectedStatus: http.StatusNoContent},
		{name: "User forbidden", role: constants.RoleUser, expectedStatus: http.StatusForbidden},
		{name: "No role forbidden", role: nil, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)
			if tt.role != nil {
				c.Set(constants.ContextKeyUserRole, tt.role)
			}

			handler := RequireRole(constants.RoleAdmin)(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})

			require.NoError(t, handler(c))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestIsAdmin(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.False(t, IsAdmin(c))
	c.Set(constants.ContextKeyUserRole, constants.RoleAdmin)
	assert.True(t, IsAdmin(c))

	_, ok := UserIDFromContext(c)
	assert.False(t, ok)
}
