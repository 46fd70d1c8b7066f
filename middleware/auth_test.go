package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", AuthRequired(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	app.Get("/admin", AuthRequired(testSecret), RoleRequired("admin"), func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})
	return app
}

func TestAuthRequiredMissingHeader(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/me", nil))
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthRequiredBadToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthRequiredWrongSecret(t *testing.T) {
	app := testApp()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "renter-1"})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthRequiredValidToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"sub": "renter-1", "role": "renter"}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestAuthRequiredMissingSubject(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"role": "renter"}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRoleRequired(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"sub": "renter-1", "role": "renter"}))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)

	req = httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.MapClaims{"sub": "admin-1", "role": "admin"}))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
