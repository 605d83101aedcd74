package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "rahasia"

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func newApp() *fiber.App {
	app := fiber.New()
	app.Delete("/api/a/classes/:id",
		AuthJWT(AuthJWTOpts{Secret: testSecret, AllowCookieFallback: true}),
		OnlyRoles("admin only", "admin", "owner"),
		func(c *fiber.Ctx) error {
			return c.SendString(c.Locals("user_id").(string))
		},
	)
	return app
}

func call(t *testing.T, app *fiber.App, header string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, "/api/a/classes/5", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthJWT(t *testing.T) {
	app := newApp()
	exp := time.Now().Add(time.Hour).Unix()

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"no token", "", fiber.StatusUnauthorized},
		{"bad format", "Token abc", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + sign(t, "lain", jwt.MapClaims{"id": "9", "role": "admin", "exp": exp}), fiber.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, testSecret, jwt.MapClaims{"id": "9", "role": "admin", "exp": time.Now().Add(-time.Hour).Unix()}), fiber.StatusUnauthorized},
		{"missing id", "Bearer " + sign(t, testSecret, jwt.MapClaims{"role": "admin", "exp": exp}), fiber.StatusUnauthorized},
		{"teacher forbidden", "Bearer " + sign(t, testSecret, jwt.MapClaims{"id": "9", "role": "teacher", "exp": exp}), fiber.StatusForbidden},
		{"no role", "Bearer " + sign(t, testSecret, jwt.MapClaims{"id": "9", "exp": exp}), fiber.StatusUnauthorized},
		{"admin ok", "Bearer " + sign(t, testSecret, jwt.MapClaims{"id": "9", "role": "admin", "exp": exp}), fiber.StatusOK},
		{"numeric id ok", "bearer  " + sign(t, testSecret, jwt.MapClaims{"id": 9, "role": "Owner", "exp": exp}), fiber.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, call(t, app, tc.header))
		})
	}
}

func TestAuthJWT_CookieFallback(t *testing.T) {
	app := newApp()
	tok := sign(t, testSecret, jwt.MapClaims{"id": "9", "role": "admin", "exp": time.Now().Add(time.Hour).Unix()})

	req := httptest.NewRequest(http.MethodDelete, "/api/a/classes/5", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tok})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthJWT_EmptySecretPanics(t *testing.T) {
	assert.Panics(t, func() { AuthJWT(AuthJWTOpts{}) })
}
