package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/features/school/deletions/model"
	"schoolku_backend/internals/features/school/deletions/testutil"
)

func token(t *testing.T, role string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "1",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(configs.JWTSecret))
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestSetupRoutes(t *testing.T) {
	configs.JWTSecret = "rahasia-test"
	configs.Deletion = configs.DeletionConfig{TxTimeout: 5 * time.Second, BatchSize: 100}

	db := testutil.NewDB(t)
	testutil.Create(t, db, &model.RoomModel{ID: 1, Name: "Sala 1"})

	app := fiber.New()
	SetupRoutes(app, db)

	send := func(method, path, auth string) int {
		req := httptest.NewRequest(method, path, nil)
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, send(http.MethodGet, "/health", ""))
	assert.Equal(t, fiber.StatusUnauthorized, send(http.MethodDelete, "/api/a/rooms/1", ""))
	assert.Equal(t, fiber.StatusForbidden, send(http.MethodDelete, "/api/a/rooms/1", token(t, "teacher")))
	assert.EqualValues(t, 1, testutil.Count(t, db, "rooms"))

	assert.Equal(t, fiber.StatusOK, send(http.MethodGet, "/api/a/rooms/1/delete-preview", token(t, "admin")))
	assert.Equal(t, fiber.StatusOK, send(http.MethodDelete, "/api/a/rooms/1", token(t, "admin")))
	assert.Zero(t, testutil.Count(t, db, "rooms"))
	assert.Equal(t, fiber.StatusNotFound, send(http.MethodDelete, "/api/a/rooms/1", token(t, "owner")))
}
