package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsabol/oracle-moderation/pkg/config"
	"github.com/wsabol/oracle-moderation/pkg/infra/jwt"
)

func setupAuthApp(t *testing.T) (*fiber.App, jwt.Manager) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	manager := jwt.NewJwtManager(&config.ServerConfig{SecretKey: "test-secret"})
	mw := NewAdminAuthMiddleware(logger, manager)

	app := fiber.New()
	app.Use(mw.Middleware())
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app, manager
}

func TestAdminAuthMiddleware_ValidToken(t *testing.T) {
	app, manager := setupAuthApp(t)

	token, err := manager.CreateToken()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAdminAuthMiddleware_MissingHeader(t *testing.T) {
	app, _ := setupAuthApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthMiddleware_WrongFormat(t *testing.T) {
	app, manager := setupAuthApp(t)

	token, err := manager.CreateToken()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAdminAuthMiddleware_InvalidToken(t *testing.T) {
	app, _ := setupAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bogus-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
