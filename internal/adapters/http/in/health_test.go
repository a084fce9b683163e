package in

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_LiveAndReady(t *testing.T) {
	h := NewHealthHandler(nil, nil, nil, nil, nil)

	app := fiber.New()
	app.Get("/health/live", h.Live)
	app.Get("/health/ready", h.Ready)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest("GET", path, nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
}

func TestHealthHandler_ReadyReportsNotConfiguredWithNoDependencies(t *testing.T) {
	h := NewHealthHandler(nil, nil, nil, nil, nil)

	app := fiber.New()
	app.Get("/health/ready", h.Ready)

	req := httptest.NewRequest("GET", "/health/ready", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "not_configured", body.Dependencies["postgres"])
	assert.Equal(t, "not_configured", body.Dependencies["redis"])
	assert.Equal(t, "not_configured", body.Dependencies["rabbitmq"])
	assert.Equal(t, "not_configured", body.Dependencies["oidc"])
}
