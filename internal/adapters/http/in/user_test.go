package in

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/domain/user"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserTestHandler() (*UserHandler, *inmemory.UserRepository) {
	repo := inmemory.NewUserRepository()
	service := services.NewUserService(repo)

	return NewUserHandler(service), repo
}

func newUserTestApp(h *UserHandler) *fiber.App {
	app := fiber.New()
	app.Get("/api/users", h.FindAll)
	app.Get("/api/users/:id", h.FindByID)
	app.Post("/api/users", h.Create)
	app.Patch("/api/users/:id", h.Update)
	app.Delete("/api/users/:id", h.Delete)

	return app
}

func TestUserHandler_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid payload returns 201",
			body:           `{"username":"alice","email":"alice@example.com"}`,
			expectedStatus: fiber.StatusCreated,
		},
		{
			name:           "invalid email returns 422",
			body:           `{"username":"alice","email":"not-an-email"}`,
			expectedStatus: fiber.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newUserTestHandler()
			app := newUserTestApp(h)

			req := httptest.NewRequest("POST", "/api/users", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestUserHandler_PartialUpdate(t *testing.T) {
	h, repo := newUserTestHandler()
	app := newUserTestApp(h)

	email, err := user.New(user.CreateInput{Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	created, err := repo.Create(t.Context(), *email)
	require.NoError(t, err)

	req := httptest.NewRequest("PATCH", "/api/users/"+created.ID, bytes.NewBufferString(`{"username":"alice2"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var updated user.User
	require.NoError(t, json.Unmarshal(body, &updated))
	assert.Equal(t, "alice2", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email.String())
}

func TestUserHandler_Delete(t *testing.T) {
	h, repo := newUserTestHandler()
	app := newUserTestApp(h)

	email, err := user.New(user.CreateInput{Username: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	created, err := repo.Create(t.Context(), *email)
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/users/"+created.ID, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	getReq := httptest.NewRequest("GET", "/api/users/"+created.ID, nil)
	getResp, err := app.Test(getReq)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, getResp.StatusCode)
}
