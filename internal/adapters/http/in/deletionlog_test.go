package in

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/catalogsvc/catalog/internal/adapters/inmemory"
	"github.com/catalogsvc/catalog/internal/domain/deletionlog"
	"github.com/catalogsvc/catalog/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletionLogHandler_FindAllScopedByProduct(t *testing.T) {
	repo := inmemory.NewDeletionLogRepository()
	service := services.NewDeletionLogService(repo)
	h := NewDeletionLogHandler(service)

	_, err := repo.Append(t.Context(), deletionlog.Entry{ProductID: "p1", Kind: deletionlog.KindPhysical, Actor: "alice", Reason: "obsolete"})
	require.NoError(t, err)

	_, err = repo.Append(t.Context(), deletionlog.Entry{ProductID: "p2", Kind: deletionlog.KindPhysical, Actor: "bob", Reason: "duplicate"})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/api/deletion-log", h.FindAll)

	req := httptest.NewRequest("GET", "/api/deletion-log?productId=p1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var entries []deletionlog.Entry
	require.NoError(t, json.Unmarshal(body, &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "p1", entries[0].ProductID)
}

func TestDeletionLogHandler_FindAllUnscoped(t *testing.T) {
	repo := inmemory.NewDeletionLogRepository()
	service := services.NewDeletionLogService(repo)
	h := NewDeletionLogHandler(service)

	_, err := repo.Append(t.Context(), deletionlog.Entry{ProductID: "p1", Kind: deletionlog.KindPhysical, Actor: "alice", Reason: "obsolete"})
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/api/deletion-log", h.FindAll)

	req := httptest.NewRequest("GET", "/api/deletion-log", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var entries []deletionlog.Entry
	require.NoError(t, json.Unmarshal(body, &entries))
	assert.Len(t, entries, 1)
}
