package in

import (
	"github.com/catalogsvc/catalog/internal/apperr"
	"github.com/catalogsvc/catalog/internal/deletion"
	"github.com/gofiber/fiber/v2"
)

// parseDeletionKind reads the "kind" query param (logical by default)
// that selects which deletion transition a DELETE request performs.
func parseDeletionKind(c *fiber.Ctx) (deletion.Kind, error) {
	switch c.Query("kind", string(deletion.KindLogical)) {
	case string(deletion.KindLogical):
		return deletion.KindLogical, nil
	case string(deletion.KindPhysical):
		return deletion.KindPhysical, nil
	case string(deletion.KindRestore):
		return deletion.KindRestore, nil
	default:
		return "", apperr.BadRequest("kind must be one of logical, physical, restore")
	}
}
