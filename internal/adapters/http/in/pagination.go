package in

import "github.com/gofiber/fiber/v2"

const defaultLimit = 20

// limitOffset reads the "limit"/"offset" query params, defaulting limit
// to defaultLimit when unset or non-positive.
func limitOffset(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}

	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
