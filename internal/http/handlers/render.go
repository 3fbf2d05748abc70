package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// queryAll collects every occurrence of a repeatable query param
// (?category=a&category=b), trimmed, empties dropped.
func queryAll(c *fiber.Ctx, key string) []string {
	var out []string
	for _, b := range c.Context().QueryArgs().PeekMulti(key) {
		if v := strings.TrimSpace(string(b)); v != "" {
			out = append(out, v)
		}
	}
	return out
}
