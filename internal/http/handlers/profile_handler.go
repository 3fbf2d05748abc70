package handlers

import "github.com/gofiber/fiber/v2"

// ProfileHandler serves the static demo profile. There is no account
// system; this mirrors the storefront's mock profile tabs.
type ProfileHandler struct{}

func (h *ProfileHandler) Profile(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"name":        "Nguyễn Văn A",
			"email":       "nguyenvana@example.com",
			"phone":       "0912345678",
			"memberSince": "2024-03-15",
		},
		"orders": []fiber.Map{
			{"id": "DH-2025-0612", "date": "2025-06-12", "status": "delivered", "total": 749000},
			{"id": "DH-2025-0528", "date": "2025-05-28", "status": "delivered", "total": 299000},
		},
	})
}
