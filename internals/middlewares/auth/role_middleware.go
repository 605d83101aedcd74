package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// OnlyRoles: lanjut jika role di token termasuk allowedRoles.
func OnlyRoles(customForbiddenMessage string, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok || role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		log.Printf("[GUARD] role %q ditolak untuk %s %s", role, c.Method(), c.OriginalURL())
		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return fiber.NewError(fiber.StatusForbidden, customForbiddenMessage)
	}
}
