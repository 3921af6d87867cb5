package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Accessors over Locals populated by the auth middleware.

func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Missing user ID in token")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	return id, nil
}

func GetRole(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals("userRole").(string)
	if !ok || v == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Missing role in token")
	}
	return v, nil
}

// GetParentID returns the parent profile ID carried by parent account tokens.
func GetParentID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("parent_id").(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No parent profile attached to this account")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Invalid parent profile ID")
	}
	return id, nil
}
