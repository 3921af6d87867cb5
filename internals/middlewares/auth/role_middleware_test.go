package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newRoleTestApp(role string, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	if role != "" {
		app.Use(func(c *fiber.Ctx) error {
			c.Locals("userRole", role)
			return c.Next()
		})
	}
	app.Get("/guarded", handler, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "ok"})
	})
	return app
}

func TestOnlyRoles_AllowsMatchingRole(t *testing.T) {
	app := newRoleTestApp("admission", OnlyRoles("Only admission staff may access this.", "admission"))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestOnlyRoles_DeniesMismatchedRole(t *testing.T) {
	app := newRoleTestApp("parent", OnlyRoles("Only admission staff may access this.", "admission"))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if envelope.Success {
		t.Error("expected success=false")
	}
	if envelope.Message != "Only admission staff may access this." {
		t.Errorf("unexpected message: %q", envelope.Message)
	}
}

func TestOnlyRoles_MissingRoleIsUnauthorized(t *testing.T) {
	app := newRoleTestApp("", OnlyRoles("", "admission"))

	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestOnlyRoles_MultipleAllowed(t *testing.T) {
	for _, role := range []string{"education", "teacher"} {
		app := newRoleTestApp(role, OnlyRoles("", "education", "teacher"))
		resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Errorf("role %q: expected 200, got %d", role, resp.StatusCode)
		}
	}
}
