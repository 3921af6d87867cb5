package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"preschoolku_backend/internals/features/admission/parents/dto"
)

func newBindTestApp() *fiber.App {
	app := fiber.New()
	v := validator.New()
	app.Post("/profile", func(c *fiber.Ctx) error {
		p, err := bindAndValidate[dto.ParentUpdateDTO](c, v)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "message": "ok", "data": p})
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("POST", "/profile", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, b
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	code, body := postJSON(t, newBindTestApp(), "{not json")

	if code != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
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
	if envelope.Message != "Invalid request body" {
		t.Errorf("unexpected message: %q", envelope.Message)
	}
}

func TestBindAndValidate_FieldErrors(t *testing.T) {
	longName := strings.Repeat("a", 101)
	code, body := postJSON(t, newBindTestApp(), `{"parent_full_name":"`+longName+`"}`)

	if code != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
	var envelope struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	if envelope.Success {
		t.Error("expected success=false")
	}
	if tags, ok := envelope.Errors["ParentFullName"]; !ok || len(tags) == 0 || tags[0] != "max" {
		t.Errorf("expected max tag on ParentFullName, got %v", envelope.Errors)
	}
}

func TestBindAndValidate_ValidPayload(t *testing.T) {
	code, _ := postJSON(t, newBindTestApp(), `{"parent_full_name":"Sari Dewi"}`)

	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
}
