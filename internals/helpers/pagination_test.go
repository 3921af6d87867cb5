package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func resolveFor(t *testing.T, target string) Paging {
	t.Helper()
	app := fiber.New()
	var got Paging
	app.Get("/items", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, 20, 100)
		return c.SendStatus(fiber.StatusOK)
	})
	if _, err := app.Test(httptest.NewRequest("GET", target, nil)); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return got
}

func TestResolvePaging(t *testing.T) {
	cases := []struct {
		name    string
		target  string
		page    int
		perPage int
		offset  int
	}{
		{"defaults", "/items", 1, 20, 0},
		{"explicit", "/items?page=3&per_page=10", 3, 10, 20},
		{"limit alias", "/items?limit=15", 1, 15, 0},
		{"per_page wins over limit", "/items?per_page=5&limit=50", 1, 5, 0},
		{"page clamped", "/items?page=0", 1, 20, 0},
		{"negative page clamped", "/items?page=-2", 1, 20, 0},
		{"per_page capped", "/items?per_page=500", 1, 100, 0},
		{"garbage falls back", "/items?page=abc&per_page=xyz", 1, 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := resolveFor(t, tc.target)
			if got.Page != tc.page || got.PerPage != tc.perPage || got.Offset != tc.offset {
				t.Fatalf("got page=%d perPage=%d offset=%d, want %d/%d/%d",
					got.Page, got.PerPage, got.Offset, tc.page, tc.perPage, tc.offset)
			}
		})
	}
}

func TestBuildPagination(t *testing.T) {
	p := BuildPagination(45, 2, 20)
	if p.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("page 2 of 3 should have next and prev: %+v", p)
	}

	p = BuildPagination(0, 1, 20)
	if p.TotalPages != 1 {
		t.Errorf("empty result should still report 1 page, got %d", p.TotalPages)
	}
	if p.HasNext || p.HasPrev {
		t.Errorf("single page should have no next/prev: %+v", p)
	}

	p = BuildPagination(40, 2, 20)
	if p.TotalPages != 2 || p.HasNext {
		t.Errorf("exact fit: %+v", p)
	}
}
