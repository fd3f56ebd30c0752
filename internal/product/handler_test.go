package product

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func makeProductApp() *fiber.App {
	repo := NewInMemoryRepository([]Product{
		{ID: 1, Name: "Beef Steak", Slug: "beef-steak", CategoryID: 1, Price: decimal.RequireFromString("50.00")},
		{ID: 2, Name: "Broccoli", Slug: "broccoli", CategoryID: 2, Price: decimal.RequireFromString("5.00")},
		{ID: 3, Name: "Carrots", Slug: "carrots", CategoryID: 2, Price: decimal.RequireFromString("3.00")},
	})
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterPublicRoutes(app)
	return app
}

func TestGetProducts(t *testing.T) {
	app := makeProductApp()

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "beef-steak") || !strings.Contains(string(b), "carrots") {
		t.Fatalf("unexpected body: %s", string(b))
	}
}

func TestGetProductsByCategory(t *testing.T) {
	app := makeProductApp()

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products/category/2", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if strings.Contains(body, "Beef Steak") {
		t.Fatalf("category filter leaked other categories: %s", body)
	}
	if !strings.Contains(body, "Broccoli") || !strings.Contains(body, "Carrots") {
		t.Fatalf("expected category 2 products, got %s", body)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	app := makeProductApp()

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/products/999", nil))
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}
