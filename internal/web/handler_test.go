package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/shopspring/decimal"

	"github.com/bundaravattey/ogani-shop-backend/internal/blog"
	"github.com/bundaravattey/ogani-shop-backend/internal/category"
	"github.com/bundaravattey/ogani-shop-backend/internal/config"
	"github.com/bundaravattey/ogani-shop-backend/internal/order"
	"github.com/bundaravattey/ogani-shop-backend/internal/payment"
	"github.com/bundaravattey/ogani-shop-backend/internal/product"
	"github.com/bundaravattey/ogani-shop-backend/internal/user"
)

func makeWebApp() *fiber.App {
	products := []product.Product{
		{ID: 1, Name: "Beef Steak", Slug: "beef-steak", CategoryID: 1, Price: decimal.RequireFromString("50.00")},
		{ID: 2, Name: "Broccoli", Slug: "broccoli", CategoryID: 2, Price: decimal.RequireFromString("5.00")},
	}

	h := NewHandler(
		category.NewService(category.NewInMemoryRepository(nil)),
		product.NewService(product.NewInMemoryRepository(products)),
		blog.NewService(blog.NewInMemoryRepository(nil)),
		user.NewService(user.NewInMemoryRepository(nil)),
		order.NewService(order.NewInMemoryRepository(products)),
		payment.NewPayWayGateway(config.PayWay{BaseURL: "https://link.payway.com.kh/aba"}),
		session.New(),
	)

	app := fiber.New()
	h.RegisterRoutes(app)
	return app
}

// signUp registers a user through the web form and returns the session cookies.
func signUp(t *testing.T, app *fiber.App) []*http.Cookie {
	t.Helper()

	form := url.Values{}
	form.Set("username", "dara")
	form.Set("email", "dara@example.com")
	form.Set("password", "secret123")
	form.Set("confirm_password", "secret123")

	req := httptest.NewRequest("POST", "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("register request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect after register, got %d", res.StatusCode)
	}
	cookies := res.Cookies()
	if len(cookies) == 0 {
		t.Fatalf("expected a session cookie after register")
	}
	return cookies
}

func withCookies(req *http.Request, cookies []*http.Cookie) *http.Request {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestCartRoutes_RequireLogin(t *testing.T) {
	app := makeWebApp()

	res, _ := app.Test(httptest.NewRequest("GET", "/cart", nil))
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect to login, got %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestAddToCart_RedirectsBackToProduct(t *testing.T) {
	app := makeWebApp()
	cookies := signUp(t, app)

	form := url.Values{}
	form.Set("quantity", "2")
	req := httptest.NewRequest("POST", "/add-to-cart/beef-steak", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res, _ := app.Test(withCookies(req, cookies))
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect after add, got %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); loc != "/product/beef-steak" {
		t.Fatalf("expected redirect to product page, got %q", loc)
	}

	// unknown slug is a 404, not a redirect
	req2 := httptest.NewRequest("POST", "/add-to-cart/no-such-product", nil)
	res2, _ := app.Test(withCookies(req2, cookies))
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res2.StatusCode)
	}
}

func TestUpdateCartItem_AjaxContract(t *testing.T) {
	app := makeWebApp()
	cookies := signUp(t, app)

	form := url.Values{}
	form.Set("quantity", "2")
	add := httptest.NewRequest("POST", "/add-to-cart/beef-steak", strings.NewReader(form.Encode()))
	add.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	app.Test(withCookies(add, cookies))

	// quantity change returns the new line and cart totals
	upd := url.Values{}
	upd.Set("quantity", "3")
	req := httptest.NewRequest("POST", "/update-cart-item/1", strings.NewReader(upd.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	res, _ := app.Test(withCookies(req, cookies))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for ajax update, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	for _, want := range []string{`"success":true`, `"quantity":3`, `"item_total":150`, `"cart_total":150`} {
		if !strings.Contains(body, want) {
			t.Fatalf("ajax response missing %s: %s", want, body)
		}
	}

	// quantity zero removes the line
	zero := url.Values{}
	zero.Set("quantity", "0")
	req2 := httptest.NewRequest("POST", "/update-cart-item/1", strings.NewReader(zero.Encode()))
	req2.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req2.Header.Set("X-Requested-With", "XMLHttpRequest")
	res2, _ := app.Test(withCookies(req2, cookies))
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for ajax removal, got %d", res2.StatusCode)
	}
	b2, _ := io.ReadAll(res2.Body)
	body2 := string(b2)
	for _, want := range []string{`"success":true`, `"removed":true`, `"cart_total":0`} {
		if !strings.Contains(body2, want) {
			t.Fatalf("ajax removal response missing %s: %s", want, body2)
		}
	}

	// updating the now-missing item is a 404 over ajax
	req3 := httptest.NewRequest("POST", "/update-cart-item/1", strings.NewReader(upd.Encode()))
	req3.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req3.Header.Set("X-Requested-With", "XMLHttpRequest")
	res3, _ := app.Test(withCookies(req3, cookies))
	if res3.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for missing item, got %d", res3.StatusCode)
	}
}

func TestCheckout_KHQRRedirectsToPaymentPage(t *testing.T) {
	app := makeWebApp()
	cookies := signUp(t, app)

	form := url.Values{}
	form.Set("quantity", "1")
	add := httptest.NewRequest("POST", "/add-to-cart/broccoli", strings.NewReader(form.Encode()))
	add.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	app.Test(withCookies(add, cookies))

	billing := url.Values{}
	billing.Set("full_name", "Sok Dara")
	billing.Set("phone", "012345678")
	billing.Set("address", "St 271")
	billing.Set("city", "Phnom Penh")
	billing.Set("province", "Phnom Penh")
	billing.Set("payment_method", "khqr")
	req := httptest.NewRequest("POST", "/checkout", strings.NewReader(billing.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res, _ := app.Test(withCookies(req, cookies))
	if res.StatusCode != fiber.StatusFound {
		t.Fatalf("expected redirect after checkout, got %d", res.StatusCode)
	}
	if loc := res.Header.Get("Location"); !strings.HasPrefix(loc, "/khqr-payment/") {
		t.Fatalf("expected redirect to payment page, got %q", loc)
	}
}
