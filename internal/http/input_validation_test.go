package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/jmoiron/sqlx"

	"kicktwin/internal/config"
	"kicktwin/internal/http/handlers"
	"kicktwin/internal/repos"
)

// Minimal app setup for handler tests
func newTestApp(t *testing.T) (*fiber.App, *sqlx.DB) {
	t.Helper()
	cfg := config.Config{DBDSN: ":memory:"}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	engine := html.New("../../web/templates", ".html")
	app := fiber.New(fiber.Config{Views: engine})
	app.Server().MaxRequestBodySize = 1 << 20
	app.Use(requestid.New())
	app.Use(limiter.New(limiter.Config{Max: 100, Expiration: 0}))
	app.Use(csrf.New(csrf.Config{KeyLookup: "form:csrf", CookieName: "csrf_", CookieSameSite: "Lax"}))

	deps := handlers.NewDeps(db, cfg)
	app.Get("/", deps.CatalogHandler.Home)
	app.Get("/search", deps.SearchHandler.Search)
	app.Get("/product/:id", deps.ProductHandler.Detail)
	app.Get("/cart", deps.CartHandler.View)
	app.Post("/cart", deps.CartHandler.Add)
	app.Post("/cart/update", deps.CartHandler.Update)
	app.Get("/checkout", deps.CheckoutHandler.View)
	app.Post("/checkout/contact", deps.CheckoutHandler.Contact)
	app.Post("/checkout/address", deps.CheckoutHandler.Address)
	app.Post("/checkout/back", deps.CheckoutHandler.Back)
	app.Post("/orders", deps.CheckoutHandler.Place)
	app.Get("/order/:id", deps.OrderHandler.View)
	app.Get("/track", deps.TrackingHandler.Page)
	api := app.Group("/api/v1")
	api.Get("/track", deps.TrackingHandler.Check)
	api.Get("/loyalty", deps.LoyaltyHandler.StatusJSON)

	return app, db
}

func extractCookie(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

// csrfToken primes the middleware with a GET and returns the cookie token.
func csrfToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatal(err)
	}
	tok := extractCookie(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

func postForm(t *testing.T, app *fiber.App, path, body string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	return resp
}

func TestValidationBadInputs(t *testing.T) {
	app, _ := newTestApp(t)
	tok := csrfToken(t, app)
	csrfCookie := &http.Cookie{Name: "csrf_", Value: tok}

	// search with invalid chars
	resp, err := app.Test(httptest.NewRequest("GET", "/search?q=%3Cscript%3E", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad search expected 400, got %d", resp.StatusCode)
	}

	// unknown catalog filter
	resp, err = app.Test(httptest.NewRequest("GET", "/?kind=fake", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad kind expected 400, got %d", resp.StatusCode)
	}

	// cart add with out-of-range size
	resp = postForm(t, app, "/cart", "csrf="+tok+"&productId=1&size=99", csrfCookie)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad size expected 400, got %d", resp.StatusCode)
	}

	// cart add with non-numeric product id
	resp = postForm(t, app, "/cart", "csrf="+tok+"&productId=abc&size=42", csrfCookie)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad productId expected 400, got %d", resp.StatusCode)
	}

	// malformed tracking identifier on the JSON endpoint
	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/track?id=%3Cscript%3E", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad tracking id expected 400, got %d", resp.StatusCode)
	}
}

func TestTrackingJSONEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	// seeded demo order resolves
	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/track?id=ORD-2024-001234", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	if !strings.Contains(s, "TR123456789RU") || !strings.Contains(s, "in_transit") {
		t.Fatalf("unexpected tracking payload: %s", s)
	}

	// unknown identifier is a distinguishable 404
	resp, err = app.Test(httptest.NewRequest("GET", "/api/v1/track?id=ORD-0000-NOPE", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown order expected 404, got %d", resp.StatusCode)
	}
}

// Templates auto-escape untrusted text
func TestTemplateAutoEscape(t *testing.T) {
	app, db := newTestApp(t)
	_, _ = db.Exec(`
		INSERT INTO products(id,name,brand,kind,price,similarity,image)
		VALUES(99,'<script>alert(1)</script>','Nike','replica',999,90,'x.jpg')
	`)

	resp, err := app.Test(httptest.NewRequest("GET", "/product/99", nil))
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	s := string(body)
	if strings.Contains(s, "<script>alert(1)</script>") {
		t.Fatalf("found unescaped script tag in output")
	}
	if !strings.Contains(s, "&lt;script&gt;alert(1)&lt;/script&gt;") {
		t.Fatalf("escaped script not found; output=%s", s)
	}
}
