package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Walks the whole storefront flow through the form endpoints: add to cart,
// three checkout steps, place, confirmation page.
func TestCheckoutFlowOverHTTP(t *testing.T) {
	app, _ := newTestApp(t)
	tok := csrfToken(t, app)
	csrfCookie := &http.Cookie{Name: "csrf_", Value: tok}

	// add product 1 (45000) in size 42
	resp := postForm(t, app, "/cart", "csrf="+tok+"&productId=1&size=42", csrfCookie)
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("cart add expected redirect, got %d", resp.StatusCode)
	}
	sid := extractCookie(resp, "sid")
	if sid == "" {
		t.Fatal("sid not set after cart add")
	}
	sidCookie := &http.Cookie{Name: "sid", Value: sid}

	// repeat add merges the line
	postForm(t, app, "/cart", "csrf="+tok+"&productId=1&size=42", csrfCookie, sidCookie)
	cartPage := getPage(t, app, "/cart", sidCookie)
	if !strings.Contains(cartPage, "90000") {
		t.Fatalf("cart should total 90000 after merged add, got page: %s", cartPage)
	}

	// step 1 renders first
	page := getPage(t, app, "/checkout", sidCookie)
	if !strings.Contains(page, "step 1 of 3") {
		t.Fatalf("expected step 1, got: %s", page)
	}

	// incomplete contact form keeps step 1
	postForm(t, app, "/checkout/contact", "csrf="+tok+"&name=Tester&phone=&email=", csrfCookie, sidCookie)
	page = getPage(t, app, "/checkout", sidCookie)
	if !strings.Contains(page, "step 1 of 3") {
		t.Fatalf("incomplete contact must stay on step 1, got: %s", page)
	}

	form := "csrf=" + tok + "&name=Tester&phone=%2B7+999+000-00-00&email=t%40e.com"
	postForm(t, app, "/checkout/contact", form, csrfCookie, sidCookie)
	page = getPage(t, app, "/checkout", sidCookie)
	if !strings.Contains(page, "step 2 of 3") {
		t.Fatalf("expected step 2, got: %s", page)
	}

	// empty address keeps step 2
	postForm(t, app, "/checkout/address", "csrf="+tok+"&city=Moscow&address=&delivery=express", csrfCookie, sidCookie)
	page = getPage(t, app, "/checkout", sidCookie)
	if !strings.Contains(page, "step 2 of 3") {
		t.Fatalf("empty address must stay on step 2, got: %s", page)
	}

	postForm(t, app, "/checkout/address", "csrf="+tok+"&city=Moscow&address=Lenina+st.+1&delivery=express", csrfCookie, sidCookie)
	page = getPage(t, app, "/checkout", sidCookie)
	if !strings.Contains(page, "step 3 of 3") {
		t.Fatalf("expected step 3, got: %s", page)
	}
	// review shows express surcharge applied to the grand total
	if !strings.Contains(page, "91500") {
		t.Fatalf("expected final total 91500 on review, got: %s", page)
	}

	resp = postForm(t, app, "/orders", "csrf="+tok+"&payment=card", csrfCookie, sidCookie)
	if resp.StatusCode != http.StatusFound {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("place expected redirect, got %d body=%s", resp.StatusCode, body)
	}
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/order/") {
		t.Fatalf("expected confirmation redirect, got %q", loc)
	}

	// confirmation is visible to the owning session
	page = getPage(t, app, loc, sidCookie)
	if !strings.Contains(page, "91500") {
		t.Fatalf("confirmation should show the total, got: %s", page)
	}

	// cart was cleared by the submit
	cartPage = getPage(t, app, "/cart", sidCookie)
	if !strings.Contains(cartPage, "Cart is empty") {
		t.Fatalf("cart should be empty after placing, got: %s", cartPage)
	}

	// other sessions get the same 404 as a missing order
	req := httptest.NewRequest("GET", loc, nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "someone-else"})
	resp2, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign session expected 404, got %d", resp2.StatusCode)
	}
}

func TestCheckoutSubmitBeforeStepsFails(t *testing.T) {
	app, _ := newTestApp(t)
	tok := csrfToken(t, app)
	csrfCookie := &http.Cookie{Name: "csrf_", Value: tok}

	resp := postForm(t, app, "/cart", "csrf="+tok+"&productId=2&size=40", csrfCookie)
	sid := extractCookie(resp, "sid")
	sidCookie := &http.Cookie{Name: "sid", Value: sid}

	resp = postForm(t, app, "/orders", "csrf="+tok+"&payment=card", csrfCookie, sidCookie)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("submit before walking steps expected 400, got %d", resp.StatusCode)
	}
}

func getPage(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) string {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	return string(body)
}
