package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bobmcallan/insurancebuddy/internal/models"
)

func (e *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, http.MethodGet, path, nil, "")
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	e.server.Handler().ServeHTTP(rr, req)
	return rr
}

func assertHTML(t *testing.T, rr *httptest.ResponseRecorder, status int, fragments ...string) {
	t.Helper()
	if rr.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rr.Body.String()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Errorf("body missing %q", f)
		}
	}
}

func TestHomePage(t *testing.T) {
	env := newTestEnv(t)
	def := models.DefaultHomePageContent()

	assertHTML(t, env.get(t, "/"), http.StatusOK, def.HeroHeadline, "Compare Plans", "Students")
}

func TestHomePage_ServesWithoutCatalog(t *testing.T) {
	env := newTestEnv(t, withoutCatalog())
	assertHTML(t, env.get(t, "/"), http.StatusOK)
}

func TestUnknownPath_NotFoundPage(t *testing.T) {
	env := newTestEnv(t)
	assertHTML(t, env.get(t, "/nope"), http.StatusNotFound, "Page not found.")
}

func TestAboutPage(t *testing.T) {
	env := newTestEnv(t)
	assertHTML(t, env.get(t, "/about/"), http.StatusOK, models.DefaultAboutPageContent().Headline)
}

func TestProductPage(t *testing.T) {
	env := newTestEnv(t)

	q := url.Values{"member": {"adult"}, "age": {"24"}, "city": {"New Haven"}}
	rr := env.get(t, "/product/?"+q.Encode())
	assertHTML(t, rr, http.StatusOK,
		models.DefaultProductPageContent().Headline,
		"Aetna Student Health (Yale)",
		"HUSKY A (Medicaid)",
		"Deductible: $250",
		"Side by side",
	)
	if strings.Contains(rr.Body.String(), "Cigna Global (Student)") {
		t.Error("Boston-only plan should be filtered out")
	}
	if strings.Contains(rr.Body.String(), "No plans matched") {
		t.Error("unexpected fallback notice")
	}
}

func TestProductPage_FallbackNotice(t *testing.T) {
	env := newTestEnv(t)

	// The only government plan is not offered in Boston
	q := url.Values{"member": {"government"}, "age": {"30"}, "city": {"Boston"}}
	assertHTML(t, env.get(t, "/product/?"+q.Encode()), http.StatusOK, "No plans matched")
}

func TestProductPage_CatalogUnavailable(t *testing.T) {
	env := newTestEnv(t, withoutCatalog())
	assertHTML(t, env.get(t, "/product/"), http.StatusServiceUnavailable, "Plan information is temporarily unavailable")
}

func TestContactPage_Get(t *testing.T) {
	env := newTestEnv(t)
	assertHTML(t, env.get(t, "/contact/"), http.StatusOK, "support@insurancebuddy.com", `name="message"`)
}

func TestContactPage_Submit(t *testing.T) {
	env := newTestEnv(t)

	rr := env.postForm(t, "/contact/", url.Values{
		"name": {"Priya"}, "email": {"priya@example.com"}, "message": {"Does HUSKY cover dental?"},
	})
	assertHTML(t, rr, http.StatusOK, "Thanks for reaching out!")

	inquiries, err := env.app.ContentService.Inquiries(t.Context(), 10)
	if err != nil {
		t.Fatalf("Inquiries: %v", err)
	}
	if len(inquiries) != 1 || inquiries[0].Email != "priya@example.com" {
		t.Errorf("unexpected inquiries %+v", inquiries)
	}
}

func TestContactPage_SubmitInvalid(t *testing.T) {
	env := newTestEnv(t)

	rr := env.postForm(t, "/contact/", url.Values{"name": {"Priya"}, "email": {"not-an-email"}, "message": {"hi"}})
	assertHTML(t, rr, http.StatusBadRequest, "email must be a valid email address", `value="Priya"`)
	if strings.Contains(rr.Body.String(), "Thanks for reaching out!") {
		t.Error("invalid submission should not confirm")
	}
}

func TestContactPage_RateLimited(t *testing.T) {
	env := newTestEnv(t, withContactRate(1, 1))

	form := url.Values{"name": {"Priya"}, "email": {"priya@example.com"}, "message": {"hello"}}
	assertHTML(t, env.postForm(t, "/contact/", form), http.StatusOK)
	assertHTML(t, env.postForm(t, "/contact/", form), http.StatusTooManyRequests, "Too many messages")
}

func TestStaticAssets(t *testing.T) {
	env := newTestEnv(t)

	rr := env.get(t, "/static/site.css")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestParsePages(t *testing.T) {
	pages, err := parsePages()
	if err != nil {
		t.Fatalf("parsePages: %v", err)
	}
	for _, name := range pageNames {
		if pages[name] == nil {
			t.Errorf("page %q not parsed", name)
		}
	}
}
