package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"urbanbean/internal/store"
)

func TestRootMessage(t *testing.T) {
	app := newTestApp(t, store.NewMemoryStore())
	code, body := do(t, app, "GET", "/", "")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	got := decodeJSON[map[string]string](t, body)
	if got["message"] != "Urban Bean Coffee Roasters API running" {
		t.Fatalf("unexpected root body: %s", body)
	}
}

func TestProductsCreateAndList(t *testing.T) {
	app := newTestApp(t, store.NewMemoryStore())

	code, body := do(t, app, "POST", "/api/products",
		`{"title":"Ethiopia Yirgacheffe","price":14.5,"categories":["single-origin","light"]}`)
	if code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d body=%s", code, body)
	}
	if id := decodeJSON[string](t, body); id == "" {
		t.Fatal("create returned empty id")
	}
	do(t, app, "POST", "/api/products", `{"title":"House Blend","price":11,"categories":["blend"]}`)
	do(t, app, "POST", "/api/products", `{"title":"Old Crop","price":9,"in_stock":false,"categories":["light"]}`)

	code, body = do(t, app, "GET", "/api/products", "")
	if code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", code)
	}
	all := decodeJSON[[]map[string]any](t, body)
	if len(all) != 2 {
		t.Fatalf("expected 2 in-stock products, got %d: %s", len(all), body)
	}
	if all[0]["title"] != "Ethiopia Yirgacheffe" || all[0]["weight_grams"] != float64(340) {
		t.Fatalf("unexpected first product: %v", all[0])
	}
	if strings.Contains(string(body), "_id") {
		t.Fatalf("store identifier leaked: %s", body)
	}

	_, body = do(t, app, "GET", "/api/products?category=light", "")
	light := decodeJSON[[]map[string]any](t, body)
	if len(light) != 1 || light[0]["title"] != "Ethiopia Yirgacheffe" {
		t.Fatalf("category filter: %s", body)
	}

	_, body = do(t, app, "GET", "/api/products?category=decaf", "")
	if strings.TrimSpace(string(body)) != "[]" {
		t.Fatalf("expected empty list, got %s", body)
	}
}

func TestProductValidationEnumeratesFields(t *testing.T) {
	st := store.NewMemoryStore()
	app := newTestApp(t, st)

	code, body := do(t, app, "POST", "/api/products", `{"price":-1,"image":"nope"}`)
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", code, body)
	}
	got := decodeJSON[struct {
		Error  string `json:"error"`
		Fields []struct {
			Field  string `json:"field"`
			Reason string `json:"reason"`
		} `json:"fields"`
	}](t, body)
	seen := map[string]bool{}
	for _, f := range got.Fields {
		seen[f.Field] = true
	}
	for _, want := range []string{"title", "price", "image"} {
		if !seen[want] {
			t.Fatalf("missing field %q in %s", want, body)
		}
	}

	docs, _ := st.Find(t.Context(), "coffeeproduct", nil)
	if len(docs) != 0 {
		t.Fatalf("invalid product was written: %v", docs)
	}
}

func TestMalformedBodies(t *testing.T) {
	app := newTestApp(t, store.NewMemoryStore())
	for _, body := range []string{`{"title":`, `[1,2]`, `"text"`} {
		code, resp := do(t, app, "POST", "/api/products", body)
		if code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d resp=%s", body, code, resp)
		}
	}
}

func TestCategoryTooLong(t *testing.T) {
	app := newTestApp(t, store.NewMemoryStore())
	long := strings.Repeat("x", 65)
	for _, path := range []string{"/api/products?category=" + long, "/api/articles?category=" + long} {
		code, body := do(t, app, "GET", path, "")
		if code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, code)
		}
		if got := decodeJSON[map[string]string](t, body)["error"]; got != "category is too long" {
			t.Fatalf("%s: unexpected body %s", path, body)
		}
	}
}

func TestArticlesCategoryIsExact(t *testing.T) {
	app := newTestApp(t, store.NewMemoryStore())
	do(t, app, "POST", "/api/articles", `{"title":"Pour over","slug":"pour-over","content":"Bloom first.","category":"Brewing"}`)
	do(t, app, "POST", "/api/articles", `{"title":"Origins","slug":"origins","content":"Altitude matters."}`)

	_, body := do(t, app, "GET", "/api/articles", "")
	if all := decodeJSON[[]map[string]any](t, body); len(all) != 2 {
		t.Fatalf("expected 2 articles, got %s", body)
	}
	_, body = do(t, app, "GET", "/api/articles?category=Brewing", "")
	if got := decodeJSON[[]map[string]any](t, body); len(got) != 1 || got[0]["slug"] != "pour-over" {
		t.Fatalf("exact category: %s", body)
	}
	_, body = do(t, app, "GET", "/api/articles?category=brewing", "")
	if got := decodeJSON[[]map[string]any](t, body); len(got) != 0 {
		t.Fatalf("category match should be case-sensitive: %s", body)
	}
}

func TestArticleMissingContent(t *testing.T) {
	app := newTestApp(t, store.NewMemoryStore())
	code, body := do(t, app, "POST", "/api/articles", `{"title":"Draft","slug":"draft"}`)
	if code != http.StatusUnprocessableEntity || !strings.Contains(string(body), `"content"`) {
		t.Fatalf("expected 422 naming content, got %d body=%s", code, body)
	}
}
