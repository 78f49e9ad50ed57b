// README: HTTP tests for the quote endpoints and domain error mapping.
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"greentours/internal/config"
	apihttp "greentours/internal/http"
	"greentours/internal/infra"
	"greentours/internal/modules/availability"
	"greentours/internal/modules/catalog"
	"greentours/internal/modules/holiday"
	"greentours/internal/modules/pricing"
	"greentours/internal/modules/search"
)

// newTestHandler wires the full router against the seed dataset, with no
// Redis, Postgres, or external integrations.
func newTestHandler(verifier infra.TokenVerifier) http.Handler {
	gin.SetMode(gin.TestMode)
	cat := catalog.New(catalog.SeedZones(), catalog.SeedRoutes())
	cal := holiday.NewCalendar(holiday.Seed())
	rules := pricing.SeedRules()
	p := pricing.NewService(cat, rules, cal, nil, config.QuoteConfig{ValidFor: 24 * time.Hour})
	a := availability.NewService(cat, p, 60)
	se := search.NewService(cat, p, a)
	srv := apihttp.NewServer(apihttp.ServerDeps{
		Catalog:      cat,
		Pricing:      p,
		Availability: a,
		Search:       se,
		Rules:        rules,
		Holidays:     holiday.Seed(),
		Verifier:     verifier,
		CORSOrigin:   "https://timagreentours.com",
	})
	return srv.Routes()
}

func doJSON(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func validQuoteBody() map[string]any {
	return map[string]any{
		"routeId":     "nadi-airport-denarau",
		"serviceType": "private",
		"passengers":  2,
		"date":        "2026-03-10",
		"time":        "14:00",
	}
}

func TestQuoteCreate_OK(t *testing.T) {
	h := newTestHandler(nil)
	w := doJSON(h, http.MethodPost, "/api/quotes", validQuoteBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var quote struct {
		ID    string `json:"id"`
		Total struct {
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		} `json:"total"`
		Breakdown []string `json:"breakdown"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if quote.ID == "" {
		t.Error("expected a quote id")
	}
	if quote.Total.Amount != 8500 || quote.Total.Currency != "FJD" {
		t.Errorf("total = %d %s, want 8500 FJD", quote.Total.Amount, quote.Total.Currency)
	}
	if len(quote.Breakdown) == 0 {
		t.Error("expected a human-readable breakdown")
	}
}

func TestQuoteCreate_Validation(t *testing.T) {
	mutate := func(key string, value any) map[string]any {
		b := validQuoteBody()
		b[key] = value
		return b
	}
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing routeId", mutate("routeId", "")},
		{"missing date", mutate("date", "")},
		{"missing time", mutate("time", "")},
		{"unknown service type", mutate("serviceType", "luxury")},
		{"zero passengers", mutate("passengers", 0)},
		{"too many passengers", mutate("passengers", 9)},
		{"negative luggage", mutate("luggage", -1)},
		{"negative child seats", mutate("childSeats", -2)},
		{"unsupported currency", mutate("currency", "EUR")},
	}
	h := newTestHandler(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(h, http.MethodPost, "/api/quotes", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestQuoteCreate_DomainErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]any
		wantCode int
	}{
		{
			"unknown route", map[string]any{
				"routeId": "nowhere", "serviceType": "private",
				"passengers": 2, "date": "2026-03-10", "time": "14:00",
			}, http.StatusNotFound,
		},
		{
			"service not offered", map[string]any{
				"routeId": "nadi-airport-coral-coast", "serviceType": "shared",
				"passengers": 2, "date": "2026-03-10", "time": "14:00",
			}, http.StatusConflict,
		},
		{
			"party over vehicle capacity", map[string]any{
				"routeId": "nadi-airport-denarau", "serviceType": "premium",
				"passengers": 5, "date": "2026-03-10", "time": "14:00",
			}, http.StatusUnprocessableEntity,
		},
		{
			"eligible but unpriced", map[string]any{
				"routeId": "nadi-airport-momi-bay", "serviceType": "premium",
				"passengers": 2, "date": "2026-03-10", "time": "14:00",
			}, http.StatusNotFound,
		},
		{
			"malformed date", map[string]any{
				"routeId": "nadi-airport-denarau", "serviceType": "private",
				"passengers": 2, "date": "tomorrow", "time": "14:00",
			}, http.StatusBadRequest,
		},
	}
	h := newTestHandler(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(h, http.MethodPost, "/api/quotes", tt.body)
			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestQuoteGet_NoCacheConfigured(t *testing.T) {
	h := newTestHandler(nil)
	w := doJSON(h, http.MethodGet, "/api/quotes/deadbeef", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
