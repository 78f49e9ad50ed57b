// README: Bench test cases: health, quote correctness spot checks,
// availability, search, and infra connectivity.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type Runner struct {
	cfg   Config
	httpc *http.Client
}

type Result struct {
	Name    string
	Status  string
	Latency time.Duration
	Note    string
}

type TestCase struct {
	Name string
	Run  func(ctx context.Context, r *Runner) Result
}

func NewRunner(cfg Config) *Runner {
	return &Runner{cfg: cfg, httpc: &http.Client{Timeout: 10 * time.Second}}
}

func (r *Runner) RunAll(ctx context.Context) []Result {
	cases := []TestCase{
		{"healthz", runHealthz},
		{"catalog_routes", runCatalogRoutes},
		{"quote_base_price", runQuoteBasePrice},
		{"quote_after_hours", runQuoteAfterHours},
		{"quote_capacity_rejected", runQuoteCapacityRejected},
		{"availability_weekday", runAvailabilityWeekday},
		{"search_from_airport", runSearchFromAirport},
		{"db_ping", runDBPing},
		{"redis_ping", runRedisPing},
	}

	results := make([]Result, 0, len(cases))
	for _, tc := range cases {
		start := time.Now()
		res := tc.Run(ctx, r)
		res.Name = tc.Name
		res.Latency = time.Since(start)
		fmt.Printf("%-26s %-5s %8s  %s\n", res.Name, res.Status, res.Latency.Round(time.Millisecond), res.Note)
		results = append(results, res)
	}
	return results
}

func (r *Runner) getJSON(ctx context.Context, path string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+path, nil)
	if err != nil {
		return 0, err
	}
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if out != nil {
		_ = json.Unmarshal(body, out)
	}
	return resp.StatusCode, nil
}

func (r *Runner) postJSON(ctx context.Context, path string, payload, out any) (int, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+path, &buf)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if out != nil {
		_ = json.Unmarshal(body, out)
	}
	return resp.StatusCode, nil
}

func runHealthz(ctx context.Context, r *Runner) Result {
	code, err := r.getJSON(ctx, "/healthz", nil)
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	if code != http.StatusOK {
		return Result{Status: "FAIL", Note: fmt.Sprintf("status %d", code)}
	}
	return Result{Status: "PASS"}
}

func runCatalogRoutes(ctx context.Context, r *Runner) Result {
	var out struct {
		Routes []struct {
			ID string `json:"id"`
		} `json:"routes"`
	}
	code, err := r.getJSON(ctx, "/api/catalog/routes", &out)
	if err != nil || code != http.StatusOK {
		return Result{Status: "FAIL", Note: fmt.Sprintf("status %d err %v", code, err)}
	}
	if len(out.Routes) == 0 {
		return Result{Status: "FAIL", Note: "empty catalog"}
	}
	return Result{Status: "PASS", Note: fmt.Sprintf("%d routes", len(out.Routes))}
}

type quotePayload struct {
	RouteID     string `json:"routeId"`
	ServiceType string `json:"serviceType"`
	Passengers  int    `json:"passengers"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

type quoteResponse struct {
	Base struct {
		Amount int64 `json:"amount"`
	} `json:"base"`
	Total struct {
		Amount int64 `json:"amount"`
	} `json:"total"`
}

// A mid-afternoon weekday quote with no extras must equal the base price.
func runQuoteBasePrice(ctx context.Context, r *Runner) Result {
	var out quoteResponse
	code, err := r.postJSON(ctx, "/api/quotes", quotePayload{
		RouteID: "nadi-airport-denarau", ServiceType: "private",
		Passengers: 2, Date: nextWeekday(), Time: "14:00",
	}, &out)
	if err != nil || code != http.StatusCreated {
		return Result{Status: "FAIL", Note: fmt.Sprintf("status %d err %v", code, err)}
	}
	if out.Total.Amount != out.Base.Amount {
		return Result{Status: "FAIL", Note: fmt.Sprintf("total %d != base %d", out.Total.Amount, out.Base.Amount)}
	}
	return Result{Status: "PASS"}
}

// The same trip at 23:00 must cost strictly more than base.
func runQuoteAfterHours(ctx context.Context, r *Runner) Result {
	var out quoteResponse
	code, err := r.postJSON(ctx, "/api/quotes", quotePayload{
		RouteID: "nadi-airport-denarau", ServiceType: "private",
		Passengers: 2, Date: nextWeekday(), Time: "23:00",
	}, &out)
	if err != nil || code != http.StatusCreated {
		return Result{Status: "FAIL", Note: fmt.Sprintf("status %d err %v", code, err)}
	}
	if out.Total.Amount <= out.Base.Amount {
		return Result{Status: "FAIL", Note: "after-hours surcharge missing"}
	}
	return Result{Status: "PASS"}
}

func runQuoteCapacityRejected(ctx context.Context, r *Runner) Result {
	code, err := r.postJSON(ctx, "/api/quotes", quotePayload{
		RouteID: "nadi-airport-denarau", ServiceType: "premium",
		Passengers: 8, Date: nextWeekday(), Time: "14:00",
	}, nil)
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	if code != http.StatusUnprocessableEntity {
		return Result{Status: "FAIL", Note: fmt.Sprintf("expected 422, got %d", code)}
	}
	return Result{Status: "PASS"}
}

func runAvailabilityWeekday(ctx context.Context, r *Runner) Result {
	var out struct {
		Available bool `json:"available"`
		Slots     []struct {
			Time string `json:"time"`
		} `json:"slots"`
	}
	path := fmt.Sprintf("/api/availability?routeId=nadi-airport-denarau&serviceType=private&date=%s", nextWeekday())
	code, err := r.getJSON(ctx, path, &out)
	if err != nil || code != http.StatusOK {
		return Result{Status: "FAIL", Note: fmt.Sprintf("status %d err %v", code, err)}
	}
	if !out.Available || len(out.Slots) == 0 {
		return Result{Status: "FAIL", Note: "no slots for 24/7 route"}
	}
	return Result{Status: "PASS", Note: fmt.Sprintf("%d slots", len(out.Slots))}
}

func runSearchFromAirport(ctx context.Context, r *Runner) Result {
	var out struct {
		Count int `json:"count"`
	}
	code, err := r.getJSON(ctx, "/api/search?from=nadi-airport&serviceType=private", &out)
	if err != nil || code != http.StatusOK {
		return Result{Status: "FAIL", Note: fmt.Sprintf("status %d err %v", code, err)}
	}
	if out.Count == 0 {
		return Result{Status: "FAIL", Note: "no results"}
	}
	return Result{Status: "PASS", Note: fmt.Sprintf("%d results", out.Count)}
}

func runDBPing(ctx context.Context, r *Runner) Result {
	if r.cfg.DSN == "" {
		return Result{Status: "SKIP", Note: "no DSN"}
	}
	db, err := pgxpool.New(ctx, r.cfg.DSN)
	if err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	defer db.Close()
	if err := db.Ping(ctx); err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	return Result{Status: "PASS"}
}

func runRedisPing(ctx context.Context, r *Runner) Result {
	if r.cfg.RedisAddr == "" {
		return Result{Status: "SKIP", Note: "no redis addr"}
	}
	client := redis.NewClient(&redis.Options{Addr: r.cfg.RedisAddr})
	defer client.Close()
	if err := client.Ping(ctx).Err(); err != nil {
		return Result{Status: "FAIL", Note: err.Error()}
	}
	return Result{Status: "PASS"}
}

// nextWeekday returns the next Monday-Friday date outside any recurring
// holiday, formatted YYYY-MM-DD.
func nextWeekday() string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday || isSeedHoliday(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

func isSeedHoliday(d time.Time) bool {
	switch d.Format("01-02") {
	case "01-01", "05-14", "09-07", "10-10", "12-25", "12-26":
		return true
	}
	switch d.Format("2006-01-02") {
	case "2026-04-03", "2026-04-04", "2026-04-06", "2026-08-26", "2026-11-08",
		"2027-03-26", "2027-03-27", "2027-03-29", "2027-10-28":
		return true
	}
	return false
}
