package router

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai_manager_backend/internal/fixtures"
	"ai_manager_backend/internal/metrics"
	"ai_manager_backend/internal/middleware"
	"ai_manager_backend/internal/ratelimit"
	"ai_manager_backend/internal/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(t *testing.T, opts Options) *gin.Engine {
	t.Helper()
	repos := repositories.NewMemoryRepositories()
	if err := fixtures.Seed(context.Background(), repos, time.Now()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	engine := gin.New()
	engine.Use(middleware.Recovery(), middleware.RequestID())
	if opts.Metrics != nil {
		engine.Use(middleware.Metrics(opts.Metrics))
	}
	Setup(engine, repos, opts)
	return engine
}

func request(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRoutesRespond(t *testing.T) {
	engine := newEngine(t, Options{})

	paths := []string{
		"/",
		"/api/health",
		"/api/employees",
		"/api/employees/emp1",
		"/api/employees/emp1/attendance",
		"/api/inventory",
		"/api/inventory/inv1",
		"/api/inventory/alerts/low-stock",
		"/api/projects",
		"/api/projects/proj1",
		"/api/projects/stats/overview",
		"/api/finance",
		"/api/finance/fin1",
		"/api/finance/overview",
		"/api/finance/reports/monthly",
		"/api/finance/analytics/trends",
		"/api/events",
		"/api/events/evt1",
		"/api/events/filter/upcoming",
		"/api/events/category/Music",
		"/api/dashboard",
		"/api/dashboard/analytics",
		"/api/dashboard/notifications",
		"/api/ai/prompts/finance",
		"/api/ai/sessions/modal",
	}
	for _, p := range paths {
		if rec := request(engine, http.MethodGet, p, ""); rec.Code != http.StatusOK {
			t.Errorf("GET %s: status %d, body %s", p, rec.Code, rec.Body.String())
		}
	}
}

func TestUnknownRouteIs404Envelope(t *testing.T) {
	engine := newEngine(t, Options{})
	rec := request(engine, http.MethodGet, "/api/unknown", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Success || body.Error != "Route not found" {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	engine := newEngine(t, Options{})
	rec := request(engine, http.MethodGet, "/api/health", "")
	var body struct {
		Status    string `json:"status"`
		Message   string `json:"message"`
		Timestamp string `json:"timestamp"`
	}
	json.Unmarshal(rec.Body.Bytes(), &body)
	if body.Status != "OK" || body.Message != "AI Manager Backend" {
		t.Fatalf("unexpected health %+v", body)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Fatalf("timestamp %q: %v", body.Timestamp, err)
	}
}

func TestDashboardTotalValueMatchesInventory(t *testing.T) {
	engine := newEngine(t, Options{})

	totalValue := func() float64 {
		var dashboard struct {
			Data struct {
				Inventory struct {
					TotalValue float64 `json:"totalValue"`
				} `json:"inventory"`
			} `json:"data"`
		}
		json.Unmarshal(request(engine, http.MethodGet, "/api/dashboard", "").Body.Bytes(), &dashboard)
		return dashboard.Data.Inventory.TotalValue
	}

	before := totalValue()
	rec := request(engine, http.MethodPost, "/api/inventory", `{"name":"Saffron","category":"Spices","quantity":1,"unitPrice":0.125}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create item: status %d, body %s", rec.Code, rec.Body.String())
	}

	var inventory struct {
		Data []struct {
			Quantity  int     `json:"quantity"`
			UnitPrice float64 `json:"unitPrice"`
		} `json:"data"`
	}
	json.Unmarshal(request(engine, http.MethodGet, "/api/inventory", "").Body.Bytes(), &inventory)
	var want float64
	for _, item := range inventory.Data {
		want += float64(item.Quantity) * item.UnitPrice
	}

	got := totalValue()
	if math.Abs(got-want) > 1e-9 || want == 0 {
		t.Fatalf("totalValue %v, want %v", got, want)
	}
	if delta := got - before; math.Abs(delta-0.125) > 1e-9 {
		t.Fatalf("sub-cent item added %v to totalValue, want 0.125", delta)
	}
}

func TestMutationsAreVisibleAcrossRoutes(t *testing.T) {
	engine := newEngine(t, Options{})

	rec := request(engine, http.MethodPost, "/api/events", `{"title":"Trivia Night","date":"2099-01-10","category":"Games"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create event: %d %s", rec.Code, rec.Body.String())
	}
	rec = request(engine, http.MethodGet, "/api/events/category/games", "")
	if !strings.Contains(rec.Body.String(), "Trivia Night") {
		t.Fatalf("created event missing from category listing: %s", rec.Body.String())
	}

	rec = request(engine, http.MethodDelete, "/api/finance/fin1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete finance record: %d", rec.Code)
	}
	if rec = request(engine, http.MethodGet, "/api/finance/fin1", ""); rec.Code != http.StatusNotFound {
		t.Fatalf("deleted record still served: %d", rec.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	m := metrics.New()
	engine := newEngine(t, Options{Metrics: m})

	request(engine, http.MethodPost, "/api/ai/chat", `{"message":"inventory status"}`)
	rec := request(engine, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`assistant_replies_total{mode="demo"} 1`,
		`http_requests_total{method="POST",route="/api/ai/chat",status="200"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestChatRateLimit(t *testing.T) {
	redis := miniredis.RunT(t)
	limiter, err := ratelimit.NewRedisFixedWindowLimiter(redis.Addr(), "", "test:chat", 2, time.Minute)
	if err != nil {
		t.Fatalf("new limiter: %v", err)
	}
	defer limiter.Close()
	engine := newEngine(t, Options{ChatLimiter: limiter, Metrics: metrics.New()})

	for i := 0; i < 2; i++ {
		if rec := request(engine, http.MethodPost, "/api/ai/chat", `{"message":"hello"}`); rec.Code != http.StatusOK {
			t.Fatalf("request %d: %d", i+1, rec.Code)
		}
	}
	if rec := request(engine, http.MethodPost, "/api/ai/chat", `{"message":"hello"}`); rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	// Only model-facing routes are limited.
	if rec := request(engine, http.MethodGet, "/api/ai/prompts/hr", ""); rec.Code != http.StatusOK {
		t.Fatalf("prompts should not be limited, got %d", rec.Code)
	}

	redis.Close()
	if rec := request(engine, http.MethodPost, "/api/ai/chat", `{"message":"hello"}`); rec.Code != http.StatusOK {
		t.Fatalf("limiter outage should let chat through, got %d", rec.Code)
	}
}
