package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai_manager_backend/internal/assistant"
	"ai_manager_backend/internal/fixtures"
	"ai_manager_backend/internal/metrics"
	"ai_manager_backend/internal/repositories"
	"ai_manager_backend/internal/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success     bool            `json:"success"`
	Data        json.RawMessage `json:"data"`
	Count       *int            `json:"count"`
	Message     string          `json:"message"`
	Error       string          `json:"error"`
	Code        string          `json:"code"`
	UnreadCount *int            `json:"unreadCount"`
}

func seededRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	repos := repositories.NewMemoryRepositories()
	if err := fixtures.Seed(context.Background(), repos, time.Now()); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	return repos
}

func do(t *testing.T, engine *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: response is not JSON: %v (%s)", method, path, err, rec.Body.String())
	}
	return rec, env
}

func employeeEngine(repos *repositories.Repositories) *gin.Engine {
	h := NewEmployeeHandler(services.NewEmployeeService(repos.Employees))
	r := gin.New()
	r.GET("/employees", h.GetEmployees)
	r.POST("/employees", h.CreateEmployee)
	r.GET("/employees/:id", h.GetEmployeeByID)
	r.PUT("/employees/:id", h.UpdateEmployee)
	r.DELETE("/employees/:id", h.DeleteEmployee)
	r.GET("/employees/:id/attendance", h.GetAttendance)
	return r
}

func TestEmployeeListAndGet(t *testing.T) {
	r := employeeEngine(seededRepos(t))

	rec, env := do(t, r, http.MethodGet, "/employees", "")
	if rec.Code != http.StatusOK || !env.Success {
		t.Fatalf("list: status %d, body %+v", rec.Code, env)
	}
	if env.Count == nil || *env.Count != 5 {
		t.Fatalf("expected count 5, got %v", env.Count)
	}

	rec, env = do(t, r, http.MethodGet, "/employees/emp2", "")
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), "Mike Chen") {
		t.Fatalf("get: status %d, data %s", rec.Code, env.Data)
	}

	rec, env = do(t, r, http.MethodGet, "/employees/nope", "")
	if rec.Code != http.StatusNotFound || env.Success || env.Error != "Employee not found" {
		t.Fatalf("missing: status %d, body %+v", rec.Code, env)
	}
}

func TestEmployeeCreateAcceptsStringSalary(t *testing.T) {
	r := employeeEngine(seededRepos(t))

	rec, env := do(t, r, http.MethodPost, "/employees", `{"name":"Ana Ruiz","department":"Service","salary":"50000"}`)
	if rec.Code != http.StatusCreated || env.Message != "Employee added successfully" {
		t.Fatalf("create: status %d, body %+v", rec.Code, env)
	}
	var created struct {
		ID     string  `json:"id"`
		Salary float64 `json:"salary"`
		Status string  `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Salary != 50000 || created.Status != "Active" || !strings.HasPrefix(created.ID, "emp_") {
		t.Fatalf("unexpected employee %+v", created)
	}

	_, env = do(t, r, http.MethodGet, "/employees", "")
	if *env.Count != 6 {
		t.Fatalf("expected 6 employees, got %d", *env.Count)
	}
}

func TestEmployeeMalformedBody(t *testing.T) {
	r := employeeEngine(seededRepos(t))
	rec, env := do(t, r, http.MethodPost, "/employees", `{"name":`)
	if rec.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("expected 400, got %d %+v", rec.Code, env)
	}
}

func TestEmployeeUpdateStoresStatusAsGiven(t *testing.T) {
	r := employeeEngine(seededRepos(t))
	rec, env := do(t, r, http.MethodPut, "/employees/emp1", `{"status":"On Leave","hireDate":"05/01/2025"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %+v", rec.Code, env)
	}
	if !strings.Contains(string(env.Data), `"status":"On Leave"`) || !strings.Contains(string(env.Data), `"hireDate":"2023-01-15`) {
		t.Fatalf("unexpected employee %s", env.Data)
	}
}

func TestEmployeeDeleteKeepsOrder(t *testing.T) {
	repos := seededRepos(t)
	r := employeeEngine(repos)

	rec, env := do(t, r, http.MethodDelete, "/employees/emp3", "")
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), "emp3") {
		t.Fatalf("delete: status %d, body %+v", rec.Code, env)
	}
	rec, _ = do(t, r, http.MethodDelete, "/employees/emp3", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete should be 404, got %d", rec.Code)
	}

	list, err := repos.Employees.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var ids []string
	for _, e := range list {
		ids = append(ids, e.ID)
	}
	if strings.Join(ids, ",") != "emp1,emp2,emp4,emp5" {
		t.Fatalf("unexpected order %v", ids)
	}
}

func TestEmployeeAttendance(t *testing.T) {
	r := employeeEngine(seededRepos(t))
	rec, env := do(t, r, http.MethodGet, "/employees/emp1/attendance", "")
	if rec.Code != http.StatusOK || !strings.HasPrefix(string(env.Data), "[") {
		t.Fatalf("attendance: status %d, data %s", rec.Code, env.Data)
	}
	rec, _ = do(t, r, http.MethodGet, "/employees/missing/attendance", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestInventoryStatusAfterUpdate(t *testing.T) {
	h := NewInventoryHandler(services.NewInventoryService(seededRepos(t).Inventory))
	r := gin.New()
	r.PUT("/inventory/:id", h.UpdateItem)
	r.GET("/inventory/alerts/low-stock", h.GetLowStockItems)

	cases := []struct {
		body   string
		status string
	}{
		{`{"quantity":0}`, "Out of Stock"},
		{`{"quantity":"20"}`, "Low Stock"},
		{`{"quantity":21}`, "In Stock"},
	}
	for _, tc := range cases {
		rec, env := do(t, r, http.MethodPut, "/inventory/inv1", tc.body)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", tc.body, rec.Code)
		}
		var item struct {
			Status string `json:"status"`
		}
		json.Unmarshal(env.Data, &item)
		if item.Status != tc.status {
			t.Errorf("%s: status %q, want %q", tc.body, item.Status, tc.status)
		}
	}

	_, env := do(t, r, http.MethodGet, "/inventory/alerts/low-stock", "")
	if env.Count == nil || *env.Count != 2 {
		t.Fatalf("expected 2 low stock items after restocking inv1, got %v", env.Count)
	}
}

func TestProjectStatusValidation(t *testing.T) {
	h := NewProjectHandler(services.NewProjectService(seededRepos(t).Projects))
	r := gin.New()
	r.PUT("/projects/:id/status", h.UpdateProjectStatus)

	rec, env := do(t, r, http.MethodPut, "/projects/proj2/status", `{"status":"archived"}`)
	if rec.Code != http.StatusBadRequest || env.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected 400 validation, got %d %+v", rec.Code, env)
	}
	rec, env = do(t, r, http.MethodPut, "/projects/proj2/status", `{"status":"completed"}`)
	if rec.Code != http.StatusOK || strings.Contains(string(env.Data), `"endDate":null`) {
		t.Fatalf("complete: status %d, data %s", rec.Code, env.Data)
	}
	rec, _ = do(t, r, http.MethodPut, "/projects/missing/status", `{"status":"completed"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProjectUpdateChangesStatus(t *testing.T) {
	h := NewProjectHandler(services.NewProjectService(seededRepos(t).Projects))
	r := gin.New()
	r.GET("/projects/:id", h.GetProjectByID)
	r.PUT("/projects/:id", h.UpdateProject)

	rec, env := do(t, r, http.MethodPut, "/projects/proj1", `{"status":"on-hold"}`)
	if rec.Code != http.StatusOK || !strings.Contains(string(env.Data), `"status":"on-hold"`) {
		t.Fatalf("update: status %d, data %s", rec.Code, env.Data)
	}
	_, env = do(t, r, http.MethodGet, "/projects/proj1", "")
	if !strings.Contains(string(env.Data), `"status":"on-hold"`) {
		t.Fatalf("status not persisted: %s", env.Data)
	}

	rec, env = do(t, r, http.MethodPut, "/projects/proj1", `{"status":"completed"}`)
	if rec.Code != http.StatusOK || strings.Contains(string(env.Data), `"endDate":null`) {
		t.Fatalf("complete: status %d, data %s", rec.Code, env.Data)
	}

	rec, env = do(t, r, http.MethodPut, "/projects/proj1", `{"status":"archived"}`)
	if rec.Code != http.StatusBadRequest || env.Code != "VALIDATION_FAILED" {
		t.Fatalf("expected 400 validation, got %d %+v", rec.Code, env)
	}
}

func TestFinanceMonthlyReportQuery(t *testing.T) {
	h := NewFinanceHandler(services.NewFinanceService(seededRepos(t).Finance))
	r := gin.New()
	r.GET("/finance/reports/monthly", h.GetMonthlyReport)

	rec, _ := do(t, r, http.MethodGet, "/finance/reports/monthly?year=abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric year: expected 400, got %d", rec.Code)
	}
	rec, _ = do(t, r, http.MethodGet, "/finance/reports/monthly?year=2025&month=13", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("month 13: expected 400, got %d", rec.Code)
	}

	now := time.Now()
	rec, env := do(t, r, http.MethodGet, "/finance/reports/monthly", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("default period: status %d", rec.Code)
	}
	var report struct {
		Period  string  `json:"period"`
		Revenue float64 `json:"revenue"`
	}
	json.Unmarshal(env.Data, &report)
	if want := now.Format("2006-01"); report.Period != want {
		t.Errorf("period %q, want %q", report.Period, want)
	}
	if report.Revenue <= 0 {
		t.Errorf("expected revenue for the current month, got %v", report.Revenue)
	}
}

func TestFinanceCreateStoresRecordAsGiven(t *testing.T) {
	h := NewFinanceHandler(services.NewFinanceService(seededRepos(t).Finance))
	r := gin.New()
	r.POST("/finance", h.CreateRecord)

	rec, env := do(t, r, http.MethodPost, "/finance", `{"amount":100,"category":"misc"}`)
	if rec.Code != http.StatusCreated || !strings.Contains(string(env.Data), `"type":""`) {
		t.Fatalf("untyped: status %d, data %s", rec.Code, env.Data)
	}
	rec, env = do(t, r, http.MethodPost, "/finance", `{"type":"revenue","amount":10,"date":"05/01/2025"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("unparsable date: status %d, data %s", rec.Code, env.Data)
	}
	rec, env = do(t, r, http.MethodPost, "/finance", `{"type":"expense","amount":"99.5","category":"Repairs"}`)
	if rec.Code != http.StatusCreated || !strings.Contains(string(env.Data), `"amount":99.5`) {
		t.Fatalf("create: status %d, data %s", rec.Code, env.Data)
	}
}

func TestEventsByCategory(t *testing.T) {
	h := NewEventHandler(services.NewEventService(seededRepos(t).Events))
	r := gin.New()
	r.GET("/events/category/:category", h.GetEventsByCategory)
	r.GET("/events/filter/upcoming", h.GetUpcomingEvents)

	_, env := do(t, r, http.MethodGet, "/events/category/music", "")
	if env.Count == nil || *env.Count != 1 {
		t.Fatalf("expected one music event, got %v", env.Count)
	}
	_, env = do(t, r, http.MethodGet, "/events/filter/upcoming", "")
	if env.Count == nil || *env.Count != 2 {
		t.Fatalf("expected two upcoming events, got %v", env.Count)
	}
}

func TestDashboardNotifications(t *testing.T) {
	repos := seededRepos(t)
	h := NewDashboardHandler(services.NewDashboardService(repos, services.NewFinanceService(repos.Finance)))
	r := gin.New()
	r.GET("/notifications", h.GetNotifications)
	r.PUT("/notifications/:id/read", h.MarkNotificationRead)

	_, env := do(t, r, http.MethodGet, "/notifications", "")
	if env.UnreadCount == nil || *env.UnreadCount != 2 {
		t.Fatalf("expected 2 unread, got %v", env.UnreadCount)
	}
	rec, _ := do(t, r, http.MethodPut, "/notifications/1/read", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("mark read: %d", rec.Code)
	}
	_, env = do(t, r, http.MethodGet, "/notifications", "")
	if *env.UnreadCount != 1 {
		t.Fatalf("expected 1 unread after marking, got %d", *env.UnreadCount)
	}
	rec, _ = do(t, r, http.MethodPut, "/notifications/99/read", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

type failingGenerator struct{}

func (failingGenerator) Chat(context.Context, []assistant.Message) (assistant.Completion, error) {
	return assistant.Completion{}, errors.New("OpenAI API error: 503: overloaded")
}

type chatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Mode     string `json:"mode"`
	Error    string `json:"error"`
}

func chatEngine(gen assistant.TextGenerator) *gin.Engine {
	r, _ := sessionEngine(gen)
	return r
}

func sessionEngine(gen assistant.TextGenerator) (*gin.Engine, *assistant.SessionStore) {
	a := assistant.New(gen)
	store := assistant.NewSessionStore(a)
	h := NewAIHandler(a, store, metrics.New())
	r := gin.New()
	r.POST("/ai/chat", h.Chat)
	r.POST("/ai/suggestions", h.Suggestions)
	r.GET("/ai/sessions/:surface", h.GetSession)
	r.POST("/ai/sessions/:surface/messages", h.SendSessionMessage)
	r.DELETE("/ai/sessions/:surface", h.ResetSession)
	return r, store
}

func postChat(t *testing.T, r *gin.Engine, body string) (int, chatResponse) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/ai/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	var resp chatResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec.Code, resp
}

func TestChatRequiresMessage(t *testing.T) {
	r := chatEngine(nil)
	code, resp := postChat(t, r, `{"message":"   "}`)
	if code != http.StatusBadRequest || resp.Success {
		t.Fatalf("expected 400, got %d %+v", code, resp)
	}
}

func TestChatDemoModeIsDeterministic(t *testing.T) {
	r := chatEngine(nil)
	want := assistant.CannedReply("Tell me about inventory")
	for i := 0; i < 3; i++ {
		code, resp := postChat(t, r, `{"message":"Tell me about inventory"}`)
		if code != http.StatusOK || resp.Mode != "demo" || resp.Response != want {
			t.Fatalf("attempt %d: %d %+v", i, code, resp)
		}
	}
}

func TestChatFallbackCarriesMode(t *testing.T) {
	r := chatEngine(failingGenerator{})
	code, resp := postChat(t, r, `{"message":"How is revenue?","context":{"page":"finance"}}`)
	if code != http.StatusOK || !resp.Success {
		t.Fatalf("fallback must not be an HTTP error: %d %+v", code, resp)
	}
	if resp.Mode != "demo_fallback" || resp.Error == "" {
		t.Fatalf("expected demo_fallback with error, got %+v", resp)
	}
	if resp.Response != assistant.CannedReply("How is revenue?") {
		t.Fatalf("unexpected fallback text %q", resp.Response)
	}
}

func TestChatRequestBusinessContext(t *testing.T) {
	cases := map[string]string{
		`{"message":"x"}`:                         "",
		`{"message":"x","context":null}`:          "",
		`{"message":"x","context":"Q3 numbers"}`:  "Q3 numbers",
		`{"message":"x","context":{"page":"hr"}}`: `{"page":"hr"}`,
	}
	for body, want := range cases {
		var req chatRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("%s: %v", body, err)
		}
		if got := req.businessContext(); got != want {
			t.Errorf("%s: got %q, want %q", body, got, want)
		}
	}
}

func TestSuggestionsEndpoint(t *testing.T) {
	r := chatEngine(nil)
	body := `{"dashboardData":{"employees":{"total":10,"active":8},"inventory":{"lowStockItems":2,"outOfStockItems":1}}}`
	req := httptest.NewRequest(http.MethodPost, "/ai/suggestions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp struct {
		Success     bool     `json:"success"`
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	joined := strings.Join(resp.Suggestions, "\n")
	if !strings.Contains(joined, "2 low stock items") || !strings.Contains(joined, "1 items are out of stock") {
		t.Fatalf("unexpected suggestions %v", resp.Suggestions)
	}
}

func TestSessionLifecycle(t *testing.T) {
	r, store := sessionEngine(nil)

	type snapshot struct {
		State    string `json:"state"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
			Mode    string `json:"mode"`
		} `json:"messages"`
	}
	decode := func(env envelope) snapshot {
		var s snapshot
		if err := json.Unmarshal(env.Data, &s); err != nil {
			t.Fatalf("decode snapshot: %v", err)
		}
		return s
	}

	_, env := do(t, r, http.MethodGet, "/ai/sessions/page:finance", "")
	if s := decode(env); len(s.Messages) != 1 || s.State != "idle" {
		t.Fatalf("expected welcome only, got %+v", s)
	}
	if store.Len() != 0 {
		t.Fatalf("reading a session must not store it, have %d", store.Len())
	}

	rec, _ := do(t, r, http.MethodPost, "/ai/sessions/page:finance/messages", `{"message":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank message: expected 400, got %d", rec.Code)
	}

	rec, env = do(t, r, http.MethodPost, "/ai/sessions/page:finance/messages", `{"message":"Show me staff tips"}`)
	s := decode(env)
	if rec.Code != http.StatusOK || len(s.Messages) != 3 {
		t.Fatalf("send: status %d, snapshot %+v", rec.Code, s)
	}
	if last := s.Messages[2]; last.Role != "assistant" || last.Mode != "demo" {
		t.Fatalf("unexpected reply %+v", last)
	}

	_, env = do(t, r, http.MethodGet, "/ai/sessions/modal", "")
	if s := decode(env); len(s.Messages) != 1 {
		t.Fatalf("surfaces must not share history, got %d messages", len(s.Messages))
	}
	for i := 0; i < 50; i++ {
		do(t, r, http.MethodGet, fmt.Sprintf("/ai/sessions/unknown-%d", i), "")
	}
	if store.Len() != 1 {
		t.Fatalf("only sent-to sessions are kept, have %d", store.Len())
	}

	_, env = do(t, r, http.MethodDelete, "/ai/sessions/page:finance", "")
	if s := decode(env); len(s.Messages) != 1 || s.State != "idle" {
		t.Fatalf("reset: %+v", s)
	}
	if store.Len() != 0 {
		t.Fatalf("reset should drop the session, have %d", store.Len())
	}
}
