package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai_manager_backend/internal/models"
	"ai_manager_backend/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrNotificationNotFound = errors.New("notification not found")

// fixedPerformanceMetrics are editorial scores; nothing in the store measures them.
var fixedPerformanceMetrics = models.PerformanceMetrics{
	EmployeeProductivity:  85,
	InventoryTurnover:     78,
	ProjectOnTimeDelivery: 92,
	FinancialHealth:       88,
}

type DashboardService interface {
	Snapshot(ctx context.Context) (models.DashboardSnapshot, error)
	Analytics(ctx context.Context) (models.DashboardAnalytics, error)
	// Notifications returns all notifications and how many are unread.
	Notifications(ctx context.Context) ([]models.Notification, int, error)
	MarkNotificationRead(ctx context.Context, id string) (models.Notification, error)
}

type dashboardService struct {
	repos   *repositories.Repositories
	finance FinanceService
	now     func() time.Time
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(repos *repositories.Repositories, finance FinanceService) DashboardService {
	return &dashboardService{repos: repos, finance: finance, now: time.Now}
}

func (s *dashboardService) Snapshot(ctx context.Context) (models.DashboardSnapshot, error) {
	employees, err := s.repos.Employees.List(ctx)
	if err != nil {
		return models.DashboardSnapshot{}, fmt.Errorf("failed to load employees: %w", err)
	}
	items, err := s.repos.Inventory.List(ctx)
	if err != nil {
		return models.DashboardSnapshot{}, fmt.Errorf("failed to load inventory: %w", err)
	}
	projects, err := s.repos.Projects.List(ctx)
	if err != nil {
		return models.DashboardSnapshot{}, fmt.Errorf("failed to load projects: %w", err)
	}
	finances, err := s.finance.Overview(ctx)
	if err != nil {
		return models.DashboardSnapshot{}, err
	}

	return models.DashboardSnapshot{
		Employees:        summarizeEmployees(employees),
		Inventory:        summarizeInventory(items),
		Projects:         summarizeProjects(projects),
		Finances:         finances,
		RecentActivities: recentActivities(s.now()),
	}, nil
}

func summarizeEmployees(employees []models.Employee) models.EmployeeSummary {
	summary := models.EmployeeSummary{Total: len(employees)}
	departments := map[string]struct{}{}
	for _, emp := range employees {
		if emp.IsActive() {
			summary.Active++
		}
		departments[emp.Department] = struct{}{}
	}
	summary.Departments = len(departments)
	return summary
}

func summarizeInventory(items []models.InventoryItem) models.InventorySummary {
	summary := models.InventorySummary{TotalItems: len(items)}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
		if item.NeedsRestock() {
			summary.LowStockItems++
		}
		if item.Quantity == 0 {
			summary.OutOfStockItems++
		}
	}
	summary.TotalValue, _ = total.Float64()
	return summary
}

func summarizeProjects(projects []models.Project) models.ProjectSummary {
	summary := models.ProjectSummary{Total: len(projects)}
	budgets := make([]float64, 0, len(projects))
	spent := make([]float64, 0, len(projects))
	for _, p := range projects {
		switch p.Status {
		case models.ProjectInProgress:
			summary.Active++
		case models.ProjectCompleted:
			summary.Completed++
		}
		budgets = append(budgets, p.Budget)
		spent = append(spent, p.Spent)
	}
	summary.TotalBudget = toFloat(sum(budgets...))
	summary.TotalSpent = toFloat(sum(spent...))
	return summary
}

func recentActivities(now time.Time) []models.Activity {
	return []models.Activity{
		{ID: 1, Type: "employee", Action: "New employee added", Details: "Emma Thompson joined the Kitchen team", Timestamp: now.Add(-time.Hour)},
		{ID: 2, Type: "inventory", Action: "Low stock alert", Details: "Cocktail Napkins quantity below minimum level", Timestamp: now.Add(-2 * time.Hour)},
		{ID: 3, Type: "project", Action: "Project completed", Details: "Dining Room Renovation project finished", Timestamp: now.Add(-24 * time.Hour)},
		{ID: 4, Type: "finance", Action: "Revenue recorded", Details: "Private dining event payment received", Timestamp: now.Add(-48 * time.Hour)},
	}
}

func (s *dashboardService) Analytics(ctx context.Context) (models.DashboardAnalytics, error) {
	employees, err := s.repos.Employees.List(ctx)
	if err != nil {
		return models.DashboardAnalytics{}, fmt.Errorf("failed to load employees: %w", err)
	}
	items, err := s.repos.Inventory.List(ctx)
	if err != nil {
		return models.DashboardAnalytics{}, fmt.Errorf("failed to load inventory: %w", err)
	}
	projects, err := s.repos.Projects.List(ctx)
	if err != nil {
		return models.DashboardAnalytics{}, fmt.Errorf("failed to load projects: %w", err)
	}
	trends, err := s.finance.Trends(ctx)
	if err != nil {
		return models.DashboardAnalytics{}, err
	}

	return models.DashboardAnalytics{
		EmployeesByDepartment:     employeesByDepartment(employees),
		InventoryByCategory:       inventoryByCategory(items),
		ProjectStatusDistribution: projectStatusDistribution(projects),
		MonthlyFinanceTrends:      combineTrends(trends),
		PerformanceMetrics:        fixedPerformanceMetrics,
	}, nil
}

// employeesByDepartment keeps departments in order of first appearance.
func employeesByDepartment(employees []models.Employee) []models.DepartmentCount {
	out := []models.DepartmentCount{}
	index := map[string]int{}
	for _, emp := range employees {
		i, ok := index[emp.Department]
		if !ok {
			i = len(out)
			index[emp.Department] = i
			out = append(out, models.DepartmentCount{Department: emp.Department})
		}
		out[i].Count++
	}
	return out
}

func inventoryByCategory(items []models.InventoryItem) []models.CategoryValue {
	out := []models.CategoryValue{}
	values := []decimal.Decimal{}
	index := map[string]int{}
	for _, item := range items {
		i, ok := index[item.Category]
		if !ok {
			i = len(out)
			index[item.Category] = i
			out = append(out, models.CategoryValue{Category: item.Category})
			values = append(values, decimal.Zero)
		}
		out[i].Count++
		values[i] = values[i].Add(decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	for i := range out {
		out[i].Value = toFloat(values[i])
	}
	return out
}

func projectStatusDistribution(projects []models.Project) []models.StatusCount {
	order := []models.ProjectStatus{models.ProjectInProgress, models.ProjectCompleted, models.ProjectPlanning, models.ProjectOnHold}
	counts := map[models.ProjectStatus]int{}
	for _, p := range projects {
		counts[p.Status]++
	}
	out := make([]models.StatusCount, 0, len(order))
	for _, status := range order {
		out = append(out, models.StatusCount{Status: string(status), Count: counts[status]})
	}
	return out
}

func combineTrends(trends models.FinanceTrends) []models.MonthlyFinance {
	out := make([]models.MonthlyFinance, 0, len(trends.Revenue))
	for i, rev := range trends.Revenue {
		m := models.MonthlyFinance{Month: rev.Month, Revenue: rev.Amount}
		if i < len(trends.Expenses) {
			m.Expenses = trends.Expenses[i].Amount
		}
		if i < len(trends.Profit) {
			m.Profit = trends.Profit[i].Amount
		}
		out = append(out, m)
	}
	return out
}

func (s *dashboardService) Notifications(ctx context.Context) ([]models.Notification, int, error) {
	list, err := s.repos.Notifications.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}
	return list, unread, nil
}

func (s *dashboardService) MarkNotificationRead(ctx context.Context, id string) (models.Notification, error) {
	updated, err := s.repos.Notifications.Modify(ctx, id, func(n *models.Notification) error {
		n.Read = true
		return nil
	})
	if err != nil {
		return models.Notification{}, notFoundOr(err, ErrNotificationNotFound, "mark notification as read")
	}
	return updated, nil
}
