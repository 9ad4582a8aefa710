package models

import "time"

// EmployeeSummary is the employees block of the dashboard.
type EmployeeSummary struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Departments int `json:"departments"`
}

// InventorySummary is the inventory block of the dashboard.
type InventorySummary struct {
	TotalItems      int     `json:"totalItems"`
	TotalValue      float64 `json:"totalValue"`
	LowStockItems   int     `json:"lowStockItems"`
	OutOfStockItems int     `json:"outOfStockItems"`
}

// ProjectSummary is the projects block of the dashboard.
type ProjectSummary struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	Completed   int     `json:"completed"`
	TotalBudget float64 `json:"totalBudget"`
	TotalSpent  float64 `json:"totalSpent"`
}

// Activity is an entry of the "recent activity" feed.
type Activity struct {
	ID        int       `json:"id"`
	Type      string    `json:"type"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	Timestamp time.Time `json:"timestamp"`
}

// DashboardSnapshot is the aggregate served by GET /api/dashboard and the
// input of the business suggestion rules.
type DashboardSnapshot struct {
	Employees        EmployeeSummary  `json:"employees"`
	Inventory        InventorySummary `json:"inventory"`
	Projects         ProjectSummary   `json:"projects"`
	Finances         FinanceOverview  `json:"finances"`
	RecentActivities []Activity       `json:"recentActivities"`
}

// DepartmentCount is one bar of the employees-by-department chart.
type DepartmentCount struct {
	Department string `json:"department"`
	Count      int    `json:"count"`
}

// CategoryValue is one slice of the inventory-by-category chart.
type CategoryValue struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Value    float64 `json:"value"`
}

// StatusCount is one bar of the project status chart.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// MonthlyFinance is one month of the combined finance trend.
type MonthlyFinance struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// PerformanceMetrics are percentage scores shown on the analytics page.
type PerformanceMetrics struct {
	EmployeeProductivity  int `json:"employeeProductivity"`
	InventoryTurnover     int `json:"inventoryTurnover"`
	ProjectOnTimeDelivery int `json:"projectOnTimeDelivery"`
	FinancialHealth       int `json:"financialHealth"`
}

// DashboardAnalytics feeds the dashboard charts.
type DashboardAnalytics struct {
	EmployeesByDepartment     []DepartmentCount  `json:"employeesByDepartment"`
	InventoryByCategory       []CategoryValue    `json:"inventoryByCategory"`
	ProjectStatusDistribution []StatusCount      `json:"projectStatusDistribution"`
	MonthlyFinanceTrends      []MonthlyFinance   `json:"monthlyFinanceTrends"`
	PerformanceMetrics        PerformanceMetrics `json:"performanceMetrics"`
}

// Notification is a system alert shown in the header bell.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // info, success, warning, error
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
	ActionURL string    `json:"actionUrl"`
}

// RecordID implements repositories.Record.
func (n Notification) RecordID() string { return n.ID }
