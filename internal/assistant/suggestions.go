package assistant

import (
	"fmt"

	"ai_manager_backend/internal/models"
)

var defaultSuggestions = []string{
	"Set up automated inventory alerts for better stock management",
	"Implement employee feedback system for better engagement",
	"Create project milestone tracking for improved delivery",
	"Schedule monthly financial reviews for better insights",
}

// BusinessSuggestions derives advice from a dashboard snapshot. When no rule
// fires it returns the default list.
func BusinessSuggestions(snap models.DashboardSnapshot) []string {
	var out []string

	if emp := snap.Employees; emp.Total > 0 {
		activeRate := float64(emp.Active) / float64(emp.Total) * 100
		if activeRate < 90 {
			out = append(out, "Review inactive employees and consider re-engagement strategies")
		}
		out = append(out, "Schedule quarterly performance reviews to maintain team productivity")
	}

	if n := snap.Inventory.LowStockItems; n > 0 {
		out = append(out, fmt.Sprintf("Address %d low stock items immediately", n))
	}
	if n := snap.Inventory.OutOfStockItems; n > 0 {
		out = append(out, fmt.Sprintf("Critical: %d items are out of stock", n))
	}

	if proj := snap.Projects; proj.Active > 0 {
		out = append(out, "Review active project timelines and resource allocation")
		if budgetOverrun(proj.TotalSpent, proj.TotalBudget) {
			out = append(out, "Monitor project budgets closely - utilization above 80%")
		}
	}

	if snap.Finances.Profit.Monthly > 0 {
		out = append(out, "Consider reinvesting profits into growth initiatives")
	}

	if len(out) == 0 {
		return append([]string(nil), defaultSuggestions...)
	}
	return out
}

// budgetOverrun is true above 80% utilization; any spend against a zero budget counts.
func budgetOverrun(spent, budget float64) bool {
	if budget <= 0 {
		return spent > 0
	}
	return spent/budget*100 > 80
}
