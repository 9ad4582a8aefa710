package models

import "time"

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	ProjectPlanning   ProjectStatus = "planning"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectOnHold     ProjectStatus = "on-hold"
)

// Valid reports whether s is one of the known statuses.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectPlanning, ProjectInProgress, ProjectCompleted, ProjectOnHold:
		return true
	}
	return false
}

// Project represents an internal initiative with a budget.
type Project struct {
	ID             string        `json:"_id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Status         ProjectStatus `json:"status"`
	Priority       string        `json:"priority"` // Low, Medium, High
	Budget         float64       `json:"budget"`
	Spent          float64       `json:"spent"`
	StartDate      time.Time     `json:"startDate"`
	PlannedEndDate *time.Time    `json:"plannedEndDate"`
	EndDate        *time.Time    `json:"endDate"`
	Manager        string        `json:"manager"`
	Team           []string      `json:"team"`
}

// RecordID implements repositories.Record.
func (p Project) RecordID() string { return p.ID }

// IsOverdue is true for unfinished projects past their planned end date.
func (p Project) IsOverdue(now time.Time) bool {
	return p.Status != ProjectCompleted && p.PlannedEndDate != nil && p.PlannedEndDate.Before(now)
}

// ProjectStats is the overview block of the projects screen.
type ProjectStats struct {
	TotalProjects     int     `json:"totalProjects"`
	ActiveProjects    int     `json:"activeProjects"`
	CompletedProjects int     `json:"completedProjects"`
	OverdueProjects   int     `json:"overdueProjects"`
	TotalBudget       float64 `json:"totalBudget"`
	TotalSpent        float64 `json:"totalSpent"`
	BudgetUtilization float64 `json:"budgetUtilization"`
}
