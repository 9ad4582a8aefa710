package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai_manager_backend/internal/models"
	"ai_manager_backend/internal/repositories"
	"ai_manager_backend/pkg/utils"

	"github.com/shopspring/decimal"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrInvalidProjectStatus = errors.New("invalid project status, expected planning, in-progress, completed or on-hold")
)

type CreateProjectRequest struct {
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Priority       string           `json:"priority"`
	Budget         *utils.FlexFloat `json:"budget"`
	Manager        string           `json:"manager"`
	PlannedEndDate *string          `json:"plannedEndDate"`
}

type UpdateProjectRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	Priority       *string          `json:"priority"`
	Budget         *utils.FlexFloat `json:"budget"`
	Spent          *utils.FlexFloat `json:"spent"`
	Manager        *string          `json:"manager"`
	Team           *[]string        `json:"team"`
	Status         *string          `json:"status"`
	StartDate      *string          `json:"startDate"`
	PlannedEndDate *string          `json:"plannedEndDate"`
	EndDate        *string          `json:"endDate"`
}

type ProjectService interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, req CreateProjectRequest) (models.Project, error)
	UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (models.Project, error)
	DeleteProject(ctx context.Context, id string) (models.Project, error)
	// UpdateStatus moves a project to status; completing it stamps endDate.
	UpdateStatus(ctx context.Context, id string, status string) (models.Project, error)
	Stats(ctx context.Context) (models.ProjectStats, error)
}

type projectService struct {
	projects repositories.Collection[models.Project]
	now      func() time.Time
}

// NewProjectService creates a new instance of ProjectService.
func NewProjectService(projects repositories.Collection[models.Project]) ProjectService {
	return &projectService{projects: projects, now: time.Now}
}

func (s *projectService) ListProjects(ctx context.Context) ([]models.Project, error) {
	list, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return list, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (models.Project, error) {
	p, err := s.projects.Get(ctx, id)
	if err != nil {
		return models.Project{}, notFoundOr(err, ErrProjectNotFound, "get project")
	}
	return p, nil
}

func (s *projectService) CreateProject(ctx context.Context, req CreateProjectRequest) (models.Project, error) {
	p := models.Project{
		ID:             newID("proj"),
		Title:          req.Title,
		Description:    req.Description,
		Status:         models.ProjectPlanning,
		Priority:       req.Priority,
		StartDate:      s.now(),
		PlannedEndDate: parseOptionalDateTime(req.PlannedEndDate, "plannedEndDate"),
		Manager:        req.Manager,
		Team:           []string{},
	}
	if req.Budget != nil {
		p.Budget = req.Budget.Float64()
	}

	created, err := s.projects.Create(ctx, p)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to create project: %w", err)
	}
	utils.LogInfo("Project created", map[string]interface{}{"project_id": created.ID})
	return created, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req UpdateProjectRequest) (models.Project, error) {
	var next models.ProjectStatus
	if req.Status != nil {
		next = models.ProjectStatus(*req.Status)
		if !next.Valid() {
			return models.Project{}, ErrInvalidProjectStatus
		}
	}
	startDate := parseOptionalDateTime(req.StartDate, "startDate")
	plannedEnd := parseOptionalDateTime(req.PlannedEndDate, "plannedEndDate")
	endDate := parseOptionalDateTime(req.EndDate, "endDate")

	updated, err := s.projects.Modify(ctx, id, func(p *models.Project) error {
		applyString(&p.Title, req.Title)
		applyString(&p.Description, req.Description)
		applyString(&p.Priority, req.Priority)
		applyString(&p.Manager, req.Manager)
		if req.Budget != nil {
			p.Budget = req.Budget.Float64()
		}
		if req.Spent != nil {
			p.Spent = req.Spent.Float64()
		}
		if req.Team != nil {
			p.Team = append([]string{}, (*req.Team)...)
		}
		if startDate != nil {
			p.StartDate = *startDate
		}
		if plannedEnd != nil {
			p.PlannedEndDate = plannedEnd
		}
		if next != "" {
			s.setStatus(p, next)
		}
		if endDate != nil {
			p.EndDate = endDate
		}
		return nil
	})
	if err != nil {
		return models.Project{}, notFoundOr(err, ErrProjectNotFound, "update project")
	}
	return updated, nil
}

func (s *projectService) DeleteProject(ctx context.Context, id string) (models.Project, error) {
	removed, err := s.projects.Delete(ctx, id)
	if err != nil {
		return models.Project{}, notFoundOr(err, ErrProjectNotFound, "delete project")
	}
	utils.LogInfo("Project deleted", map[string]interface{}{"project_id": id})
	return removed, nil
}

func (s *projectService) UpdateStatus(ctx context.Context, id string, status string) (models.Project, error) {
	next := models.ProjectStatus(status)
	if !next.Valid() {
		return models.Project{}, ErrInvalidProjectStatus
	}

	updated, err := s.projects.Modify(ctx, id, func(p *models.Project) error {
		s.setStatus(p, next)
		return nil
	})
	if err != nil {
		return models.Project{}, notFoundOr(err, ErrProjectNotFound, "update project status")
	}
	utils.LogInfo("Project status changed", map[string]interface{}{"project_id": id, "status": next})
	return updated, nil
}

// setStatus moves p to next; completing a project stamps its end date.
func (s *projectService) setStatus(p *models.Project, next models.ProjectStatus) {
	p.Status = next
	if next == models.ProjectCompleted {
		now := s.now()
		p.EndDate = &now
	}
}

func (s *projectService) Stats(ctx context.Context) (models.ProjectStats, error) {
	list, err := s.ListProjects(ctx)
	if err != nil {
		return models.ProjectStats{}, err
	}

	now := s.now()
	stats := models.ProjectStats{TotalProjects: len(list)}
	budgets := make([]float64, 0, len(list))
	spent := make([]float64, 0, len(list))
	for _, p := range list {
		switch p.Status {
		case models.ProjectInProgress:
			stats.ActiveProjects++
		case models.ProjectCompleted:
			stats.CompletedProjects++
		}
		if p.IsOverdue(now) {
			stats.OverdueProjects++
		}
		budgets = append(budgets, p.Budget)
		spent = append(spent, p.Spent)
	}

	totalBudget := sum(budgets...)
	totalSpent := sum(spent...)
	stats.TotalBudget = toFloat(totalBudget)
	stats.TotalSpent = toFloat(totalSpent)
	if totalBudget.IsPositive() {
		f, _ := totalSpent.Div(totalBudget).Mul(decimal.NewFromInt(100)).Round(1).Float64()
		stats.BudgetUtilization = f
	}
	return stats, nil
}
