package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai_manager_backend/internal/models"
	"ai_manager_backend/internal/repositories"
	"ai_manager_backend/pkg/utils"
)

var ErrEmployeeNotFound = errors.New("employee not found")

const defaultAvatar = "/avatars/default.jpg"

// CreateEmployeeRequest is the body of POST /api/employees. Numbers may arrive as strings.
type CreateEmployeeRequest struct {
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Position   string           `json:"position"`
	Department string           `json:"department"`
	Salary     *utils.FlexFloat `json:"salary"`
	HourlyRate *utils.FlexFloat `json:"hourlyRate"`
	Phone      string           `json:"phone"`
	Address    string           `json:"address"`
}

// UpdateEmployeeRequest holds the fields a PUT may change; nil means unchanged.
type UpdateEmployeeRequest struct {
	Name       *string          `json:"name"`
	Email      *string          `json:"email"`
	Position   *string          `json:"position"`
	Department *string          `json:"department"`
	Salary     *utils.FlexFloat `json:"salary"`
	HourlyRate *utils.FlexFloat `json:"hourlyRate"`
	Phone      *string          `json:"phone"`
	Address    *string          `json:"address"`
	Status     *string          `json:"status"`
	HireDate   *string          `json:"hireDate"`
	Avatar     *string          `json:"avatar"`
}

type EmployeeService interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	GetEmployee(ctx context.Context, id string) (models.Employee, error)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id string) (models.Employee, error)
	GetAttendance(ctx context.Context, id string) ([]models.AttendanceEntry, error)
}

type employeeService struct {
	employees repositories.Collection[models.Employee]
	now       func() time.Time
}

// NewEmployeeService creates a new instance of EmployeeService.
func NewEmployeeService(employees repositories.Collection[models.Employee]) EmployeeService {
	return &employeeService{employees: employees, now: time.Now}
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	list, err := s.employees.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return list, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id string) (models.Employee, error) {
	emp, err := s.employees.Get(ctx, id)
	if err != nil {
		return models.Employee{}, notFoundOr(err, ErrEmployeeNotFound, "get employee")
	}
	return emp, nil
}

func (s *employeeService) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (models.Employee, error) {
	emp := models.Employee{
		ID:         newID("emp"),
		Name:       req.Name,
		Email:      req.Email,
		Position:   req.Position,
		Department: req.Department,
		Phone:      req.Phone,
		Address:    req.Address,
		HireDate:   s.now(),
		Status:     models.EmployeeActive,
		Avatar:     defaultAvatar,
		Attendance: []models.AttendanceEntry{},
	}
	if req.Salary != nil {
		emp.Salary = req.Salary.Float64()
	}
	if req.HourlyRate != nil {
		emp.HourlyRate = req.HourlyRate.Float64()
	}

	created, err := s.employees.Create(ctx, emp)
	if err != nil {
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	utils.LogInfo("Employee created", map[string]interface{}{"employee_id": created.ID})
	return created, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (models.Employee, error) {
	hireDate := parseOptionalDateTime(req.HireDate, "hireDate")

	updated, err := s.employees.Modify(ctx, id, func(emp *models.Employee) error {
		applyString(&emp.Name, req.Name)
		applyString(&emp.Email, req.Email)
		applyString(&emp.Position, req.Position)
		applyString(&emp.Department, req.Department)
		applyString(&emp.Phone, req.Phone)
		applyString(&emp.Address, req.Address)
		applyString(&emp.Avatar, req.Avatar)
		if req.Salary != nil {
			emp.Salary = req.Salary.Float64()
		}
		if req.HourlyRate != nil {
			emp.HourlyRate = req.HourlyRate.Float64()
		}
		if req.Status != nil {
			emp.Status = models.EmployeeStatus(*req.Status)
		}
		if hireDate != nil {
			emp.HireDate = *hireDate
		}
		return nil
	})
	if err != nil {
		return models.Employee{}, notFoundOr(err, ErrEmployeeNotFound, "update employee")
	}
	return updated, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, id string) (models.Employee, error) {
	removed, err := s.employees.Delete(ctx, id)
	if err != nil {
		return models.Employee{}, notFoundOr(err, ErrEmployeeNotFound, "delete employee")
	}
	utils.LogInfo("Employee deleted", map[string]interface{}{"employee_id": id})
	return removed, nil
}

func (s *employeeService) GetAttendance(ctx context.Context, id string) ([]models.AttendanceEntry, error) {
	emp, err := s.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp.Attendance == nil {
		return []models.AttendanceEntry{}, nil
	}
	return emp.Attendance, nil
}
