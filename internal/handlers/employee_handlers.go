package handlers

import (
	"errors"
	"net/http"

	"ai_manager_backend/internal/services"
	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler holds the employee service.
type EmployeeHandler struct {
	employeeService services.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(es services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: es}
}

// GetEmployees handles GET /api/employees.
func (h *EmployeeHandler) GetEmployees(c *gin.Context) {
	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetEmployees: Error from employeeService.ListEmployees")
		respondInternal(c, "Failed to fetch employees")
		return
	}
	utils.RespondWithData(c, http.StatusOK, employees, gin.H{"count": len(employees)})
}

// GetEmployeeByID handles GET /api/employees/:id.
func (h *EmployeeHandler) GetEmployeeByID(c *gin.Context) {
	id := c.Param("id")
	employee, err := h.employeeService.GetEmployee(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			respondNotFound(c, "Employee not found", err)
			return
		}
		utils.LogError(err, "GetEmployeeByID: Error from employeeService.GetEmployee for ID "+id)
		respondInternal(c, "Failed to fetch employee")
		return
	}
	utils.RespondWithData(c, http.StatusOK, employee)
}

// CreateEmployee handles POST /api/employees.
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req services.CreateEmployeeRequest
	if !bindJSON(c, &req, "CreateEmployee") {
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateEmployee: Error from employeeService.CreateEmployee")
		respondInternal(c, "Failed to add employee")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, employee, gin.H{"message": "Employee added successfully"})
}

// UpdateEmployee handles PUT /api/employees/:id.
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	id := c.Param("id")
	var req services.UpdateEmployeeRequest
	if !bindJSON(c, &req, "UpdateEmployee") {
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			respondNotFound(c, "Employee not found", err)
			return
		}
		utils.LogError(err, "UpdateEmployee: Error from employeeService.UpdateEmployee for ID "+id)
		respondInternal(c, "Failed to update employee")
		return
	}
	utils.RespondWithData(c, http.StatusOK, employee, gin.H{"message": "Employee updated successfully"})
}

// DeleteEmployee handles DELETE /api/employees/:id.
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	id := c.Param("id")
	employee, err := h.employeeService.DeleteEmployee(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			respondNotFound(c, "Employee not found", err)
			return
		}
		utils.LogError(err, "DeleteEmployee: Error from employeeService.DeleteEmployee for ID "+id)
		respondInternal(c, "Failed to delete employee")
		return
	}
	utils.RespondWithData(c, http.StatusOK, employee, gin.H{"message": "Employee deleted successfully"})
}

// GetAttendance handles GET /api/employees/:id/attendance.
func (h *EmployeeHandler) GetAttendance(c *gin.Context) {
	id := c.Param("id")
	attendance, err := h.employeeService.GetAttendance(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			respondNotFound(c, "Employee not found", err)
			return
		}
		utils.LogError(err, "GetAttendance: Error from employeeService.GetAttendance for ID "+id)
		respondInternal(c, "Failed to fetch attendance")
		return
	}
	utils.RespondWithData(c, http.StatusOK, attendance)
}
