package models

import "time"

// EmployeeStatus is the employment state shown on the HR screens.
type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
)

// AttendanceEntry is one day of attendance for an employee.
type AttendanceEntry struct {
	Date    time.Time  `json:"date"`
	Present bool       `json:"present"`
	TimeIn  *time.Time `json:"timeIn,omitempty"`
	TimeOut *time.Time `json:"timeOut,omitempty"`
}

// Employee represents a member of staff.
type Employee struct {
	ID         string            `json:"_id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Position   string            `json:"position"`
	Department string            `json:"department"`
	Salary     float64           `json:"salary"`
	HourlyRate float64           `json:"hourlyRate,omitempty"`
	Phone      string            `json:"phone"`
	Address    string            `json:"address"`
	HireDate   time.Time         `json:"hireDate"`
	Status     EmployeeStatus    `json:"status"`
	Avatar     string            `json:"avatar,omitempty"`
	Attendance []AttendanceEntry `json:"attendance"`
}

// RecordID implements repositories.Record.
func (e Employee) RecordID() string { return e.ID }

// IsActive reports whether the employee counts as active staff.
func (e Employee) IsActive() bool { return e.Status == EmployeeActive }
