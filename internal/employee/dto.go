package employee

import (
	"encoding/json"
	"strings"
	"time"

	errors "github.com/frahmantamala/employee-management/internal"
	"github.com/frahmantamala/employee-management/internal/core/common/validation"
)

// EmployeeDTO is the request payload for create and update. Salary is a
// json.Number so both `"salary": 50000` and `"salary": "50000"` are accepted,
// while non-numeric input is still rejected by validation.
type EmployeeDTO struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Department  string      `json:"department"`
	Designation string      `json:"designation"`
	Salary      json.Number `json:"salary"`
	JoiningDate *time.Time  `json:"joining_date,omitempty"`
}

// Validate checks every field and aggregates all failures into one error.
func (d *EmployeeDTO) Validate() *errors.AppError {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Department = strings.TrimSpace(d.Department)
	d.Designation = strings.TrimSpace(d.Designation)

	v := validation.NewValidator()
	v.Field("name", d.Name).Required().Text(errors.ErrCodeInvalidName)
	v.Field("email", d.Email).Required().Email()
	v.Field("department", d.Department).Required().Text(errors.ErrCodeInvalidDepartment)
	v.Field("designation", d.Designation).Required().Text(errors.ErrCodeInvalidDesignation)
	v.Field("salary", d.Salary).Required().PositiveInt(errors.ErrCodeInvalidSalary)
	return v.Validate()
}

// SalaryValue returns the parsed salary. Only meaningful after Validate.
func (d EmployeeDTO) SalaryValue() int64 {
	return validation.ParseSalary(d.Salary)
}
