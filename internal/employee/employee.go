package employee

import (
	"time"

	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
)

// Employee is the domain model. OwnerUserID scopes the record to the user who
// created it and is never serialized to clients.
type Employee struct {
	ID          int64     `json:"id"`
	OwnerUserID int64     `json:"-"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Department  string    `json:"department"`
	Designation string    `json:"designation"`
	Salary      int64     `json:"salary"`
	JoiningDate time.Time `json:"joining_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewEmployee(ownerID int64, dto EmployeeDTO) *Employee {
	joining := time.Now()
	if dto.JoiningDate != nil {
		joining = *dto.JoiningDate
	}

	return &Employee{
		OwnerUserID: ownerID,
		Name:        dto.Name,
		Email:       dto.Email,
		Department:  dto.Department,
		Designation: dto.Designation,
		Salary:      dto.SalaryValue(),
		JoiningDate: joining,
	}
}

// ApplyUpdate replaces the mutable fields from the DTO. A full replace per
// request, not a patch.
func (e *Employee) ApplyUpdate(dto EmployeeDTO) {
	e.Name = dto.Name
	e.Email = dto.Email
	e.Department = dto.Department
	e.Designation = dto.Designation
	e.Salary = dto.SalaryValue()
	if dto.JoiningDate != nil {
		e.JoiningDate = *dto.JoiningDate
	}
}

func ToDataModel(e *Employee) *employeeDatamodel.Employee {
	return &employeeDatamodel.Employee{
		ID:          e.ID,
		OwnerUserID: e.OwnerUserID,
		Name:        e.Name,
		Email:       e.Email,
		Department:  e.Department,
		Designation: e.Designation,
		Salary:      e.Salary,
		JoiningDate: e.JoiningDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModel(e *employeeDatamodel.Employee) *Employee {
	return &Employee{
		ID:          e.ID,
		OwnerUserID: e.OwnerUserID,
		Name:        e.Name,
		Email:       e.Email,
		Department:  e.Department,
		Designation: e.Designation,
		Salary:      e.Salary,
		JoiningDate: e.JoiningDate,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromDataModelSlice(employees []*employeeDatamodel.Employee) []*Employee {
	result := make([]*Employee, len(employees))
	for i, e := range employees {
		result[i] = FromDataModel(e)
	}
	return result
}
