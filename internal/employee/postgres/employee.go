package postgres

import (
	"errors"
	"time"

	"github.com/frahmantamala/employee-management/internal"
	employeeDatamodel "github.com/frahmantamala/employee-management/internal/core/datamodel/employee"
	"github.com/frahmantamala/employee-management/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements employee.Repository using GORM. Every query
// filters by owner_user_id so records are invisible outside their owner.
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.Repository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(emp *employee.Employee) error {
	record := employee.ToDataModel(emp)
	if err := r.db.Create(record).Error; err != nil {
		return internal.NewInternalError("failed to create employee", err)
	}
	emp.ID = record.ID
	emp.CreatedAt = record.CreatedAt
	emp.UpdatedAt = record.UpdatedAt
	return nil
}

func (r *EmployeeRepository) ListByOwner(ownerID int64) ([]*employee.Employee, error) {
	var records []*employeeDatamodel.Employee
	err := r.db.Where("owner_user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, internal.NewInternalError("failed to list employees", err)
	}
	return employee.FromDataModelSlice(records), nil
}

func (r *EmployeeRepository) GetByIDForOwner(id, ownerID int64) (*employee.Employee, error) {
	var record employeeDatamodel.Employee
	err := r.db.Where("id = ? AND owner_user_id = ?", id, ownerID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrEmployeeNotFound
		}
		return nil, internal.NewInternalError("failed to get employee", err)
	}
	return employee.FromDataModel(&record), nil
}

func (r *EmployeeRepository) Update(emp *employee.Employee) error {
	emp.UpdatedAt = time.Now()
	result := r.db.Model(&employeeDatamodel.Employee{}).
		Where("id = ? AND owner_user_id = ?", emp.ID, emp.OwnerUserID).
		Updates(map[string]interface{}{
			"name":         emp.Name,
			"email":        emp.Email,
			"department":   emp.Department,
			"designation":  emp.Designation,
			"salary":       emp.Salary,
			"joining_date": emp.JoiningDate,
			"updated_at":   emp.UpdatedAt,
		})
	if result.Error != nil {
		return internal.NewInternalError("failed to update employee", result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(id, ownerID int64) error {
	result := r.db.Where("id = ? AND owner_user_id = ?", id, ownerID).
		Delete(&employeeDatamodel.Employee{})
	if result.Error != nil {
		return internal.NewInternalError("failed to delete employee", result.Error)
	}
	if result.RowsAffected == 0 {
		return internal.ErrEmployeeNotFound
	}
	return nil
}

// EmailExistsForOwner reports whether the owner already has an employee with
// this email. excludeID skips the record being updated.
func (r *EmployeeRepository) EmailExistsForOwner(ownerID int64, email string, excludeID int64) (bool, error) {
	var count int64
	q := r.db.Model(&employeeDatamodel.Employee{}).
		Where("owner_user_id = ? AND email = ?", ownerID, email)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
