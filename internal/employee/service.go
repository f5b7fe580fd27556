package employee

import (
	"log/slog"

	"github.com/frahmantamala/employee-management/internal"
)

// Repository defines the data access methods for employees. Every method
// takes the owner id: queries are always scoped to the owning user.
type Repository interface {
	Create(emp *Employee) error
	ListByOwner(ownerID int64) ([]*Employee, error)
	GetByIDForOwner(id, ownerID int64) (*Employee, error)
	Update(emp *Employee) error
	Delete(id, ownerID int64) error
	EmailExistsForOwner(ownerID int64, email string, excludeID int64) (bool, error)
}

// Service handles employee business logic.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateEmployee validates the payload and stores a new record owned by the
// calling user. Duplicate email within the owner's records conflicts.
func (s *Service) CreateEmployee(ownerID int64, dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee validation failed", "error", err, "owner_id", ownerID)
		return nil, err
	}

	exists, err := s.repo.EmailExistsForOwner(ownerID, dto.Email, 0)
	if err != nil {
		s.logger.Error("duplicate check failed", "error", err, "owner_id", ownerID)
		return nil, internal.NewInternalError("failed to check employee email", err)
	}
	if exists {
		return nil, internal.ErrEmployeeEmailExists
	}

	emp := NewEmployee(ownerID, dto)
	if err := s.repo.Create(emp); err != nil {
		s.logger.Error("failed to create employee", "error", err, "owner_id", ownerID)
		return nil, err
	}

	s.logger.Info("employee created",
		"employee_id", emp.ID,
		"owner_id", ownerID)

	return emp, nil
}

// ListEmployees returns all records owned by the user. Empty slice when none.
func (s *Service) ListEmployees(ownerID int64) ([]*Employee, error) {
	employees, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err, "owner_id", ownerID)
		return nil, err
	}

	return employees, nil
}

// UpdateEmployee replaces the mutable fields of an owned record. A record
// that does not exist and a record owned by someone else both report not
// found, so non-owners cannot probe for existence.
func (s *Service) UpdateEmployee(id, ownerID int64, dto EmployeeDTO) (*Employee, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Warn("employee validation failed", "error", err, "employee_id", id, "owner_id", ownerID)
		return nil, err
	}

	emp, err := s.repo.GetByIDForOwner(id, ownerID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExistsForOwner(ownerID, dto.Email, id)
	if err != nil {
		s.logger.Error("duplicate check failed", "error", err, "owner_id", ownerID)
		return nil, internal.NewInternalError("failed to check employee email", err)
	}
	if exists {
		return nil, internal.ErrEmployeeEmailExists
	}

	emp.ApplyUpdate(dto)
	if err := s.repo.Update(emp); err != nil {
		s.logger.Error("failed to update employee", "error", err, "employee_id", id, "owner_id", ownerID)
		return nil, err
	}

	s.logger.Info("employee updated", "employee_id", id, "owner_id", ownerID)

	return emp, nil
}

// DeleteEmployee removes an owned record. Deleting an id that is already gone
// reports not found every time.
func (s *Service) DeleteEmployee(id, ownerID int64) error {
	if err := s.repo.Delete(id, ownerID); err != nil {
		s.logger.Warn("failed to delete employee", "error", err, "employee_id", id, "owner_id", ownerID)
		return err
	}

	s.logger.Info("employee deleted", "employee_id", id, "owner_id", ownerID)
	return nil
}
