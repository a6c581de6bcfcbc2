package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/proyectos-api/apperror"
	"github.com/proyectos-api/dto"
	"github.com/proyectos-api/models"
	"github.com/proyectos-api/repositories"
)

// EmployeeService handles business logic for employees
type EmployeeService struct {
	store repositories.Store
}

// NewEmployeeService creates a new employee service instance
func NewEmployeeService(store repositories.Store) *EmployeeService {
	return &EmployeeService{store: store}
}

// CreateEmployee validates and stores a new employee. Employee names need not be unique.
func (s *EmployeeService) CreateEmployee(ctx context.Context, req dto.EmployeeRequest) (models.Employee, error) {
	employee := req.ToModel()
	if err := employee.Prepare(); err != nil {
		return models.Employee{}, err
	}

	var created models.Employee
	err := s.store.Transaction(ctx, func(tx repositories.Tx) error {
		var err error
		created, err = tx.Employees().Create(employee)
		if err != nil {
			return apperror.Internal(err, "failed to create employee")
		}
		return nil
	})

	return created, err
}

// ListEmployees retrieves employees matching the filter in storage order
func (s *EmployeeService) ListEmployees(ctx context.Context, filter dto.EmployeeFilter) ([]models.Employee, error) {
	var employees []models.Employee
	err := s.store.Transaction(ctx, func(tx repositories.Tx) error {
		var err error
		employees, err = tx.Employees().FindAll(filter)
		if err != nil {
			return apperror.Internal(err, "failed to list employees")
		}
		return nil
	})

	return employees, err
}

// GetEmployee retrieves an employee with the projects they are staffed on and manage
func (s *EmployeeService) GetEmployee(ctx context.Context, id uint) (dto.EmployeeDetail, error) {
	var detail dto.EmployeeDetail
	err := s.store.Transaction(ctx, func(tx repositories.Tx) error {
		employee, err := findEmployee(tx, id)
		if err != nil {
			return err
		}

		staffed, err := tx.Assignments().FindProjectsByEmployeeID(id)
		if err != nil {
			return apperror.Internal(err, "failed to load projects of employee %d", id)
		}

		managed, err := tx.Projects().FindByManagerID(id)
		if err != nil {
			return apperror.Internal(err, "failed to load projects managed by employee %d", id)
		}

		detail = dto.EmployeeDetail{
			EmployeeSummary: dto.NewEmployeeSummary(employee),
			Projects:        dto.NewProjectSummaries(staffed),
			ManagedProjects: dto.NewProjectSummaries(managed),
		}
		return nil
	})

	return detail, err
}

// UpdateEmployee replaces name, specialty, salary and status of an employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, id uint, req dto.EmployeeRequest) (models.Employee, error) {
	updated := req.ToModel()
	updated.ID = id
	if err := updated.Prepare(); err != nil {
		return models.Employee{}, err
	}

	err := s.store.Transaction(ctx, func(tx repositories.Tx) error {
		if _, err := findEmployee(tx, id); err != nil {
			return err
		}

		if err := tx.Employees().Update(updated); err != nil {
			return writeError(err, "failed to update employee %d", id)
		}
		return nil
	})
	if err != nil {
		return models.Employee{}, err
	}

	return updated, nil
}

// DeleteEmployee removes an employee and their assignments.
// An employee who manages any project cannot be deleted.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id uint) error {
	return s.store.Transaction(ctx, func(tx repositories.Tx) error {
		if _, err := findEmployee(tx, id); err != nil {
			return err
		}

		managed, err := tx.Projects().FindByManagerID(id)
		if err != nil {
			return apperror.Internal(err, "failed to load projects managed by employee %d", id)
		}

		if len(managed) > 0 {
			names := make([]string, 0, len(managed))
			for _, p := range managed {
				names = append(names, p.Name)
			}
			return apperror.Conflict("employee cannot be deleted, they manage: %s", strings.Join(names, "; "))
		}

		if err := tx.Assignments().DeleteByEmployeeID(id); err != nil {
			return apperror.Internal(err, "failed to remove assignments of employee %d", id)
		}

		if err := tx.Employees().Delete(id); err != nil {
			if errors.Is(err, repositories.ErrForeignKey) {
				return apperror.Conflict("employee %d is still referenced as a manager", id)
			}
			return writeError(err, "failed to delete employee %d", id)
		}

		log.Printf("Deleted employee %d and their assignments", id)
		return nil
	})
}
