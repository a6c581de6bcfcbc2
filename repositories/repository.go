package repositories

import (
	"context"
	"errors"

	"github.com/proyectos-api/dto"
	"github.com/proyectos-api/models"
)

var (
	// ErrNotFound is returned when a lookup or delete targets a missing row
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a primary key or unique index would be violated
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrForeignKey is returned when a write would break a foreign key reference
	ErrForeignKey = errors.New("foreign key violation")
)

// Store opens request-scoped transactions over the entity tables
type Store interface {
	// Transaction runs fn inside one transaction. It commits when fn returns nil
	// and rolls back on error or panic.
	Transaction(ctx context.Context, fn func(tx Tx) error) error
	Ping(ctx context.Context) error
}

// Tx exposes the repositories bound to a single transaction
type Tx interface {
	Employees() EmployeeRepository
	Projects() ProjectRepository
	Assignments() AssignmentRepository
}

// EmployeeRepository handles storage operations for employees
type EmployeeRepository interface {
	Create(employee models.Employee) (models.Employee, error)
	FindByID(id uint) (models.Employee, error)
	FindAll(filter dto.EmployeeFilter) ([]models.Employee, error)
	Update(employee models.Employee) error
	Delete(id uint) error
}

// ProjectRepository handles storage operations for projects
type ProjectRepository interface {
	Create(project models.Project) (models.Project, error)
	FindByID(id uint) (models.Project, error)
	FindAll(filter dto.ProjectFilter) ([]models.Project, error)
	FindByManagerID(managerID uint) ([]models.Project, error)
	ExistsByName(name string) (bool, error)
	Update(project models.Project) error
	Delete(id uint) error
}

// AssignmentRepository handles storage operations for the employee-project link
type AssignmentRepository interface {
	Exists(projectID, employeeID uint) (bool, error)
	Create(assignment models.Assignment) error
	Delete(projectID, employeeID uint) error
	DeleteByProjectID(projectID uint) error
	DeleteByEmployeeID(employeeID uint) error
	FindEmployeesByProjectID(projectID uint) ([]models.Employee, error)
	FindProjectsByEmployeeID(employeeID uint) ([]models.Project, error)
}
