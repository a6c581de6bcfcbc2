package services

import (
	"errors"

	"github.com/proyectos-api/apperror"
	"github.com/proyectos-api/dto"
	"github.com/proyectos-api/models"
	"github.com/proyectos-api/repositories"
)

func findEmployee(tx repositories.Tx, id uint) (models.Employee, error) {
	employee, err := tx.Employees().FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return employee, apperror.NotFound("employee %d not found", id)
	}
	if err != nil {
		return employee, apperror.Internal(err, "failed to load employee %d", id)
	}
	return employee, nil
}

func findManager(tx repositories.Tx, id uint) (models.Employee, error) {
	manager, err := tx.Employees().FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return manager, apperror.NotFound("manager %d not found", id)
	}
	if err != nil {
		return manager, apperror.Internal(err, "failed to load manager %d", id)
	}
	return manager, nil
}

func findProject(tx repositories.Tx, id uint) (models.Project, error) {
	project, err := tx.Projects().FindByID(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return project, apperror.NotFound("project %d not found", id)
	}
	if err != nil {
		return project, apperror.Internal(err, "failed to load project %d", id)
	}
	return project, nil
}

// ensureNameAvailable fails with Conflict when another project already uses name
func ensureNameAvailable(tx repositories.Tx, name string) error {
	exists, err := tx.Projects().ExistsByName(name)
	if err != nil {
		return apperror.Internal(err, "failed to check project name")
	}
	if exists {
		return apperror.Conflict("a project named '%s' already exists", name)
	}
	return nil
}

// loadProjectDetail resolves the manager and staff of project
func loadProjectDetail(tx repositories.Tx, project models.Project) (dto.ProjectDetail, error) {
	manager, err := findManager(tx, project.ManagerID)
	if err != nil {
		return dto.ProjectDetail{}, err
	}

	staff, err := tx.Assignments().FindEmployeesByProjectID(project.ID)
	if err != nil {
		return dto.ProjectDetail{}, apperror.Internal(err, "failed to load staff of project %d", project.ID)
	}

	return dto.NewProjectDetail(project, manager, staff), nil
}

// writeError classifies a failed repository write
func writeError(err error, format string, args ...any) error {
	switch {
	case errors.Is(err, repositories.ErrDuplicateKey):
		return apperror.Conflict(format, args...)
	case errors.Is(err, repositories.ErrNotFound):
		return apperror.NotFound(format, args...)
	default:
		return apperror.Internal(err, format, args...)
	}
}
