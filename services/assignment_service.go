package services

import (
	"context"
	"errors"
	"log"

	"github.com/proyectos-api/apperror"
	"github.com/proyectos-api/dto"
	"github.com/proyectos-api/models"
	"github.com/proyectos-api/repositories"
)

// AssignmentService manages which employees are staffed on which projects
type AssignmentService struct {
	store repositories.Store
}

// NewAssignmentService creates a new assignment service instance
func NewAssignmentService(store repositories.Store) *AssignmentService {
	return &AssignmentService{store: store}
}

// AssignEmployee staffs an employee on a project and returns the updated project
func (s *AssignmentService) AssignEmployee(ctx context.Context, projectID, employeeID uint) (dto.ProjectDetail, error) {
	var detail dto.ProjectDetail
	err := s.store.Transaction(ctx, func(tx repositories.Tx) error {
		project, err := findProject(tx, projectID)
		if err != nil {
			return err
		}

		employee, err := findEmployee(tx, employeeID)
		if err != nil {
			return err
		}

		assigned, err := tx.Assignments().Exists(projectID, employeeID)
		if err != nil {
			return apperror.Internal(err, "failed to check assignment")
		}
		if assigned {
			return apperror.Conflict("employee '%s' is already assigned to project '%s'", employee.Name, project.Name)
		}

		err = tx.Assignments().Create(models.Assignment{EmployeeID: employeeID, ProjectID: projectID})
		if err != nil {
			if errors.Is(err, repositories.ErrForeignKey) {
				return apperror.NotFound("project %d or employee %d not found", projectID, employeeID)
			}
			return writeError(err, "employee '%s' is already assigned to project '%s'", employee.Name, project.Name)
		}

		log.Printf("Assigned employee %d to project %d", employeeID, projectID)

		detail, err = loadProjectDetail(tx, project)
		return err
	})

	return detail, err
}

// UnassignEmployee removes an employee from a project's staff
func (s *AssignmentService) UnassignEmployee(ctx context.Context, projectID, employeeID uint) error {
	return s.store.Transaction(ctx, func(tx repositories.Tx) error {
		if _, err := findProject(tx, projectID); err != nil {
			return err
		}

		err := tx.Assignments().Delete(projectID, employeeID)
		if errors.Is(err, repositories.ErrNotFound) {
			return apperror.NotFound("employee %d is not assigned to project %d", employeeID, projectID)
		}
		if err != nil {
			return apperror.Internal(err, "failed to unassign employee %d from project %d", employeeID, projectID)
		}

		log.Printf("Unassigned employee %d from project %d", employeeID, projectID)
		return nil
	})
}

// ListProjectEmployees retrieves the employees staffed on a project
func (s *AssignmentService) ListProjectEmployees(ctx context.Context, projectID uint) ([]dto.EmployeeSummary, error) {
	var staff []dto.EmployeeSummary
	err := s.store.Transaction(ctx, func(tx repositories.Tx) error {
		if _, err := findProject(tx, projectID); err != nil {
			return err
		}

		employees, err := tx.Assignments().FindEmployeesByProjectID(projectID)
		if err != nil {
			return apperror.Internal(err, "failed to load staff of project %d", projectID)
		}

		staff = dto.NewEmployeeSummaries(employees)
		return nil
	})

	return staff, err
}

// ListEmployeeProjects retrieves the projects an employee is staffed on and the ones they manage
func (s *AssignmentService) ListEmployeeProjects(ctx context.Context, employeeID uint) (dto.EmployeeProjects, error) {
	var result dto.EmployeeProjects
	err := s.store.Transaction(ctx, func(tx repositories.Tx) error {
		employee, err := findEmployee(tx, employeeID)
		if err != nil {
			return err
		}

		staffed, err := tx.Assignments().FindProjectsByEmployeeID(employeeID)
		if err != nil {
			return apperror.Internal(err, "failed to load projects of employee %d", employeeID)
		}

		managed, err := tx.Projects().FindByManagerID(employeeID)
		if err != nil {
			return apperror.Internal(err, "failed to load projects managed by employee %d", employeeID)
		}

		result = dto.NewEmployeeProjects(employee, staffed, managed)
		return nil
	})

	return result, err
}
