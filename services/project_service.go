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

// ProjectService handles business logic for projects
type ProjectService struct {
	store repositories.Store
}

// NewProjectService creates a new project service instance
func NewProjectService(store repositories.Store) *ProjectService {
	return &ProjectService{store: store}
}

// CreateProject creates a project whose manager exists and whose name is not taken
func (s *ProjectService) CreateProject(ctx context.Context, req dto.ProjectRequest) (models.Project, error) {
	project, err := projectFromRequest(req)
	if err != nil {
		return models.Project{}, err
	}

	var created models.Project
	err = s.store.Transaction(ctx, func(tx repositories.Tx) error {
		if _, err := findManager(tx, project.ManagerID); err != nil {
			return err
		}

		if err := ensureNameAvailable(tx, project.Name); err != nil {
			return err
		}

		var err error
		created, err = tx.Projects().Create(project)
		if err != nil {
			// The name check above is not atomic with the insert; the unique index is the backstop
			if errors.Is(err, repositories.ErrForeignKey) {
				return apperror.NotFound("manager %d not found", project.ManagerID)
			}
			return writeError(err, "a project named '%s' already exists", project.Name)
		}
		return nil
	})

	return created, err
}

// ListProjects retrieves projects by status and inclusive budget range
func (s *ProjectService) ListProjects(ctx context.Context, filter dto.ProjectFilter) ([]models.Project, error) {
	var projects []models.Project
	err := s.store.Transaction(ctx, func(tx repositories.Tx) error {
		var err error
		projects, err = tx.Projects().FindAll(filter)
		if err != nil {
			return apperror.Internal(err, "failed to list projects")
		}
		return nil
	})

	return projects, err
}

// GetProject retrieves a project with its manager and staff
func (s *ProjectService) GetProject(ctx context.Context, id uint) (dto.ProjectDetail, error) {
	var detail dto.ProjectDetail
	err := s.store.Transaction(ctx, func(tx repositories.Tx) error {
		project, err := findProject(tx, id)
		if err != nil {
			return err
		}

		detail, err = loadProjectDetail(tx, project)
		return err
	})

	return detail, err
}

// UpdateProject replaces every field of an existing project
func (s *ProjectService) UpdateProject(ctx context.Context, id uint, req dto.ProjectRequest) (models.Project, error) {
	updated, err := projectFromRequest(req)
	if err != nil {
		return models.Project{}, err
	}
	updated.ID = id

	err = s.store.Transaction(ctx, func(tx repositories.Tx) error {
		current, err := findProject(tx, id)
		if err != nil {
			return err
		}

		return s.save(tx, current, updated)
	})
	if err != nil {
		return models.Project{}, err
	}

	return updated, nil
}

// PatchProject applies only the supplied fields of patch to an existing project
func (s *ProjectService) PatchProject(ctx context.Context, id uint, patch dto.ProjectPatchRequest) (models.Project, error) {
	var patched models.Project
	err := s.store.Transaction(ctx, func(tx repositories.Tx) error {
		current, err := findProject(tx, id)
		if err != nil {
			return err
		}

		if patch.IsEmpty() {
			return apperror.InvalidRequest("no fields supplied to update")
		}

		// Work on a copy so a failed check leaves the stored project untouched
		patched = current
		patch.ApplyTo(&patched)
		if err := patched.Prepare(); err != nil {
			return err
		}

		return s.save(tx, current, patched)
	})
	if err != nil {
		return models.Project{}, err
	}

	return patched, nil
}

// projectFromRequest builds a normalized project from req.
// gerente_id must be present; whether it names an employee is checked against the store.
func projectFromRequest(req dto.ProjectRequest) (models.Project, error) {
	project := req.ToModel()
	if err := project.Prepare(); err != nil {
		return models.Project{}, err
	}
	if req.ManagerID == nil {
		return models.Project{}, apperror.Validation("gerente_id", nil, "gerente_id is required")
	}
	return project, nil
}

// save checks the manager and name of updated against current and writes it
func (s *ProjectService) save(tx repositories.Tx, current, updated models.Project) error {
	if _, err := findManager(tx, updated.ManagerID); err != nil {
		return err
	}

	if updated.Name != current.Name {
		if err := ensureNameAvailable(tx, updated.Name); err != nil {
			return err
		}
	}

	if err := tx.Projects().Update(updated); err != nil {
		if errors.Is(err, repositories.ErrForeignKey) {
			return apperror.NotFound("manager %d not found", updated.ManagerID)
		}
		return writeError(err, "a project named '%s' already exists", updated.Name)
	}
	return nil
}

// DeleteProject removes a project and every assignment to it
func (s *ProjectService) DeleteProject(ctx context.Context, id uint) error {
	return s.store.Transaction(ctx, func(tx repositories.Tx) error {
		if _, err := findProject(tx, id); err != nil {
			return err
		}

		if err := tx.Assignments().DeleteByProjectID(id); err != nil {
			return apperror.Internal(err, "failed to remove assignments of project %d", id)
		}

		if err := tx.Projects().Delete(id); err != nil {
			return writeError(err, "failed to delete project %d", id)
		}

		log.Printf("Deleted project %d and its assignments", id)
		return nil
	})
}
