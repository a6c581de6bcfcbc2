package repositories

import (
	"math"

	"github.com/proyectos-api/dto"
	"github.com/proyectos-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// projectRepository handles database operations for projects
type projectRepository struct {
	db *gorm.DB
}

// Create inserts a new project into the database
func (r *projectRepository) Create(project models.Project) (models.Project, error) {
	result := r.db.Omit(clause.Associations).Create(&project)
	return project, translateError(result.Error)
}

// FindByID retrieves a project by its ID
func (r *projectRepository) FindByID(id uint) (models.Project, error) {
	var project models.Project
	result := r.db.First(&project, "id = ?", id)
	return project, translateError(result.Error)
}

// FindAll retrieves projects matching the status and inclusive budget range
func (r *projectRepository) FindAll(filter dto.ProjectFilter) ([]models.Project, error) {
	var projects []models.Project

	db := r.db.Model(&models.Project{})

	if filter.Status != nil {
		db = db.Where("estado = ?", *filter.Status)
	}

	db = db.Where("presupuesto >= ?", filter.BudgetMin)

	// An unbounded maximum is left out of the query rather than bound as Infinity
	if !math.IsInf(filter.BudgetMax, 1) {
		db = db.Where("presupuesto <= ?", filter.BudgetMax)
	}

	result := db.Order("id").Find(&projects)
	return projects, translateError(result.Error)
}

// FindByManagerID retrieves all projects managed by an employee
func (r *projectRepository) FindByManagerID(managerID uint) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Where("gerente_id = ?", managerID).Order("id").Find(&projects)
	return projects, translateError(result.Error)
}

// ExistsByName checks if a project with the given name exists
func (r *projectRepository) ExistsByName(name string) (bool, error) {
	var count int64
	result := r.db.Model(&models.Project{}).Where("nombre = ?", name).Count(&count)
	return count > 0, translateError(result.Error)
}

// Update modifies an existing project
func (r *projectRepository) Update(project models.Project) error {
	result := r.db.Omit(clause.Associations).Save(&project)
	return translateError(result.Error)
}

// Delete removes a project from the database
func (r *projectRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
