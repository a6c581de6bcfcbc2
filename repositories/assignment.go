package repositories

import (
	"github.com/proyectos-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// assignmentRepository handles database operations for the empleado_proyecto link table
type assignmentRepository struct {
	db *gorm.DB
}

// Exists checks if the employee is already staffed on the project
func (r *assignmentRepository) Exists(projectID, employeeID uint) (bool, error) {
	var count int64
	result := r.db.Model(&models.Assignment{}).
		Where("proyecto_id = ? AND empleado_id = ?", projectID, employeeID).
		Count(&count)
	return count > 0, translateError(result.Error)
}

// Create inserts a new assignment
func (r *assignmentRepository) Create(assignment models.Assignment) error {
	result := r.db.Omit(clause.Associations).Create(&assignment)
	return translateError(result.Error)
}

// Delete removes a single assignment
func (r *assignmentRepository) Delete(projectID, employeeID uint) error {
	result := r.db.Where("proyecto_id = ? AND empleado_id = ?", projectID, employeeID).Delete(&models.Assignment{})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByProjectID removes every assignment of a project
func (r *assignmentRepository) DeleteByProjectID(projectID uint) error {
	result := r.db.Where("proyecto_id = ?", projectID).Delete(&models.Assignment{})
	return translateError(result.Error)
}

// DeleteByEmployeeID removes every assignment of an employee
func (r *assignmentRepository) DeleteByEmployeeID(employeeID uint) error {
	result := r.db.Where("empleado_id = ?", employeeID).Delete(&models.Assignment{})
	return translateError(result.Error)
}

// FindEmployeesByProjectID retrieves the employees staffed on a project
func (r *assignmentRepository) FindEmployeesByProjectID(projectID uint) ([]models.Employee, error) {
	var employees []models.Employee
	result := r.db.Model(&models.Employee{}).
		Select("empleado.*").
		Joins("JOIN empleado_proyecto ON empleado_proyecto.empleado_id = empleado.id").
		Where("empleado_proyecto.proyecto_id = ?", projectID).
		Order("empleado.id").
		Find(&employees)
	return employees, translateError(result.Error)
}

// FindProjectsByEmployeeID retrieves the projects an employee is staffed on
func (r *assignmentRepository) FindProjectsByEmployeeID(employeeID uint) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.Model(&models.Project{}).
		Select("proyecto.*").
		Joins("JOIN empleado_proyecto ON empleado_proyecto.proyecto_id = proyecto.id").
		Where("empleado_proyecto.empleado_id = ?", employeeID).
		Order("proyecto.id").
		Find(&projects)
	return projects, translateError(result.Error)
}
