package repositories

import (
	"github.com/proyectos-api/dto"
	"github.com/proyectos-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// employeeRepository handles database operations for employees
type employeeRepository struct {
	db *gorm.DB
}

// Create inserts a new employee into the database
func (r *employeeRepository) Create(employee models.Employee) (models.Employee, error) {
	result := r.db.Omit(clause.Associations).Create(&employee)
	return employee, translateError(result.Error)
}

// FindByID retrieves an employee by its ID
func (r *employeeRepository) FindByID(id uint) (models.Employee, error) {
	var employee models.Employee
	result := r.db.First(&employee, "id = ?", id)
	return employee, translateError(result.Error)
}

// FindAll retrieves employees filtered by specialty substring and status
func (r *employeeRepository) FindAll(filter dto.EmployeeFilter) ([]models.Employee, error) {
	var employees []models.Employee

	db := r.db.Model(&models.Employee{})

	if filter.Specialty != "" {
		db = db.Where(containsClause(r.db, "especialidad"), filter.Specialty)
	}

	if filter.Status != nil {
		db = db.Where("estado = ?", *filter.Status)
	}

	result := db.Order("id").Find(&employees)
	return employees, translateError(result.Error)
}

// Update modifies an existing employee
func (r *employeeRepository) Update(employee models.Employee) error {
	result := r.db.Omit(clause.Associations).Save(&employee)
	return translateError(result.Error)
}

// Delete removes an employee from the database
func (r *employeeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Employee{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
