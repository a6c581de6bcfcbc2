package dto

import (
	"strings"

	"github.com/proyectos-api/models"
)

// EmployeeFilter represents filter criteria for employees.
// Specialty is a case-sensitive substring; empty means no filter.
type EmployeeFilter struct {
	Specialty string
	Status    *models.Status
}

// Matches reports whether e satisfies the filter
func (f EmployeeFilter) Matches(e models.Employee) bool {
	if f.Specialty != "" && !strings.Contains(e.Specialty, f.Specialty) {
		return false
	}
	return f.Status == nil || e.Status == *f.Status
}

// EmployeeRequest represents the payload for creating or fully replacing an employee
type EmployeeRequest struct {
	Name      string        `json:"nombre"`
	Specialty string        `json:"especialidad"`
	Salary    float64       `json:"salario"`
	Status    models.Status `json:"estado"`
}

// ToModel maps the request onto a new employee
func (r EmployeeRequest) ToModel() models.Employee {
	return models.Employee{
		Name:      r.Name,
		Specialty: r.Specialty,
		Salary:    r.Salary,
		Status:    r.Status,
	}
}

// EmployeeSummary is the reduced employee view embedded in other responses
type EmployeeSummary struct {
	ID        uint          `json:"id"`
	Name      string        `json:"nombre"`
	Specialty string        `json:"especialidad"`
	Salary    float64       `json:"salario"`
	Status    models.Status `json:"estado"`
}

// NewEmployeeSummary projects e onto its summary view
func NewEmployeeSummary(e models.Employee) EmployeeSummary {
	return EmployeeSummary{
		ID:        e.ID,
		Name:      e.Name,
		Specialty: e.Specialty,
		Salary:    e.Salary,
		Status:    e.Status,
	}
}

// NewEmployeeSummaries projects every employee onto its summary view
func NewEmployeeSummaries(employees []models.Employee) []EmployeeSummary {
	summaries := make([]EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		summaries = append(summaries, NewEmployeeSummary(e))
	}
	return summaries
}

// EmployeeDetail is an employee with the projects they are staffed on and the ones they manage
type EmployeeDetail struct {
	EmployeeSummary
	Projects        []ProjectSummary `json:"proyectos"`
	ManagedProjects []ProjectSummary `json:"proyectos_gerente"`
}
