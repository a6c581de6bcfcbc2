package dto

import "github.com/proyectos-api/models"

// RoleManager tags projects an employee manages
const RoleManager = "gerente"

// AssignEmployeeRequest represents the payload for staffing an employee on a project
type AssignEmployeeRequest struct {
	EmployeeID uint `json:"empleado_id" binding:"required"`
}

// ProjectRef identifies a project by id and name
type ProjectRef struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}

// ManagedProjectRef is a ProjectRef tagged with the employee's role on it
type ManagedProjectRef struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
	Role string `json:"rol"`
}

// EmployeeProjects lists the projects related to an employee, grouped by role
type EmployeeProjects struct {
	EmployeeID uint                `json:"empleado_id"`
	Name       string              `json:"nombre"`
	Assigned   []ProjectRef        `json:"proyectos_asignados"`
	AsManager  []ManagedProjectRef `json:"proyectos_como_gerente"`
}

// NewEmployeeProjects groups staffed and managed projects of e
func NewEmployeeProjects(e models.Employee, staffed, managed []models.Project) EmployeeProjects {
	result := EmployeeProjects{
		EmployeeID: e.ID,
		Name:       e.Name,
		Assigned:   make([]ProjectRef, 0, len(staffed)),
		AsManager:  make([]ManagedProjectRef, 0, len(managed)),
	}

	for _, p := range staffed {
		result.Assigned = append(result.Assigned, ProjectRef{ID: p.ID, Name: p.Name})
	}
	for _, p := range managed {
		result.AsManager = append(result.AsManager, ManagedProjectRef{ID: p.ID, Name: p.Name, Role: RoleManager})
	}

	return result
}
