package dto

import (
	"math"

	"github.com/proyectos-api/models"
)

// ProjectFilter represents filter criteria for projects.
// Budget bounds are inclusive; BudgetMax is +Inf when unbounded.
type ProjectFilter struct {
	Status    *models.Status
	BudgetMin float64
	BudgetMax float64
}

// NewProjectFilter returns a filter that matches every project
func NewProjectFilter() ProjectFilter {
	return ProjectFilter{BudgetMin: 0, BudgetMax: math.Inf(1)}
}

// Matches reports whether p satisfies the filter
func (f ProjectFilter) Matches(p models.Project) bool {
	if f.Status != nil && p.Status != *f.Status {
		return false
	}
	return p.Budget >= f.BudgetMin && p.Budget <= f.BudgetMax
}

// ProjectRequest represents the payload for creating or fully replacing a project.
// ManagerID is nil when gerente_id was not sent.
type ProjectRequest struct {
	Name        string        `json:"nombre"`
	Description string        `json:"descripcion"`
	Budget      float64       `json:"presupuesto"`
	Status      models.Status `json:"estado"`
	ManagerID   *uint         `json:"gerente_id"`
}

// ToModel maps the request onto a new project
func (r ProjectRequest) ToModel() models.Project {
	project := models.Project{
		Name:        r.Name,
		Description: r.Description,
		Budget:      r.Budget,
		Status:      r.Status,
	}
	if r.ManagerID != nil {
		project.ManagerID = *r.ManagerID
	}
	return project
}

// ProjectPatchRequest carries a sparse set of project fields; nil means "not supplied"
type ProjectPatchRequest struct {
	Name        *string        `json:"nombre"`
	Description *string        `json:"descripcion"`
	Budget      *float64       `json:"presupuesto"`
	Status      *models.Status `json:"estado"`
	ManagerID   *uint          `json:"gerente_id"`
}

// IsEmpty reports whether no field was supplied
func (r ProjectPatchRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Budget == nil && r.Status == nil && r.ManagerID == nil
}

// ApplyTo copies the supplied fields onto p
func (r ProjectPatchRequest) ApplyTo(p *models.Project) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Budget != nil {
		p.Budget = *r.Budget
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.ManagerID != nil {
		p.ManagerID = *r.ManagerID
	}
}

// ProjectSummary is the reduced project view embedded in other responses
type ProjectSummary struct {
	ID          uint          `json:"id"`
	Name        string        `json:"nombre"`
	Description string        `json:"descripcion"`
	Budget      float64       `json:"presupuesto"`
	Status      models.Status `json:"estado"`
}

// NewProjectSummary projects p onto its summary view
func NewProjectSummary(p models.Project) ProjectSummary {
	return ProjectSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Budget:      p.Budget,
		Status:      p.Status,
	}
}

// ProjectDetail is a project with its manager and staffed employees
type ProjectDetail struct {
	ProjectSummary
	ManagerID uint              `json:"gerente_id"`
	Manager   EmployeeSummary   `json:"gerente"`
	Employees []EmployeeSummary `json:"empleados"`
}

// NewProjectDetail builds the detail view of p
func NewProjectDetail(p models.Project, manager models.Employee, staff []models.Employee) ProjectDetail {
	return ProjectDetail{
		ProjectSummary: NewProjectSummary(p),
		ManagerID:      p.ManagerID,
		Manager:        NewEmployeeSummary(manager),
		Employees:      NewEmployeeSummaries(staff),
	}
}

// NewProjectSummaries projects every project onto its summary view
func NewProjectSummaries(projects []models.Project) []ProjectSummary {
	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, NewProjectSummary(p))
	}
	return summaries
}
