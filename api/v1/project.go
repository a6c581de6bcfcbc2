package v1

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proyectos-api/dto"
	"github.com/proyectos-api/models"
	"github.com/proyectos-api/services"
)

// ProjectController handles project and staffing API endpoints
type ProjectController struct {
	projectService    *services.ProjectService
	assignmentService *services.AssignmentService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService, assignmentService *services.AssignmentService) *ProjectController {
	return &ProjectController{
		projectService:    projectService,
		assignmentService: assignmentService,
	}
}

// RegisterRoutes registers project routes
func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	projects := router.Group("/proyecto")
	{
		projects.POST("", c.CreateProject)
		projects.GET("", c.ListProjects)
		projects.GET("/:id", c.GetProject)
		projects.PUT("/:id", c.UpdateProject)
		projects.PATCH("/:id", c.PatchProject)
		projects.DELETE("/:id", c.DeleteProject)

		// Staffing
		projects.POST("/:id/asignar", c.AssignEmployee)
		projects.DELETE("/:id/desasignar/:empleado_id", c.UnassignEmployee)
		projects.GET("/:id/empleados", c.ListProjectEmployees)
	}
}

// CreateProject godoc
// @Summary Create a project
// @Description Create a project managed by an existing employee. Project names are unique.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body dto.ProjectRequest true "Project data"
// @Success 201 {object} models.Project
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /proyecto [post]
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var request dto.ProjectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid request body: %v", err)
		return
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, project)
}

// ListProjects godoc
// @Summary List projects
// @Description Get projects filtered by status and an inclusive budget range
// @Tags projects
// @Produce json
// @Param estado query string false "Activo or Inactivo"
// @Param presupuesto_min query number false "Lowest budget, 0 by default"
// @Param presupuesto_max query number false "Highest budget, unbounded by default"
// @Success 200 {array} models.Project
// @Router /proyecto [get]
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	filter := dto.NewProjectFilter()

	if raw := ctx.Query("estado"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			respondError(ctx, err)
			return
		}
		filter.Status = &status
	}

	var ok bool
	if filter.BudgetMin, ok = floatQuery(ctx, "presupuesto_min", 0); !ok {
		return
	}
	if filter.BudgetMax, ok = floatQuery(ctx, "presupuesto_max", math.Inf(1)); !ok {
		return
	}

	projects, err := c.projectService.ListProjects(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, projects)
}

// GetProject godoc
// @Summary Get project details
// @Description Get a project with its manager and staffed employees
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} dto.ProjectDetail
// @Failure 404 {object} map[string]interface{}
// @Router /proyecto/{id} [get]
func (c *ProjectController) GetProject(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	project, err := c.projectService.GetProject(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project)
}

// UpdateProject godoc
// @Summary Replace a project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body dto.ProjectRequest true "Project data"
// @Success 200 {object} models.Project
// @Router /proyecto/{id} [put]
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var request dto.ProjectRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid request body: %v", err)
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Request.Context(), id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project)
}

// PatchProject godoc
// @Summary Partially update a project
// @Description Update only the fields present in the body. Staff assignments are kept.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param project body dto.ProjectPatchRequest true "Fields to change"
// @Success 200 {object} models.Project
// @Router /proyecto/{id} [patch]
func (c *ProjectController) PatchProject(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var request dto.ProjectPatchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid request body: %v", err)
		return
	}

	project, err := c.projectService.PatchProject(ctx.Request.Context(), id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project)
}

// DeleteProject godoc
// @Summary Delete a project
// @Description Delete a project and every assignment to it
// @Tags projects
// @Param id path int true "Project ID"
// @Success 204
// @Router /proyecto/{id} [delete]
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.projectService.DeleteProject(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AssignEmployee godoc
// @Summary Assign an employee to a project
// @Tags staffing
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param assignment body dto.AssignEmployeeRequest true "Employee to assign"
// @Success 200 {object} dto.ProjectDetail
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /proyecto/{id}/asignar [post]
func (c *ProjectController) AssignEmployee(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var request dto.AssignEmployeeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid request body: %v", err)
		return
	}

	project, err := c.assignmentService.AssignEmployee(ctx.Request.Context(), id, request.EmployeeID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, project)
}

// UnassignEmployee godoc
// @Summary Remove an employee from a project
// @Tags staffing
// @Param id path int true "Project ID"
// @Param empleado_id path int true "Employee ID"
// @Success 204
// @Failure 404 {object} map[string]interface{}
// @Router /proyecto/{id}/desasignar/{empleado_id} [delete]
func (c *ProjectController) UnassignEmployee(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}
	employeeID, ok := idParam(ctx, "empleado_id")
	if !ok {
		return
	}

	if err := c.assignmentService.UnassignEmployee(ctx.Request.Context(), id, employeeID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListProjectEmployees godoc
// @Summary List project staff
// @Tags staffing
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {array} dto.EmployeeSummary
// @Router /proyecto/{id}/empleados [get]
func (c *ProjectController) ListProjectEmployees(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	staff, err := c.assignmentService.ListProjectEmployees(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, staff)
}
