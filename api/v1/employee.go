package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/proyectos-api/dto"
	"github.com/proyectos-api/models"
	"github.com/proyectos-api/services"
)

// EmployeeController handles employee-related API endpoints
type EmployeeController struct {
	employeeService   *services.EmployeeService
	assignmentService *services.AssignmentService
}

// NewEmployeeController creates a new employee controller
func NewEmployeeController(employeeService *services.EmployeeService, assignmentService *services.AssignmentService) *EmployeeController {
	return &EmployeeController{
		employeeService:   employeeService,
		assignmentService: assignmentService,
	}
}

// RegisterRoutes registers employee routes
func (c *EmployeeController) RegisterRoutes(router *gin.RouterGroup) {
	employees := router.Group("/empleado")
	{
		employees.POST("", c.CreateEmployee)
		employees.GET("", c.ListEmployees)
		employees.GET("/:id", c.GetEmployee)
		employees.PUT("/:id", c.UpdateEmployee)
		employees.DELETE("/:id", c.DeleteEmployee)
		employees.GET("/:id/proyectos", c.ListEmployeeProjects)
	}
}

// CreateEmployee creates a new employee
func (c *EmployeeController) CreateEmployee(ctx *gin.Context) {
	var request dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid request body: %v", err)
		return
	}

	employee, err := c.employeeService.CreateEmployee(ctx.Request.Context(), request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, employee)
}

// ListEmployees retrieves employees, optionally filtered by specialty and status
func (c *EmployeeController) ListEmployees(ctx *gin.Context) {
	filter := dto.EmployeeFilter{Specialty: ctx.Query("especialidad")}

	if raw := ctx.Query("estado"); raw != "" {
		status, err := models.ParseStatus(raw)
		if err != nil {
			respondError(ctx, err)
			return
		}
		filter.Status = &status
	}

	employees, err := c.employeeService.ListEmployees(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, employees)
}

// GetEmployee retrieves a specific employee with their projects
func (c *EmployeeController) GetEmployee(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	employee, err := c.employeeService.GetEmployee(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, employee)
}

// UpdateEmployee replaces an existing employee
func (c *EmployeeController) UpdateEmployee(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	var request dto.EmployeeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid request body: %v", err)
		return
	}

	employee, err := c.employeeService.UpdateEmployee(ctx.Request.Context(), id, request)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, employee)
}

// DeleteEmployee deletes an employee who manages no project
func (c *EmployeeController) DeleteEmployee(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.employeeService.DeleteEmployee(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListEmployeeProjects godoc
// @Summary List projects of an employee
// @Description Get the projects an employee is staffed on and the projects they manage
// @Tags staffing
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} dto.EmployeeProjects
// @Failure 404 {object} map[string]interface{}
// @Router /empleado/{id}/proyectos [get]
func (c *EmployeeController) ListEmployeeProjects(ctx *gin.Context) {
	id, ok := idParam(ctx, "id")
	if !ok {
		return
	}

	projects, err := c.assignmentService.ListEmployeeProjects(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, projects)
}
