package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/proyectos-api/repositories"
	"github.com/proyectos-api/services"
)

// RegisterRoutes registers all v1 API routes on top of store
func RegisterRoutes(router *gin.RouterGroup, store repositories.Store) {
	employeeService := services.NewEmployeeService(store)
	projectService := services.NewProjectService(store)
	assignmentService := services.NewAssignmentService(store)

	// Welcome and health check endpoints
	NewHealthController(store).RegisterRoutes(router)

	NewEmployeeController(employeeService, assignmentService).RegisterRoutes(router)
	NewProjectController(projectService, assignmentService).RegisterRoutes(router)
}
