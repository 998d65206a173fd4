package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/etudeproject/etude/internal/app/models/dto"
	"github.com/etudeproject/etude/internal/app/services"
	"github.com/etudeproject/etude/internal/middleware"
	"github.com/etudeproject/etude/internal/pkg/helpers"
)

// ProjectController handles project-related endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new ProjectController
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// GetAllProjects lists projects with pagination and optional name/p_id
// filters
func (c *ProjectController) GetAllProjects(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	name := ctx.Query("name")
	projectID := ctx.Query("p_id")

	projects, err := c.projectService.ListProjects(ctx.Request.Context(), page, size, name, projectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProjectListResponse(projects))
}

// GetProjectByID retrieves a single project
func (c *ProjectController) GetProjectByID(ctx *gin.Context) {
	project, err := c.projectService.GetProjectByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProjectResponse(project))
}

// CreateProject creates a new project
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid project data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.CreateProject(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewProjectResponse(project))
}

// UpdateProject applies a partial update to a project
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid project data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusUnprocessableEntity, dto.NewErrorResponse(errorDetail))
		return
	}

	project, err := c.projectService.UpdateProject(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewProjectResponse(project))
}

// DeleteProject removes a project
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	if err := c.projectService.DeleteProject(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Project deleted successfully"})
}
