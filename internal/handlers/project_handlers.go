package handlers

import (
	"errors"
	"net/http"

	"ai_manager_backend/internal/services"
	"ai_manager_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProjectHandler holds the project service.
type ProjectHandler struct {
	projectService services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(ps services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

func (h *ProjectHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetProjects: Error from projectService.ListProjects")
		respondInternal(c, "Failed to fetch projects")
		return
	}
	utils.RespondWithData(c, http.StatusOK, projects, gin.H{"count": len(projects)})
}

func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id := c.Param("id")
	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			respondNotFound(c, "Project not found", err)
			return
		}
		utils.LogError(err, "GetProjectByID: Error from projectService.GetProject for ID "+id)
		respondInternal(c, "Failed to fetch project")
		return
	}
	utils.RespondWithData(c, http.StatusOK, project)
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req services.CreateProjectRequest
	if !bindJSON(c, &req, "CreateProject") {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		utils.LogError(err, "CreateProject: Error from projectService.CreateProject")
		respondInternal(c, "Failed to create project")
		return
	}
	utils.RespondWithData(c, http.StatusCreated, project, gin.H{"message": "Project created successfully"})
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id := c.Param("id")
	var req services.UpdateProjectRequest
	if !bindJSON(c, &req, "UpdateProject") {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			respondNotFound(c, "Project not found", err)
		case errors.Is(err, services.ErrInvalidProjectStatus):
			respondValidation(c, err)
		default:
			utils.LogError(err, "UpdateProject: Error from projectService.UpdateProject for ID "+id)
			respondInternal(c, "Failed to update project")
		}
		return
	}
	utils.RespondWithData(c, http.StatusOK, project, gin.H{"message": "Project updated successfully"})
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	project, err := h.projectService.DeleteProject(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			respondNotFound(c, "Project not found", err)
			return
		}
		utils.LogError(err, "DeleteProject: Error from projectService.DeleteProject for ID "+id)
		respondInternal(c, "Failed to delete project")
		return
	}
	utils.RespondWithData(c, http.StatusOK, project, gin.H{"message": "Project deleted successfully"})
}

// GetProjectStats handles GET /api/projects/stats/overview.
func (h *ProjectHandler) GetProjectStats(c *gin.Context) {
	stats, err := h.projectService.Stats(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetProjectStats: Error from projectService.Stats")
		respondInternal(c, "Failed to fetch project stats")
		return
	}
	utils.RespondWithData(c, http.StatusOK, stats)
}

// UpdateProjectStatus handles PUT /api/projects/:id/status.
func (h *ProjectHandler) UpdateProjectStatus(c *gin.Context) {
	id := c.Param("id")
	var req statusRequest
	if !bindJSON(c, &req, "UpdateProjectStatus") {
		return
	}

	project, err := h.projectService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProjectNotFound):
			respondNotFound(c, "Project not found", err)
		case errors.Is(err, services.ErrInvalidProjectStatus):
			respondValidation(c, err)
		default:
			utils.LogError(err, "UpdateProjectStatus: Error from projectService.UpdateStatus for ID "+id)
			respondInternal(c, "Failed to update project status")
		}
		return
	}
	utils.RespondWithData(c, http.StatusOK, project, gin.H{"message": "Project status updated successfully"})
}
