package api

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"mojocode_server/internal/pipeline"
	"mojocode_server/internal/preview"
	"mojocode_server/internal/types"
)

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// GET /projects
func (h *APIHandler) ListProjects(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	list, err := h.pipeline.ListProjects(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, pipeline.MsgLoadFailed)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /projects
func (h *APIHandler) CreateProject(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req CreateProjectRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.pipeline.CreateProject(c.Request.Context(), uid, req.Name, req.Description)
	if err != nil {
		respondError(c, err, pipeline.MsgCreateFailed)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GET /projects/:id
func (h *APIHandler) GetProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, project)
}

// POST /projects/:id/open
func (h *APIHandler) OpenProject(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	project, err := h.pipeline.OpenProject(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to open project")
		return
	}
	c.JSON(http.StatusOK, project)
}

// PUT /projects/:id
func (h *APIHandler) UpdateProject(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var project types.Project
	if !bindJSON(c, &project) {
		return
	}
	project.ID = c.Param("id")

	saved, err := h.projects.UpdateProject(c.Request.Context(), uid, project)
	if err != nil {
		respondError(c, err, pipeline.MsgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// DELETE /projects/:id
func (h *APIHandler) DeleteProject(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	if err := h.pipeline.DeleteProject(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondError(c, err, pipeline.MsgDeleteFailed)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /projects/:id/export
func (h *APIHandler) ExportProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}
	filename, body := h.projects.ExportProject(project)
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// GET /projects/:id/preview
func (h *APIHandler) PreviewProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(preview.Render(&project)))
}

func (h *APIHandler) loadProject(c *gin.Context) (types.Project, bool) {
	uid, ok := userID(c)
	if !ok {
		return types.Project{}, false
	}
	project, err := h.projects.GetProject(c.Request.Context(), uid, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to load project")
		return types.Project{}, false
	}
	return project, true
}
