package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mojocode_server/internal/pipeline"
	"mojocode_server/internal/preview"
	"mojocode_server/internal/types"
)

type PanelRequest struct {
	Panel types.Panel `json:"panel" binding:"required"`
}

type MobileRequest struct {
	IsMobile *bool `json:"isMobile" binding:"required"`
}

type ActiveFileRequest struct {
	FileID string `json:"fileId" binding:"required"`
}

type FileContentRequest struct {
	Content *string `json:"content" binding:"required"`
}

// GET /workspace
func (h *APIHandler) GetWorkspace(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.pipeline.Workspace(uid).Snapshot())
}

// GET /workspace/preview
func (h *APIHandler) PreviewWorkspace(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	st := h.pipeline.Workspace(uid).Snapshot()
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(preview.Render(st.CurrentProject)))
}

// PUT /workspace/panel
func (h *APIHandler) SetPanel(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req PanelRequest
	if !bindJSON(c, &req) {
		return
	}
	if !req.Panel.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "panel must be one of chat, editor, preview"})
		return
	}
	ws := h.pipeline.Workspace(uid)
	ws.SetActivePanel(req.Panel)
	c.JSON(http.StatusOK, ws.Snapshot())
}

// PUT /workspace/mobile
func (h *APIHandler) SetMobile(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req MobileRequest
	if !bindJSON(c, &req) {
		return
	}
	ws := h.pipeline.Workspace(uid)
	ws.SetMobile(*req.IsMobile)
	c.JSON(http.StatusOK, ws.Snapshot())
}

// PUT /workspace/active-file
func (h *APIHandler) SetActiveFile(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req ActiveFileRequest
	if !bindJSON(c, &req) {
		return
	}
	ws := h.pipeline.Workspace(uid)
	if !ws.SelectFile(req.FileID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "file " + req.FileID + " is not in the open project"})
		return
	}
	c.JSON(http.StatusOK, ws.Snapshot())
}

// PUT /workspace/files/:fileId
func (h *APIHandler) UpdateFileContent(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req FileContentRequest
	if !bindJSON(c, &req) {
		return
	}
	st, err := h.pipeline.EditFile(uid, c.Param("fileId"), *req.Content)
	if err != nil {
		respondError(c, err, "Failed to update file")
		return
	}
	c.JSON(http.StatusOK, st)
}

// POST /workspace/save
func (h *APIHandler) SaveWorkspace(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	saved, err := h.pipeline.SaveWorkspace(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, pipeline.MsgSaveFailed)
		return
	}
	c.JSON(http.StatusOK, saved)
}
