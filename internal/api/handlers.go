package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"mojocode_server/internal/auth"
	"mojocode_server/internal/pipeline"
	"mojocode_server/internal/projects"
	"mojocode_server/internal/types"
)

// Assistant answers the one-shot helper requests that do not touch the workspace.
type Assistant interface {
	ExplainCode(ctx context.Context, code, language string) (string, error)
	ResearchTopic(ctx context.Context, topic string) (string, error)
	AnalyzeWebsite(ctx context.Context, url string) (string, error)
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	pipeline  *pipeline.Pipeline
	projects  *projects.Service
	assistant Assistant
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(p *pipeline.Pipeline, projects *projects.Service, assistant Assistant) *APIHandler {
	return &APIHandler{
		pipeline:  p,
		projects:  projects,
		assistant: assistant,
	}
}

// errorStatus maps the error taxonomy onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrAuthFailure), errors.Is(err, types.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrNotFound), errors.Is(err, types.ErrPlanNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrNameRequired), errors.Is(err, types.ErrPromptRequired):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrNoOpenProject):
		return http.StatusConflict
	case errors.Is(err, types.ErrGenerationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": ...}. Client errors carry the error text;
// server errors carry only message and are logged.
func respondError(c *gin.Context, err error, message string) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(status, gin.H{"error": message})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// detached is the request context without its cancellation. Actions that change
// the workspace run to completion even if the client goes away.
func detached(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	return true
}

// userID returns the authenticated user's id. RequireAuth runs first, so a
// missing user is answered with 401 here.
func userID(c *gin.Context) (string, bool) {
	u, ok := auth.UserFrom(c)
	if !ok || u.ID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": types.ErrNotAuthenticated.Error()})
		return "", false
	}
	return u.ID, true
}

// GET /auth/session
func (h *APIHandler) Session(c *gin.Context) {
	u, ok := auth.UserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": types.ErrNotAuthenticated.Error()})
		return
	}
	st := h.pipeline.SignIn(u)
	c.JSON(http.StatusOK, gin.H{"user": u, "workspace": st})
}

// POST /auth/logout
func (h *APIHandler) Logout(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	h.pipeline.SignOut(uid)
	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}
