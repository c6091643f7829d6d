package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	handlers "mojocode_server/internal/api"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
// Everything except /health runs behind requireAuth.
func RegisterRoutes(router *gin.Engine, h *handlers.APIHandler, requireAuth gin.HandlerFunc) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := router.Group("/", requireAuth)

	// --- Session ---
	authGroup := authed.Group("/auth")
	{
		authGroup.GET("/session", h.Session)
		authGroup.POST("/logout", h.Logout)
	}

	// --- Generation and assistant ---
	aiGroup := authed.Group("/ai")
	{
		aiGroup.POST("/enhance", h.EnhancePrompt)
		aiGroup.POST("/plan", h.CreatePlan)
		aiGroup.GET("/plans", h.ListPlans)
		aiGroup.DELETE("/plans/:id", h.DiscardPlan)
		aiGroup.POST("/plans/:id/generate", h.GenerateFromPlan)
		aiGroup.POST("/generate", h.GenerateFromPrompt)
		aiGroup.POST("/chat", h.Chat)
		aiGroup.POST("/explain", h.ExplainCode)
		aiGroup.POST("/research", h.Research)
		aiGroup.POST("/analyze", h.AnalyzeWebsite)
		aiGroup.GET("/tools", h.ListTools)
	}

	// --- Stored projects ---
	projectGroup := authed.Group("/projects")
	{
		projectGroup.GET("", h.ListProjects)
		projectGroup.POST("", h.CreateProject)
		projectGroup.GET("/:id", h.GetProject)
		projectGroup.PUT("/:id", h.UpdateProject)
		projectGroup.DELETE("/:id", h.DeleteProject)
		projectGroup.POST("/:id/open", h.OpenProject)
		projectGroup.GET("/:id/export", h.ExportProject)
		projectGroup.GET("/:id/preview", h.PreviewProject)
	}

	// --- Workspace ---
	workspaceGroup := authed.Group("/workspace")
	{
		workspaceGroup.GET("", h.GetWorkspace)
		workspaceGroup.GET("/preview", h.PreviewWorkspace)
		workspaceGroup.PUT("/panel", h.SetPanel)
		workspaceGroup.PUT("/mobile", h.SetMobile)
		workspaceGroup.PUT("/active-file", h.SetActiveFile)
		workspaceGroup.PUT("/files/:fileId", h.UpdateFileContent)
		workspaceGroup.POST("/save", h.SaveWorkspace)
	}
}
