package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mojocode_server/internal/ai/tools"
	"mojocode_server/internal/pipeline"
)

type EnhanceRequest struct {
	Prompt        string `json:"prompt" binding:"required"`
	AuthNeeds     string `json:"authNeeds"`
	DatabaseNeeds string `json:"databaseNeeds"`
}

type EnhanceResponse struct {
	EnhancedPrompt string `json:"enhancedPrompt"`
}

type PlanRequest struct {
	Prompt        string `json:"prompt" binding:"required"`
	AuthNeeds     string `json:"authNeeds"`
	DatabaseNeeds string `json:"databaseNeeds"`
	Enhance       bool   `json:"enhance"`
}

type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

type ExplainRequest struct {
	Code     string `json:"code" binding:"required"`
	Language string `json:"language"`
}

type ResearchRequest struct {
	Topic string `json:"topic" binding:"required"`
}

type AnalyzeRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// POST /ai/enhance
func (h *APIHandler) EnhancePrompt(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req EnhanceRequest
	if !bindJSON(c, &req) {
		return
	}
	enhanced, err := h.pipeline.Enhance(c.Request.Context(), uid, req.Prompt, req.AuthNeeds, req.DatabaseNeeds)
	if err != nil {
		respondError(c, err, pipeline.MsgEnhanceFailed)
		return
	}
	c.JSON(http.StatusOK, EnhanceResponse{EnhancedPrompt: enhanced})
}

// POST /ai/plan
func (h *APIHandler) CreatePlan(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req PlanRequest
	if !bindJSON(c, &req) {
		return
	}
	plan, err := h.pipeline.Plan(detached(c), uid, req.Prompt, req.AuthNeeds, req.DatabaseNeeds, req.Enhance)
	if err != nil {
		respondError(c, err, pipeline.MsgPlanFailed)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// GET /ai/plans
func (h *APIHandler) ListPlans(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	plans, err := h.pipeline.PendingPlans(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err, "Failed to load plans")
		return
	}
	c.JSON(http.StatusOK, plans)
}

// DELETE /ai/plans/:id
func (h *APIHandler) DiscardPlan(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	if err := h.pipeline.DiscardPlan(c.Request.Context(), uid, c.Param("id")); err != nil {
		respondError(c, err, "Failed to discard plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /ai/plans/:id/generate
func (h *APIHandler) GenerateFromPlan(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	project, err := h.pipeline.Generate(detached(c), uid, c.Param("id"))
	if err != nil {
		respondError(c, err, pipeline.MsgGenerateFailed)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// POST /ai/generate
func (h *APIHandler) GenerateFromPrompt(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req GenerateRequest
	if !bindJSON(c, &req) {
		return
	}
	project, err := h.pipeline.GenerateFromPrompt(detached(c), uid, req.Prompt)
	if err != nil {
		respondError(c, err, pipeline.MsgGenerateFailed)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// POST /ai/chat
func (h *APIHandler) Chat(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	var req ChatRequest
	if !bindJSON(c, &req) {
		return
	}
	resp, err := h.pipeline.Chat(detached(c), uid, req.Message)
	if err != nil {
		respondError(c, err, pipeline.MsgChatFailed)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// POST /ai/explain
func (h *APIHandler) ExplainCode(c *gin.Context) {
	var req ExplainRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Language == "" {
		req.Language = "javascript"
	}
	out, err := h.assistant.ExplainCode(c.Request.Context(), req.Code, req.Language)
	if err != nil {
		respondError(c, err, "Failed to explain code")
		return
	}
	c.JSON(http.StatusOK, gin.H{"explanation": out})
}

// POST /ai/research
func (h *APIHandler) Research(c *gin.Context) {
	var req ResearchRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.assistant.ResearchTopic(c.Request.Context(), req.Topic)
	if err != nil {
		respondError(c, err, "Failed to research topic")
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": out})
}

// POST /ai/analyze
func (h *APIHandler) AnalyzeWebsite(c *gin.Context) {
	var req AnalyzeRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.assistant.AnalyzeWebsite(c.Request.Context(), req.URL)
	if err != nil {
		respondError(c, err, "Failed to analyze website")
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": out})
}

// GET /ai/tools
func (h *APIHandler) ListTools(c *gin.Context) {
	c.JSON(http.StatusOK, tools.All())
}
