package ai

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"mojocode_server/internal/ai/prompts"
	"mojocode_server/internal/ai/tools"
	"mojocode_server/internal/ai/utils"
	"mojocode_server/internal/types"
)

// ModelRole picks between the planning and the coding model.
type ModelRole int

const (
	RolePlanning ModelRole = iota
	RoleCoding
)

// Task is the fixed configuration of one kind of completion request.
type Task struct {
	Name            string
	Role            ModelRole
	Instructions    string
	Temperature     float32
	ReasoningEffort string
	MaxOutputTokens int
}

var (
	TaskEnhancePrompt = Task{
		Name:            "enhance-prompt",
		Role:            RolePlanning,
		Instructions:    prompts.EnhanceInstructions,
		Temperature:     0.3,
		ReasoningEffort: "high",
		MaxOutputTokens: 3000,
	}
	TaskCreatePlan = Task{
		Name:            "create-plan",
		Role:            RolePlanning,
		Instructions:    prompts.PlanningInstructions,
		Temperature:     0.3,
		ReasoningEffort: "high",
		MaxOutputTokens: 4000,
	}
	TaskGenerateApp = Task{
		Name:            "generate-app",
		Role:            RoleCoding,
		Instructions:    prompts.GetAppGenerationInstructions(),
		Temperature:     0.3,
		ReasoningEffort: "high",
		MaxOutputTokens: 8000,
	}
	// TaskCodeAssistant has its instructions filled in per call with the current context.
	TaskCodeAssistant = Task{
		Name:            "code-assistant",
		Role:            RoleCoding,
		Temperature:     0.3,
		ReasoningEffort: "high",
		MaxOutputTokens: 4000,
	}
	TaskExplainCode = Task{
		Name:            "explain-code",
		Role:            RoleCoding,
		Instructions:    prompts.ExplainCodeInstructions,
		Temperature:     0.3,
		ReasoningEffort: "medium",
		MaxOutputTokens: 2000,
	}
	TaskResearch = Task{
		Name:            "research",
		Role:            RoleCoding,
		Instructions:    prompts.ResearchInstructions,
		Temperature:     0.3,
		ReasoningEffort: "high",
		MaxOutputTokens: 3000,
	}
	TaskAnalyzeWebsite = Task{
		Name:            "analyze-website",
		Role:            RoleCoding,
		Instructions:    prompts.AnalyzeWebsiteInstructions,
		Temperature:     0.3,
		ReasoningEffort: "medium",
		MaxOutputTokens: 2500,
	}
)

var reasoningModelPrefixes = []string{"o1", "o3", "o4", "gpt-5"}

func isReasoningModel(model string) bool {
	for _, prefix := range reasoningModelPrefixes {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

// Reply is the text of a completion plus any tool calls it referenced.
type Reply struct {
	Content   string
	ToolCalls []types.ToolCall
}

// Complete sends one request for task and returns the reply text.
func (g *Generator) Complete(ctx context.Context, task Task, input string) (string, error) {
	reply, err := g.CompleteWithTools(ctx, task, input)
	if err != nil {
		return "", err
	}
	return reply.Content, nil
}

// CompleteWithTools is Complete that also returns the tool calls found in the reply.
// There is exactly one attempt; every failure wraps types.ErrGenerationFailed.
func (g *Generator) CompleteWithTools(ctx context.Context, task Task, input string) (Reply, error) {
	model := g.modelFor(task.Role)

	ctx, span := g.tracer.Start(ctx, "ai.complete")
	defer span.End()
	span.SetAttributes(
		attribute.String("ai.task", task.Name),
		attribute.String("ai.model", model),
		attribute.Int("ai.input_length", len(input)),
	)

	req := openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: task.Instructions},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
		MaxCompletionTokens: task.MaxOutputTokens,
		Tools:               tools.All(),
		ToolChoice:          "auto",
	}
	// Reasoning models accept only the default temperature; other models reject reasoning_effort.
	if isReasoningModel(model) {
		req.ReasoningEffort = task.ReasoningEffort
	} else {
		req.Temperature = task.Temperature
	}

	if g.metrics != nil {
		g.metrics.RecordCompletionStarted(ctx, task.Name, model)
	}
	start := time.Now()

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if g.metrics != nil {
			g.metrics.RecordCompletionFailed(ctx, task.Name, model, time.Since(start))
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "completion failed")
		log.Printf("ERROR: %s completion with %s failed: %v", task.Name, model, err)
		return Reply{}, fmt.Errorf("%w: %s: %w", types.ErrGenerationFailed, task.Name, err)
	}

	if g.metrics != nil {
		g.metrics.RecordCompletionSucceeded(ctx, task.Name, model, time.Since(start))
	}

	reply := Reply{
		Content:   utils.ExtractContent(resp),
		ToolCalls: utils.ExtractToolCalls(resp),
	}
	if reply.Content == utils.NoContent {
		log.Printf("WARN: %s completion returned no content (usage: %+v)", task.Name, resp.Usage)
	}
	span.SetAttributes(
		attribute.Int("ai.output_length", len(reply.Content)),
		attribute.Int("ai.tool_calls", len(reply.ToolCalls)),
	)
	span.SetStatus(codes.Ok, "")
	return reply, nil
}
