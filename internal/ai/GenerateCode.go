package ai

import (
	"context"

	"mojocode_server/internal/ai/prompts"
	"mojocode_server/internal/extract"
	"mojocode_server/internal/types"
)

// GenerateCode runs one code-assistant chat turn. contextText describes the open project
// and file and may be empty. Tool calls in the reply are returned for display only.
func (g *Generator) GenerateCode(ctx context.Context, prompt, contextText string) (types.AIResponse, error) {
	task := TaskCodeAssistant
	task.Instructions = prompts.GetCodeAssistantInstructions(contextText)

	reply, err := g.CompleteWithTools(ctx, task, prompt)
	if err != nil {
		return types.AIResponse{}, err
	}

	resp := types.AIResponse{
		Content:     reply.Content,
		Suggestions: extract.Suggestions(reply.Content),
		ToolCalls:   reply.ToolCalls,
	}
	if code, lang, ok := extract.FirstCodeBlock(reply.Content); ok {
		resp.Code = code
		resp.Language = lang
	}
	return resp, nil
}
