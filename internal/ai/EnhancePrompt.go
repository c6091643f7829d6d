package ai

import (
	"context"

	"mojocode_server/internal/ai/prompts"
)

// EnhancePrompt expands a rough app idea into a detailed brief using the planning model.
func (g *Generator) EnhancePrompt(ctx context.Context, prompt, authNeeds, databaseNeeds string) (string, error) {
	return g.Complete(ctx, TaskEnhancePrompt, prompts.GetEnhancePrompt(prompt, authNeeds, databaseNeeds))
}
