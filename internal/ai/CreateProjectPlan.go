package ai

import (
	"context"

	"mojocode_server/internal/ai/prompts"
)

// CreateProjectPlan asks the planning model for a sectioned plan. The reply is free text;
// extract.ParsePlan turns it into a ProjectPlan.
func (g *Generator) CreateProjectPlan(ctx context.Context, prompt, authNeeds, databaseNeeds string) (string, error) {
	text, err := g.Complete(ctx, TaskCreatePlan, prompts.GetPlanningPrompt(prompt, authNeeds, databaseNeeds))
	if err != nil {
		return "", err
	}
	g.debugf("create-plan reply (%d chars)", len(text))
	return text, nil
}
