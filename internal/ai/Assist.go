package ai

import (
	"context"

	"mojocode_server/internal/ai/prompts"
)

// ExplainCode describes what code does in plain terms.
func (g *Generator) ExplainCode(ctx context.Context, code, language string) (string, error) {
	return g.Complete(ctx, TaskExplainCode, prompts.GetExplainCodePrompt(code, language))
}

// ResearchTopic gathers current information on a topic.
func (g *Generator) ResearchTopic(ctx context.Context, topic string) (string, error) {
	return g.Complete(ctx, TaskResearch, prompts.GetResearchPrompt(topic))
}

// AnalyzeWebsite reviews the structure and technologies of the site at url.
func (g *Generator) AnalyzeWebsite(ctx context.Context, url string) (string, error) {
	return g.Complete(ctx, TaskAnalyzeWebsite, prompts.GetAnalyzeWebsitePrompt(url))
}
