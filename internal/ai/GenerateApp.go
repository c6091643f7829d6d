package ai

import (
	"context"
	"log"
	"strings"

	"mojocode_server/internal/ai/prompts"
	"mojocode_server/internal/extract"
	"mojocode_server/internal/types"
)

// GenerateApp produces the three front-end files for specification, along with a name
// and description derived from the reply and the specification itself.
// Missing files are filled from templates; that is logged, not returned as an error.
func (g *Generator) GenerateApp(ctx context.Context, specification string) (types.GeneratedApp, error) {
	content, err := g.Complete(ctx, TaskGenerateApp, prompts.GetAppGenerationPrompt(specification))
	if err != nil {
		return types.GeneratedApp{}, err
	}
	g.debugf("generate-app raw output: %s", content)

	code, fallbacks := extract.ParseCodeWithFallbacks(content)
	if len(fallbacks) > 0 {
		log.Printf("WARN: generate-app reply had no usable %s, using templates", strings.Join(fallbacks, ", "))
		if g.metrics != nil {
			g.metrics.RecordExtractionFallbacks(ctx, fallbacks)
		}
	}

	return types.GeneratedApp{
		GeneratedCode: code,
		ProjectName:   extract.ProjectName(content, specification),
		Description:   extract.ProjectDescription(specification),
	}, nil
}
