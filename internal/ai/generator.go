package ai

import (
	"context"
	"log"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"mojocode_server/internal/metrics"
)

// ChatCompleter is the part of *openai.Client the generator uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Models selects the model id for each kind of task.
type Models struct {
	Planning string // enhance-prompt, create-plan
	Coding   string // generate-app, chat and assistant tasks
}

type Generator struct {
	client  ChatCompleter
	models  Models
	metrics *metrics.GenerationMetrics
	tracer  trace.Tracer
}

// NewGenerator builds a generator backed by the OpenAI API.
// baseURL overrides the default endpoint when non-empty.
func NewGenerator(apiKey, baseURL string, models Models) *Generator {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	// No retry transport: a failed completion is reported to the caller as is.
	return NewGeneratorWithClient(openai.NewClientWithConfig(config), models)
}

// NewGeneratorWithClient builds a generator around any ChatCompleter.
func NewGeneratorWithClient(client ChatCompleter, models Models) *Generator {
	if models.Planning == "" {
		models.Planning = "o3"
	}
	if models.Coding == "" {
		models.Coding = "o4-mini"
	}
	return &Generator{
		client: client,
		models: models,
		tracer: otel.Tracer("ai-generator"),
	}
}

// WithMetrics attaches a metrics collector. A nil collector disables recording.
func (g *Generator) WithMetrics(m *metrics.GenerationMetrics) *Generator {
	g.metrics = m
	return g
}

func (g *Generator) modelFor(role ModelRole) string {
	if role == RolePlanning {
		return g.models.Planning
	}
	return g.models.Coding
}

func (g *Generator) debugf(format string, args ...any) {
	log.Printf("Debug: "+format, args...)
}
