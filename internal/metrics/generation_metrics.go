package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("mojocode-generation")

// GenerationMetrics counts completion calls and pipeline outcomes.
type GenerationMetrics struct {
	completionsStarted   metric.Int64Counter
	completionsSucceeded metric.Int64Counter
	completionsFailed    metric.Int64Counter
	completionDuration   metric.Float64Histogram
	extractionFallbacks  metric.Int64Counter
	projectsGenerated    metric.Int64Counter
	generationsActive    metric.Int64UpDownCounter
}

// NewGenerationMetrics registers the instruments on the global meter provider.
func NewGenerationMetrics() (*GenerationMetrics, error) {
	completionsStarted, err := meter.Int64Counter(
		"mojocode.completions.started",
		metric.WithDescription("Total number of completion requests sent"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	completionsSucceeded, err := meter.Int64Counter(
		"mojocode.completions.succeeded",
		metric.WithDescription("Total number of completion requests that returned a reply"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	completionsFailed, err := meter.Int64Counter(
		"mojocode.completions.failed",
		metric.WithDescription("Total number of completion requests that failed"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	completionDuration, err := meter.Float64Histogram(
		"mojocode.completion.duration",
		metric.WithDescription("Duration of completion requests in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	extractionFallbacks, err := meter.Int64Counter(
		"mojocode.extraction.fallbacks",
		metric.WithDescription("Number of generated files replaced by a fallback template"),
		metric.WithUnit("{file}"),
	)
	if err != nil {
		return nil, err
	}

	projectsGenerated, err := meter.Int64Counter(
		"mojocode.projects.generated",
		metric.WithDescription("Total number of projects created from generated code"),
		metric.WithUnit("{project}"),
	)
	if err != nil {
		return nil, err
	}

	generationsActive, err := meter.Int64UpDownCounter(
		"mojocode.generations.active",
		metric.WithDescription("Number of generations currently in flight"),
		metric.WithUnit("{generation}"),
	)
	if err != nil {
		return nil, err
	}

	return &GenerationMetrics{
		completionsStarted:   completionsStarted,
		completionsSucceeded: completionsSucceeded,
		completionsFailed:    completionsFailed,
		completionDuration:   completionDuration,
		extractionFallbacks:  extractionFallbacks,
		projectsGenerated:    projectsGenerated,
		generationsActive:    generationsActive,
	}, nil
}

// RecordCompletionStarted records a request to the completion service.
func (m *GenerationMetrics) RecordCompletionStarted(ctx context.Context, task, model string) {
	m.completionsStarted.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("task", task),
			attribute.String("model", model),
		),
	)
}

// RecordCompletionSucceeded records a completed request and its duration.
func (m *GenerationMetrics) RecordCompletionSucceeded(ctx context.Context, task, model string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("task", task),
		attribute.String("model", model),
		attribute.String("status", "succeeded"),
	)
	m.completionsSucceeded.Add(ctx, 1, attrs)
	m.completionDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordCompletionFailed records a failed request and its duration.
func (m *GenerationMetrics) RecordCompletionFailed(ctx context.Context, task, model string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("task", task),
		attribute.String("model", model),
		attribute.String("status", "failed"),
	)
	m.completionsFailed.Add(ctx, 1, attrs)
	m.completionDuration.Record(ctx, duration.Seconds(), attrs)
}

// RecordExtractionFallbacks records one fallback per file name in files.
func (m *GenerationMetrics) RecordExtractionFallbacks(ctx context.Context, files []string) {
	for _, f := range files {
		m.extractionFallbacks.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("file", f),
			),
		)
	}
}

// RecordGenerationStarted marks a prompt-to-project run as in flight.
func (m *GenerationMetrics) RecordGenerationStarted(ctx context.Context, mode string) {
	m.generationsActive.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("mode", mode),
		),
	)
}

// RecordGenerationFinished ends a run started with RecordGenerationStarted.
func (m *GenerationMetrics) RecordGenerationFinished(ctx context.Context, mode string, created bool) {
	m.generationsActive.Add(ctx, -1,
		metric.WithAttributes(
			attribute.String("mode", mode),
		),
	)
	if created {
		m.projectsGenerated.Add(ctx, 1,
			metric.WithAttributes(
				attribute.String("mode", mode),
			),
		)
	}
}
