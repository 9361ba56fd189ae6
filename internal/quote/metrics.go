package quote

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"travelquote/internal/bundling"
	"travelquote/internal/itinerary"
)

// Metrics holds the engine instruments.
type Metrics struct {
	evaluations       metric.Int64Counter
	cacheLookups      metric.Int64Counter
	conflicts         metric.Int64Counter
	overallScore      metric.Int64Histogram
	suggestionActions metric.Int64Counter
	openWorkspaces    metric.Int64UpDownCounter
}

// NewMetrics creates the instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}
	var err error

	m.evaluations, err = meter.Int64Counter(
		"quote_evaluations_total",
		metric.WithDescription("Quote evaluations by operation"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("quote_evaluations_total: %w", err)
	}

	m.cacheLookups, err = meter.Int64Counter(
		"quote_cache_lookups_total",
		metric.WithDescription("Evaluation cache lookups by result"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("quote_cache_lookups_total: %w", err)
	}

	m.conflicts, err = meter.Int64Counter(
		"quote_conflicts_detected_total",
		metric.WithDescription("Items found in conflict by severity"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("quote_conflicts_detected_total: %w", err)
	}

	m.overallScore, err = meter.Int64Histogram(
		"quote_overall_score",
		metric.WithDescription("Overall quote score"),
		metric.WithExplicitBucketBoundaries(50, 60, 70, 80, 90),
	)
	if err != nil {
		return nil, fmt.Errorf("quote_overall_score: %w", err)
	}

	m.suggestionActions, err = meter.Int64Counter(
		"bundle_suggestion_actions_total",
		metric.WithDescription("Agent actions on bundle suggestions"),
		metric.WithUnit("{action}"),
	)
	if err != nil {
		return nil, fmt.Errorf("bundle_suggestion_actions_total: %w", err)
	}

	m.openWorkspaces, err = meter.Int64UpDownCounter(
		"quote_workspaces_open",
		metric.WithDescription("Workspace sessions currently open"),
		metric.WithUnit("{workspace}"),
	)
	if err != nil {
		return nil, fmt.Errorf("quote_workspaces_open: %w", err)
	}

	return m, nil
}

// NopMetrics records nothing.
func NopMetrics() *Metrics {
	m, _ := NewMetrics(noop.NewMeterProvider().Meter("quote"))
	return m
}

func (m *Metrics) evaluated(ctx context.Context, op string) {
	m.evaluations.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", op)))
}

func (m *Metrics) cacheLookup(ctx context.Context, hit bool) {
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.Bool("hit", hit)))
}

func (m *Metrics) conflictsFound(ctx context.Context, conflicts map[string]itinerary.Conflict) {
	for _, c := range conflicts {
		m.conflicts.Add(ctx, 1, metric.WithAttributes(attribute.String("severity", string(c.Severity))))
	}
}

func (m *Metrics) scored(ctx context.Context, overall int, grade string) {
	m.overallScore.Record(ctx, int64(overall), metric.WithAttributes(attribute.String("grade", grade)))
}

func (m *Metrics) suggestionAction(ctx context.Context, action string, kind bundling.SuggestionType) {
	m.suggestionActions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("action", action),
		attribute.String("suggestion", string(kind)),
	))
}

func (m *Metrics) workspaceOpened(ctx context.Context) { m.openWorkspaces.Add(ctx, 1) }
func (m *Metrics) workspaceClosed(ctx context.Context) { m.openWorkspaces.Add(ctx, -1) }
