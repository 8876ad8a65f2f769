package engine

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// startDelegationSpan starts the span covering one whole Delegate call.
func (e *Engine) startDelegationSpan(ctx context.Context, rootTaskID, mode string) (context.Context, trace.Span) {
	ctx, span := e.tracer.Start(ctx, "delegation.run")
	span.SetAttributes(
		attribute.String("delegation.root_task_id", rootTaskID),
		attribute.String("delegation.mode", mode),
	)

	return ctx, span
}

// startTaskSpan starts the span covering a single agent execution.
func (e *Engine) startTaskSpan(ctx context.Context, agent, taskID string, depth int) (context.Context, trace.Span) {
	ctx, span := e.tracer.Start(ctx, "task.execute")
	span.SetAttributes(
		attribute.String("task.agent", agent),
		attribute.String("task.id", taskID),
		attribute.Int("task.depth", depth),
	)

	return ctx, span
}
