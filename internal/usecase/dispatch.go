package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/remuzel/polarsteps-mcp/internal/domain"
)

// ToolResult is the uniform envelope every dispatch produces. IsError marks
// protocol-level failures (unknown tool, schema violation, handler fault);
// domain outcomes such as "trip not found" are successful results whose
// segments carry an explanatory message.
type ToolResult struct {
	Segments []domain.TextSegment `json:"segments"`
	IsError  bool                 `json:"is_error"`
}

// Dispatcher routes a call-by-name request to its registered handler after
// validating the raw arguments against the tool's schema.
type Dispatcher struct {
	registry *Registry
	client   TravelClient
	logger   *slog.Logger
	tracer   trace.Tracer
}

// NewDispatcher creates a Dispatcher over the given registry and client.
func NewDispatcher(registry *Registry, client TravelClient, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		client:   client,
		logger:   logger.With("component", "dispatcher"),
		tracer:   otel.Tracer("polarsteps-mcp/usecase"),
	}
}

// Dispatch never returns an error to its caller; every outcome, including a
// panicking handler, is folded into a ToolResult.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, rawArgs map[string]any) ToolResult {
	ctx, span := d.tracer.Start(ctx, "tool.dispatch",
		trace.WithAttributes(attribute.String("tool.name", name)))
	defer span.End()

	log := d.logger.With(slog.String("tool_name", name))

	tool, ok := d.registry.Find(name)
	if !ok {
		log.Warn("Unknown tool requested")
		return errorResult(fmt.Sprintf("Unknown tool: %s", name))
	}

	args, err := tool.InputSchema.ValidateInput(rawArgs)
	if err != nil {
		log.Warn("Tool input failed validation", slog.Any("error", err))
		return errorResult(err.Error())
	}

	segments, err := d.invoke(ctx, tool, args)
	if err != nil {
		log.Error("Tool handler failed", slog.Any("error", err))
		return errorResult(fmt.Sprintf("Error: %s", err.Error()))
	}

	if segments == nil {
		segments = []domain.TextSegment{}
	}
	log.Debug("Tool dispatched", slog.Int("segment_count", len(segments)))
	return ToolResult{Segments: segments}
}

// invoke runs the handler with a recover guard so an unexpected panic reaches
// the caller as an ordinary error instead of crashing the transport.
func (d *Dispatcher) invoke(ctx context.Context, tool RegisteredTool, args map[string]any) (segments []domain.TextSegment, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return tool.Handler(ctx, d.client, args)
}

func errorResult(message string) ToolResult {
	return ToolResult{
		Segments: []domain.TextSegment{domain.Text(message)},
		IsError:  true,
	}
}
