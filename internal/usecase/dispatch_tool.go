package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
)

const instrumentationName = "github.com/tcehjaava/tmdb-mcp-server/internal/usecase"

// Dispatch outcomes recorded on the tool call counter.
const (
	outcomeOK              = "ok"
	outcomeUnknownTool     = "unknown_tool"
	outcomeValidationError = "validation_error"
	outcomeUpstreamError   = "upstream_error"
	outcomeProjectionError = "projection_error"
	outcomeInternalError   = "internal_error"
)

// DispatchToolUseCase executes one tool call end to end: look up the tool,
// validate the arguments, call the upstream API, project the response and
// serialize the result. Every failure on that path is converted into a
// CallResult with IsError set; Execute never returns an error and never lets
// a panic escape, so a misbehaving tool cannot take the server down.
type DispatchToolUseCase struct {
	registry ToolRegistry
	client   UpstreamClient
	logger   *slog.Logger
	tracer   trace.Tracer
	calls    metric.Int64Counter
}

// NewDispatchToolUseCase creates a new DispatchToolUseCase.
func NewDispatchToolUseCase(registry ToolRegistry, client UpstreamClient, logger *slog.Logger) *DispatchToolUseCase {
	calls, err := otel.Meter(instrumentationName).Int64Counter(
		"tmdb_mcp.tool_calls",
		metric.WithDescription("Tool dispatches by tool name and outcome."),
	)
	if err != nil {
		logger.Warn("Failed to create tool call counter", slog.Any("error", err))
	}
	return &DispatchToolUseCase{
		registry: registry,
		client:   client,
		logger:   logger.With("usecase", "DispatchTool"),
		tracer:   otel.Tracer(instrumentationName),
		calls:    calls,
	}
}

// Execute runs the tool call and always produces a usable result.
func (uc *DispatchToolUseCase) Execute(ctx context.Context, toolName string, rawArgs map[string]any) (result CallResult) {
	log := uc.logger.With(slog.String("tool_name", toolName))
	log.Info("Dispatching tool call")

	ctx, span := uc.tracer.Start(ctx, "mcp.tool_call",
		trace.WithAttributes(attribute.String("mcp.tool.name", toolName)))
	defer span.End()

	// Single recovery boundary for the whole dispatch path. Handlers above
	// this layer assume Execute cannot fail.
	defer func() {
		if r := recover(); r != nil {
			log.Error("Tool dispatch panicked", slog.Any("panic", r))
			result = uc.fail(ctx, span, toolName, outcomeInternalError, fmt.Sprintf("internal error: %v", r))
		}
	}()

	tool, err := uc.registry.Find(toolName)
	if err != nil {
		log.Warn("Requested tool is not registered", slog.Any("error", err))
		return uc.fail(ctx, span, toolName, outcomeUnknownTool, fmt.Sprintf("unknown tool: %s", toolName))
	}

	args, err := domain.ValidateArguments(tool.Descriptor.InputSchema, rawArgs)
	if err != nil {
		log.Warn("Arguments failed validation", slog.Any("error", err))
		return uc.fail(ctx, span, toolName, outcomeValidationError, err.Error())
	}

	path, query, err := tool.Request.Resolve(args)
	if err != nil {
		log.Error("Failed to build upstream request", slog.Any("error", err))
		return uc.fail(ctx, span, toolName, outcomeInternalError, fmt.Sprintf("internal error: %s", err))
	}

	log.Debug("Calling upstream API", slog.String("path", path))
	raw, err := uc.client.Get(ctx, path, query)
	if err != nil {
		log.Error("Upstream call failed", slog.Any("error", err))
		return uc.fail(ctx, span, toolName, outcomeUpstreamError, err.Error())
	}

	doc, err := tool.Project(args, raw)
	if err != nil {
		log.Error("Failed to project upstream response", slog.Any("error", err))
		return uc.fail(ctx, span, toolName, outcomeProjectionError, err.Error())
	}

	content, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Error("Failed to serialize tool result", slog.Any("error", err))
		return uc.fail(ctx, span, toolName, outcomeInternalError, fmt.Sprintf("internal error: %s", err))
	}

	log.Info("Tool call completed")
	span.SetStatus(codes.Ok, "")
	uc.record(ctx, toolName, outcomeOK)
	return CallResult{Content: string(content)}
}

func (uc *DispatchToolUseCase) fail(ctx context.Context, span trace.Span, toolName, outcome, message string) CallResult {
	span.SetStatus(codes.Error, outcome)
	uc.record(ctx, toolName, outcome)
	return CallResult{Content: message, IsError: true}
}

func (uc *DispatchToolUseCase) record(ctx context.Context, toolName, outcome string) {
	if uc.calls == nil {
		return
	}
	uc.calls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("tool.name", toolName),
		attribute.String("outcome", outcome),
	))
}
