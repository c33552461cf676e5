package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"

	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
)

// Standard errors returned by use cases and adapters.
var ErrToolNotFound = errors.New("tool not found")

// ProjectFunc reshapes a raw upstream payload into the compact document the
// tool returns to the caller. It never performs I/O. The validated arguments
// are passed in so projections can echo back request context, such as the
// filters a discovery call applied.
type ProjectFunc func(args domain.Arguments, raw json.RawMessage) (any, error)

// RegisteredTool binds one advertised tool to everything its dispatch needs:
// the descriptor used for listing and validation, the upstream request
// mapping, and the response projection. The binding is fixed at registration
// and never changes afterwards.
type RegisteredTool struct {
	Descriptor domain.ToolDescriptor
	Request    RequestSpec
	Project    ProjectFunc
}

// ToolRegistry exposes the immutable tool catalog. Lookups are pure, so the
// methods take no context and cannot block.
type ToolRegistry interface {
	// List returns every registered tool in registration order.
	List() []RegisteredTool

	// Find returns the tool registered under the given name, or
	// ErrToolNotFound.
	Find(name string) (RegisteredTool, error)
}

// UpstreamClient performs one GET against the media database API and returns
// the raw response body. Implementations translate HTTP and transport
// failures into *domain.UpstreamError.
type UpstreamClient interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
}

// CallResult is the outcome of one tool dispatch, ready to be wrapped into an
// MCP call result. IsError marks failures that are reported inside the tool
// result so the conversation can continue; it never indicates a protocol
// error.
type CallResult struct {
	Content string
	IsError bool
}
