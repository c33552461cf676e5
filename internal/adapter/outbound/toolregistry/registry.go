package toolregistry

import (
	"fmt"
	"log/slog"

	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

// Registry is an in-memory implementation of the ToolRegistry interface.
// It is fully populated at construction and never mutated afterwards, so
// lookups need no locking.
type Registry struct {
	tools  []usecase.RegisteredTool
	byName map[string]usecase.RegisteredTool
	logger *slog.Logger
}

// New builds a registry from the given tools. An empty or duplicate tool
// name is a catalog bug and fails construction instead of being skipped.
func New(tools []usecase.RegisteredTool, logger *slog.Logger) (*Registry, error) {
	r := &Registry{
		tools:  make([]usecase.RegisteredTool, 0, len(tools)),
		byName: make(map[string]usecase.RegisteredTool, len(tools)),
		logger: logger.With("component", "tool_registry"),
	}
	for i, tool := range tools {
		name := tool.Descriptor.Name
		if name == "" {
			return nil, fmt.Errorf("tool at index %d has an empty name", i)
		}
		if _, exists := r.byName[name]; exists {
			return nil, fmt.Errorf("duplicate tool name %q", name)
		}
		r.byName[name] = tool
		r.tools = append(r.tools, tool)
	}
	r.logger.Info("Tool registry built", slog.Int("count", len(r.tools)))
	return r, nil
}

// List returns all registered tools in registration order.
func (r *Registry) List() []usecase.RegisteredTool {
	list := make([]usecase.RegisteredTool, len(r.tools))
	copy(list, r.tools)
	return list
}

// Find retrieves a registered tool by its name.
func (r *Registry) Find(name string) (usecase.RegisteredTool, error) {
	tool, ok := r.byName[name]
	if !ok {
		r.logger.Warn("Tool not found in registry", slog.String("tool_name", name))
		return usecase.RegisteredTool{}, usecase.ErrToolNotFound
	}
	return tool, nil
}
