// Package catalog declares every tool this server exposes as a data table:
// descriptor, upstream request mapping and response projection. The generic
// validation and projection machinery consumes these tables, so adding a tool
// means adding an entry, not new logic.
package catalog

import (
	"slices"

	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

// All returns the complete tool catalog in its advertised order.
func All() []usecase.RegisteredTool {
	var tools []usecase.RegisteredTool
	tools = append(tools, movieTools()...)
	tools = append(tools, tvTools()...)
	tools = append(tools, personTools()...)
	tools = append(tools, trendingTools()...)
	tools = append(tools, genreTools()...)
	return tools
}

// Without returns the catalog minus the named tools. Names that match
// nothing are ignored.
func Without(tools []usecase.RegisteredTool, disabled []string) []usecase.RegisteredTool {
	if len(disabled) == 0 {
		return tools
	}
	kept := make([]usecase.RegisteredTool, 0, len(tools))
	for _, tool := range tools {
		if !slices.Contains(disabled, tool.Descriptor.Name) {
			kept = append(kept, tool)
		}
	}
	return kept
}
