package usecase

import (
	"log/slog"

	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
)

// ListToolsUseCase provides the tool catalog as advertised to MCP clients.
type ListToolsUseCase struct {
	registry ToolRegistry
	logger   *slog.Logger
}

// NewListToolsUseCase creates a new ListToolsUseCase.
func NewListToolsUseCase(registry ToolRegistry, logger *slog.Logger) *ListToolsUseCase {
	return &ListToolsUseCase{
		registry: registry,
		logger:   logger.With("usecase", "ListTools"),
	}
}

// Execute returns the descriptors of every registered tool in registration
// order.
func (uc *ListToolsUseCase) Execute() []domain.ToolDescriptor {
	tools := uc.registry.List()
	descriptors := make([]domain.ToolDescriptor, 0, len(tools))
	for _, tool := range tools {
		descriptors = append(descriptors, tool.Descriptor)
	}
	uc.logger.Debug("Listed tools", slog.Int("count", len(descriptors)))
	return descriptors
}
