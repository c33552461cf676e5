package catalog

import (
	"encoding/json"

	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

// page is the paginated envelope, used both to decode upstream responses and
// to shape projected output.
type page[T any] struct {
	Page         int64 `json:"page"`
	Results      []T   `json:"results"`
	TotalPages   int64 `json:"total_pages"`
	TotalResults int64 `json:"total_results"`
}

// filteredPage additionally echoes back the validated filter arguments of a
// discovery call. Filters the caller omitted are absent from the echo.
type filteredPage[T any] struct {
	Page           int64          `json:"page"`
	Results        []T            `json:"results"`
	TotalPages     int64          `json:"total_pages"`
	TotalResults   int64          `json:"total_results"`
	FiltersApplied map[string]any `json:"filters_applied"`
}

// docProjector decodes the whole upstream document and hands it to project.
func docProjector[In any](toolName string, project func(In) any) usecase.ProjectFunc {
	return func(args domain.Arguments, raw json.RawMessage) (any, error) {
		var in In
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, &domain.ProjectionError{Message: "unexpected payload for " + toolName, Err: err}
		}
		return project(in), nil
	}
}

// pageProjector decodes a paginated envelope and projects every entry,
// preserving upstream order.
func pageProjector[In, Out any](toolName string, project func(In) Out) usecase.ProjectFunc {
	return func(args domain.Arguments, raw json.RawMessage) (any, error) {
		var in page[In]
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, &domain.ProjectionError{Message: "unexpected payload for " + toolName, Err: err}
		}
		out := page[Out]{
			Page:         in.Page,
			Results:      make([]Out, 0, len(in.Results)),
			TotalPages:   in.TotalPages,
			TotalResults: in.TotalResults,
		}
		for _, item := range in.Results {
			out.Results = append(out.Results, project(item))
		}
		return out, nil
	}
}

// filteredPageProjector is pageProjector plus the filters_applied echo for
// the named argument fields.
func filteredPageProjector[In, Out any](toolName string, filterFields []string, project func(In) Out) usecase.ProjectFunc {
	return func(args domain.Arguments, raw json.RawMessage) (any, error) {
		var in page[In]
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, &domain.ProjectionError{Message: "unexpected payload for " + toolName, Err: err}
		}
		out := filteredPage[Out]{
			Page:           in.Page,
			Results:        make([]Out, 0, len(in.Results)),
			TotalPages:     in.TotalPages,
			TotalResults:   in.TotalResults,
			FiltersApplied: filtersApplied(args, filterFields),
		}
		for _, item := range in.Results {
			out.Results = append(out.Results, project(item))
		}
		return out, nil
	}
}

func filtersApplied(args domain.Arguments, fields []string) map[string]any {
	applied := make(map[string]any, len(fields))
	for _, field := range fields {
		if value, ok := args[field]; ok {
			applied[field] = value
		}
	}
	return applied
}
