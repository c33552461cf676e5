package catalog

import (
	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
)

func f64(v float64) *float64 { return &v }

// objectSchema declares a tool's top-level input object.
func objectSchema(props map[string]domain.JSONSchemaProps, required ...string) domain.JSONSchemaProps {
	return domain.JSONSchemaProps{Type: "object", Properties: props, Required: required}
}

// Shared argument shapes. Most list tools take the same pagination and
// filter arguments, declared once here so every table stays consistent.

func pageProp() domain.JSONSchemaProps {
	return domain.JSONSchemaProps{
		Type:        "integer",
		Description: "1-based page of results to fetch.",
		Minimum:     f64(1),
		Default:     1,
	}
}

func yearProp(desc string) domain.JSONSchemaProps {
	return domain.JSONSchemaProps{Type: "integer", Description: desc}
}

func includeAdultProp() domain.JSONSchemaProps {
	return domain.JSONSchemaProps{
		Type:        "boolean",
		Description: "Whether to include adult titles.",
		Default:     false,
	}
}

func genresProp() domain.JSONSchemaProps {
	return domain.JSONSchemaProps{
		Type:        "string",
		Description: "Comma-separated genre IDs that results must match (see get_genres).",
	}
}

func minRatingProp() domain.JSONSchemaProps {
	return domain.JSONSchemaProps{
		Type:        "number",
		Description: "Minimum average vote, from 0 to 10 inclusive.",
		Minimum:     f64(0),
		Maximum:     f64(10),
	}
}

func minVotesProp() domain.JSONSchemaProps {
	return domain.JSONSchemaProps{
		Type:        "integer",
		Description: "Minimum number of votes a result must have.",
		Minimum:     f64(0),
	}
}

func sortByProp(def string, values ...string) domain.JSONSchemaProps {
	return domain.JSONSchemaProps{
		Type:        "string",
		Description: "Sort order for the results.",
		Enum:        values,
		Default:     def,
	}
}
