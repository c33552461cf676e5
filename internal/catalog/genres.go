package catalog

import (
	"encoding/json"

	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

type genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func nonNilGenres(genres []genre) []genre {
	if genres == nil {
		return []genre{}
	}
	return genres
}

type tmdbGenreList struct {
	Genres []genre `json:"genres"`
}

type genresDoc struct {
	MediaType string  `json:"media_type"`
	Genres    []genre `json:"genres"`
}

// genreTools exposes the official genre list used by discovery filters.
func genreTools() []usecase.RegisteredTool {
	return []usecase.RegisteredTool{
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_genres",
				Description: "List the official genres for movies or TV, as IDs usable in discover filters.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"media_type": {
						Type:        "string",
						Description: "Which genre list to fetch.",
						Enum:        []string{"movie", "tv"},
					},
				}, "media_type"),
			},
			Request: usecase.RequestSpec{Path: "/genre/{media_type}/list"},
			Project: func(args domain.Arguments, raw json.RawMessage) (any, error) {
				var in tmdbGenreList
				if err := json.Unmarshal(raw, &in); err != nil {
					return nil, &domain.ProjectionError{Message: "unexpected payload for get_genres", Err: err}
				}
				mediaType, _ := args.String("media_type")
				return genresDoc{MediaType: mediaType, Genres: nonNilGenres(in.Genres)}, nil
			},
		},
	}
}
