package catalog

import (
	"encoding/json"

	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

// tmdbTrendingItem is the union of the movie, TV and person list shapes.
// media_type is the discriminator; only the fields of the matching variant
// are meaningful.
type tmdbTrendingItem struct {
	MediaType          string  `json:"media_type"`
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	Name               string  `json:"name"`
	ReleaseDate        string  `json:"release_date"`
	FirstAirDate       string  `json:"first_air_date"`
	Overview           string  `json:"overview"`
	VoteAverage        float64 `json:"vote_average"`
	Popularity         float64 `json:"popularity"`
	KnownForDepartment string  `json:"known_for_department"`
	PosterPath         *string `json:"poster_path"`
	ProfilePath        *string `json:"profile_path"`
}

type trendingMovie struct {
	MediaType   string  `json:"media_type"`
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	PosterURL   *string `json:"poster_url"`
}

type trendingTVShow struct {
	MediaType    string  `json:"media_type"`
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	FirstAirDate string  `json:"first_air_date"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	PosterURL    *string `json:"poster_url"`
}

type trendingPerson struct {
	MediaType          string  `json:"media_type"`
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	ProfileURL         *string `json:"profile_url"`
}

// trendingUnknown preserves an unrecognized discriminator instead of forcing
// the entry into one of the known shapes.
type trendingUnknown struct {
	MediaType string `json:"media_type"`
	ID        int64  `json:"id"`
}

// projectTrendingItem dispatches on the media_type discriminator.
func projectTrendingItem(in tmdbTrendingItem) any {
	switch in.MediaType {
	case "movie":
		return trendingMovie{
			MediaType:   in.MediaType,
			ID:          in.ID,
			Title:       in.Title,
			ReleaseDate: in.ReleaseDate,
			Overview:    in.Overview,
			VoteAverage: in.VoteAverage,
			PosterURL:   posterURL(in.PosterPath),
		}
	case "tv":
		return trendingTVShow{
			MediaType:    in.MediaType,
			ID:           in.ID,
			Name:         in.Name,
			FirstAirDate: in.FirstAirDate,
			Overview:     in.Overview,
			VoteAverage:  in.VoteAverage,
			PosterURL:    posterURL(in.PosterPath),
		}
	case "person":
		return trendingPerson{
			MediaType:          in.MediaType,
			ID:                 in.ID,
			Name:               in.Name,
			KnownForDepartment: in.KnownForDepartment,
			Popularity:         in.Popularity,
			ProfileURL:         profileURL(in.ProfilePath),
		}
	}
	return trendingUnknown{MediaType: in.MediaType, ID: in.ID}
}

// trendingPage echoes the requested window alongside the projected entries.
type trendingPage struct {
	MediaType    string `json:"media_type"`
	TimeWindow   string `json:"time_window"`
	Page         int64  `json:"page"`
	Results      []any  `json:"results"`
	TotalPages   int64  `json:"total_pages"`
	TotalResults int64  `json:"total_results"`
}

// trendingTools is the cross-media portion of the catalog.
func trendingTools() []usecase.RegisteredTool {
	return []usecase.RegisteredTool{
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_trending",
				Description: "List what is trending on TMDB for a media type over a day or a week.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"media_type": {
						Type:        "string",
						Description: "Which media to include.",
						Enum:        []string{"all", "movie", "tv", "person"},
					},
					"time_window": {
						Type:        "string",
						Description: "Trending window.",
						Enum:        []string{"day", "week"},
					},
					"page": pageProp(),
				}, "media_type", "time_window"),
			},
			Request: usecase.RequestSpec{
				Path:  "/trending/{media_type}/{time_window}",
				Query: map[string]string{"page": "page"},
			},
			Project: func(args domain.Arguments, raw json.RawMessage) (any, error) {
				var in page[tmdbTrendingItem]
				if err := json.Unmarshal(raw, &in); err != nil {
					return nil, &domain.ProjectionError{Message: "unexpected payload for get_trending", Err: err}
				}
				mediaType, _ := args.String("media_type")
				timeWindow, _ := args.String("time_window")
				out := trendingPage{
					MediaType:    mediaType,
					TimeWindow:   timeWindow,
					Page:         in.Page,
					Results:      make([]any, 0, len(in.Results)),
					TotalPages:   in.TotalPages,
					TotalResults: in.TotalResults,
				}
				for _, item := range in.Results {
					out.Results = append(out.Results, projectTrendingItem(item))
				}
				return out, nil
			},
		},
	}
}
