package catalog

import (
	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

// tmdbTVShow is the upstream list-item shape for TV search, discover,
// popular and recommendation responses.
type tmdbTVShow struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	FirstAirDate string  `json:"first_air_date"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	PosterPath   *string `json:"poster_path"`
}

type tvSummary struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	FirstAirDate string  `json:"first_air_date"`
	Overview     string  `json:"overview"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int64   `json:"vote_count"`
	Popularity   float64 `json:"popularity"`
	PosterURL    *string `json:"poster_url"`
}

func tvSummaryFrom(in tmdbTVShow) tvSummary {
	return tvSummary{
		ID:           in.ID,
		Name:         in.Name,
		FirstAirDate: in.FirstAirDate,
		Overview:     in.Overview,
		VoteAverage:  in.VoteAverage,
		VoteCount:    in.VoteCount,
		Popularity:   in.Popularity,
		PosterURL:    posterURL(in.PosterPath),
	}
}

type tmdbTVDetails struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Tagline          string  `json:"tagline"`
	Overview         string  `json:"overview"`
	FirstAirDate     string  `json:"first_air_date"`
	LastAirDate      string  `json:"last_air_date"`
	NumberOfSeasons  int64   `json:"number_of_seasons"`
	NumberOfEpisodes int64   `json:"number_of_episodes"`
	EpisodeRunTime   []int64 `json:"episode_run_time"`
	Genres           []genre `json:"genres"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Status           string  `json:"status"`
	OriginalLanguage string  `json:"original_language"`
	Homepage         *string `json:"homepage"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
}

type tvDetails struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Tagline          string  `json:"tagline"`
	Overview         string  `json:"overview"`
	FirstAirDate     string  `json:"first_air_date"`
	LastAirDate      string  `json:"last_air_date"`
	NumberOfSeasons  int64   `json:"number_of_seasons"`
	NumberOfEpisodes int64   `json:"number_of_episodes"`
	EpisodeRunTime   []int64 `json:"episode_run_time"`
	Genres           []genre `json:"genres"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Status           string  `json:"status"`
	OriginalLanguage string  `json:"original_language"`
	Homepage         *string `json:"homepage"`
	PosterURL        *string `json:"poster_url"`
	BackdropURL      *string `json:"backdrop_url"`
}

var discoverTVFilters = []string{"sort_by", "with_genres", "year", "min_rating", "min_votes"}

// tvTools is the TV portion of the catalog.
func tvTools() []usecase.RegisteredTool {
	return []usecase.RegisteredTool{
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "search_tv_shows",
				Description: "Search for TV shows by name. Returns a page of matches with air dates, ratings and poster URLs.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"query":         {Type: "string", Description: "Text to match against TV show names."},
					"page":          pageProp(),
					"year":          yearProp("Only match shows that first aired in this year."),
					"include_adult": includeAdultProp(),
				}, "query"),
			},
			Request: usecase.RequestSpec{
				Path: "/search/tv",
				Query: map[string]string{
					"query":         "query",
					"page":          "page",
					"year":          "first_air_date_year",
					"include_adult": "include_adult",
				},
			},
			Project: pageProjector("search_tv_shows", tvSummaryFrom),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_tv_show_details",
				Description: "Fetch full details for one TV show: synopsis, seasons, episodes, genres and artwork URLs.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"series_id": {Type: "integer", Description: "TMDB series ID.", Minimum: f64(1)},
				}, "series_id"),
			},
			Request: usecase.RequestSpec{Path: "/tv/{series_id}"},
			Project: docProjector("get_tv_show_details", func(in tmdbTVDetails) any {
				return tvDetails{
					ID:               in.ID,
					Name:             in.Name,
					Tagline:          in.Tagline,
					Overview:         in.Overview,
					FirstAirDate:     in.FirstAirDate,
					LastAirDate:      in.LastAirDate,
					NumberOfSeasons:  in.NumberOfSeasons,
					NumberOfEpisodes: in.NumberOfEpisodes,
					EpisodeRunTime:   in.EpisodeRunTime,
					Genres:           nonNilGenres(in.Genres),
					VoteAverage:      in.VoteAverage,
					VoteCount:        in.VoteCount,
					Popularity:       in.Popularity,
					Status:           in.Status,
					OriginalLanguage: in.OriginalLanguage,
					Homepage:         in.Homepage,
					PosterURL:        posterURL(in.PosterPath),
					BackdropURL:      backdropURL(in.BackdropPath),
				}
			}),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_tv_show_credits",
				Description: "Fetch the cast (top 20 in billing order) and key crew (creators, directors, producers, writers) of a TV show.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"series_id": {Type: "integer", Description: "TMDB series ID.", Minimum: f64(1)},
				}, "series_id"),
			},
			Request: usecase.RequestSpec{Path: "/tv/{series_id}/credits"},
			Project: creditsProjector("get_tv_show_credits", tvCrewJobs),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_tv_show_recommendations",
				Description: "List TV shows recommended for viewers of the given show.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"series_id": {Type: "integer", Description: "TMDB series ID.", Minimum: f64(1)},
					"page":      pageProp(),
				}, "series_id"),
			},
			Request: usecase.RequestSpec{
				Path:  "/tv/{series_id}/recommendations",
				Query: map[string]string{"page": "page"},
			},
			Project: pageProjector("get_tv_show_recommendations", tvSummaryFrom),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_popular_tv_shows",
				Description: "List the TV shows currently most popular on TMDB.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"page": pageProp(),
				}),
			},
			Request: usecase.RequestSpec{
				Path:  "/tv/popular",
				Query: map[string]string{"page": "page"},
			},
			Project: pageProjector("get_popular_tv_shows", tvSummaryFrom),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "discover_tv_shows",
				Description: "Find TV shows by filters: genres, first air year, minimum rating and vote count, with a chosen sort order.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"sort_by": sortByProp("popularity.desc",
						"popularity.desc", "popularity.asc",
						"vote_average.desc", "vote_average.asc",
						"first_air_date.desc", "first_air_date.asc"),
					"with_genres": genresProp(),
					"year":        yearProp("Only include shows that first aired in this year."),
					"min_rating":  minRatingProp(),
					"min_votes":   minVotesProp(),
					"page":        pageProp(),
				}),
			},
			Request: usecase.RequestSpec{
				Path: "/discover/tv",
				Query: map[string]string{
					"sort_by":     "sort_by",
					"with_genres": "with_genres",
					"year":        "first_air_date_year",
					"min_rating":  "vote_average.gte",
					"min_votes":   "vote_count.gte",
					"page":        "page",
				},
			},
			Project: filteredPageProjector("discover_tv_shows", discoverTVFilters, tvSummaryFrom),
		},
	}
}
