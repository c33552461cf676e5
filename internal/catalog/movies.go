package catalog

import (
	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

// tmdbMovie is the upstream list-item shape shared by search, discover,
// popular, top rated and recommendation responses.
type tmdbMovie struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	PosterPath  *string `json:"poster_path"`
}

type movieSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int64   `json:"vote_count"`
	Popularity  float64 `json:"popularity"`
	PosterURL   *string `json:"poster_url"`
}

func movieSummaryFrom(in tmdbMovie) movieSummary {
	return movieSummary{
		ID:          in.ID,
		Title:       in.Title,
		ReleaseDate: in.ReleaseDate,
		Overview:    in.Overview,
		VoteAverage: in.VoteAverage,
		VoteCount:   in.VoteCount,
		Popularity:  in.Popularity,
		PosterURL:   posterURL(in.PosterPath),
	}
}

type tmdbMovieDetails struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Tagline          string  `json:"tagline"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	Runtime          *int64  `json:"runtime"`
	Genres           []genre `json:"genres"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Status           string  `json:"status"`
	OriginalLanguage string  `json:"original_language"`
	Budget           int64   `json:"budget"`
	Revenue          int64   `json:"revenue"`
	Homepage         *string `json:"homepage"`
	IMDBID           *string `json:"imdb_id"`
	PosterPath       *string `json:"poster_path"`
	BackdropPath     *string `json:"backdrop_path"`
}

type movieDetails struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title"`
	Tagline          string  `json:"tagline"`
	Overview         string  `json:"overview"`
	ReleaseDate      string  `json:"release_date"`
	Runtime          *int64  `json:"runtime"`
	Genres           []genre `json:"genres"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
	Popularity       float64 `json:"popularity"`
	Status           string  `json:"status"`
	OriginalLanguage string  `json:"original_language"`
	Budget           int64   `json:"budget"`
	Revenue          int64   `json:"revenue"`
	Homepage         *string `json:"homepage"`
	IMDBID           *string `json:"imdb_id"`
	PosterURL        *string `json:"poster_url"`
	BackdropURL      *string `json:"backdrop_url"`
}

var discoverMovieFilters = []string{"sort_by", "with_genres", "year", "min_rating", "min_votes", "include_adult"}

// movieTools is the movie portion of the catalog.
func movieTools() []usecase.RegisteredTool {
	return []usecase.RegisteredTool{
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "search_movies",
				Description: "Search for movies by title. Returns a page of matches with release dates, ratings and poster URLs.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"query":         {Type: "string", Description: "Text to match against movie titles."},
					"page":          pageProp(),
					"year":          yearProp("Only match movies first released in this year."),
					"include_adult": includeAdultProp(),
				}, "query"),
			},
			Request: usecase.RequestSpec{
				Path: "/search/movie",
				Query: map[string]string{
					"query":         "query",
					"page":          "page",
					"year":          "primary_release_year",
					"include_adult": "include_adult",
				},
			},
			Project: pageProjector("search_movies", movieSummaryFrom),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_movie_details",
				Description: "Fetch full details for one movie: synopsis, runtime, genres, financials and artwork URLs.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"movie_id": {Type: "integer", Description: "TMDB movie ID.", Minimum: f64(1)},
				}, "movie_id"),
			},
			Request: usecase.RequestSpec{Path: "/movie/{movie_id}"},
			Project: docProjector("get_movie_details", func(in tmdbMovieDetails) any {
				return movieDetails{
					ID:               in.ID,
					Title:            in.Title,
					Tagline:          in.Tagline,
					Overview:         in.Overview,
					ReleaseDate:      in.ReleaseDate,
					Runtime:          in.Runtime,
					Genres:           nonNilGenres(in.Genres),
					VoteAverage:      in.VoteAverage,
					VoteCount:        in.VoteCount,
					Popularity:       in.Popularity,
					Status:           in.Status,
					OriginalLanguage: in.OriginalLanguage,
					Budget:           in.Budget,
					Revenue:          in.Revenue,
					Homepage:         in.Homepage,
					IMDBID:           in.IMDBID,
					PosterURL:        posterURL(in.PosterPath),
					BackdropURL:      backdropURL(in.BackdropPath),
				}
			}),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_movie_credits",
				Description: "Fetch the cast (top 20 in billing order) and key crew (directors, producers, writers) of a movie.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"movie_id": {Type: "integer", Description: "TMDB movie ID.", Minimum: f64(1)},
				}, "movie_id"),
			},
			Request: usecase.RequestSpec{Path: "/movie/{movie_id}/credits"},
			Project: creditsProjector("get_movie_credits", movieCrewJobs),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_movie_recommendations",
				Description: "List movies recommended for viewers of the given movie.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"movie_id": {Type: "integer", Description: "TMDB movie ID.", Minimum: f64(1)},
					"page":     pageProp(),
				}, "movie_id"),
			},
			Request: usecase.RequestSpec{
				Path:  "/movie/{movie_id}/recommendations",
				Query: map[string]string{"page": "page"},
			},
			Project: pageProjector("get_movie_recommendations", movieSummaryFrom),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_popular_movies",
				Description: "List the movies currently most popular on TMDB.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"page": pageProp(),
				}),
			},
			Request: usecase.RequestSpec{
				Path:  "/movie/popular",
				Query: map[string]string{"page": "page"},
			},
			Project: pageProjector("get_popular_movies", movieSummaryFrom),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_top_rated_movies",
				Description: "List the highest rated movies of all time.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"page": pageProp(),
				}),
			},
			Request: usecase.RequestSpec{
				Path:  "/movie/top_rated",
				Query: map[string]string{"page": "page"},
			},
			Project: pageProjector("get_top_rated_movies", movieSummaryFrom),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "discover_movies",
				Description: "Find movies by filters: genres, release year, minimum rating and vote count, with a chosen sort order.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"sort_by": sortByProp("popularity.desc",
						"popularity.desc", "popularity.asc",
						"vote_average.desc", "vote_average.asc",
						"primary_release_date.desc", "primary_release_date.asc",
						"revenue.desc"),
					"with_genres":   genresProp(),
					"year":          yearProp("Only include movies first released in this year."),
					"min_rating":    minRatingProp(),
					"min_votes":     minVotesProp(),
					"include_adult": includeAdultProp(),
					"page":          pageProp(),
				}),
			},
			Request: usecase.RequestSpec{
				Path: "/discover/movie",
				Query: map[string]string{
					"sort_by":       "sort_by",
					"with_genres":   "with_genres",
					"year":          "primary_release_year",
					"min_rating":    "vote_average.gte",
					"min_votes":     "vote_count.gte",
					"include_adult": "include_adult",
					"page":          "page",
				},
			},
			Project: filteredPageProjector("discover_movies", discoverMovieFilters, movieSummaryFrom),
		},
	}
}
