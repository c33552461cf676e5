package catalog_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

// validated runs a raw argument bag through the tool's own schema, the same
// path a live dispatch takes.
func validated(t *testing.T, tool usecase.RegisteredTool, raw map[string]any) domain.Arguments {
	t.Helper()
	args, err := domain.ValidateArguments(tool.Descriptor.InputSchema, raw)
	require.NoError(t, err)
	return args
}

// project runs the tool's projector and returns the result re-marshaled to
// JSON, which is how callers observe it.
func project(t *testing.T, tool usecase.RegisteredTool, args domain.Arguments, upstream string) []byte {
	t.Helper()
	doc, err := tool.Project(args, json.RawMessage(upstream))
	require.NoError(t, err)
	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return out
}

func TestSearchMovies_PosterURLs(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "search_movies")
	args := validated(t, tool, map[string]any{"query": "abc"})

	upstream := `{
		"page": 1,
		"results": [
			{"id": 1, "title": "First", "release_date": "2020-01-01", "overview": "o1",
			 "vote_average": 7.1, "vote_count": 100, "popularity": 9.9, "poster_path": "/abc.jpg"},
			{"id": 2, "title": "Second", "release_date": "", "overview": "",
			 "vote_average": 0, "vote_count": 0, "popularity": 0, "poster_path": null}
		],
		"total_pages": 3,
		"total_results": 42
	}`

	out := project(t, tool, args, upstream)

	var got struct {
		Page         int64 `json:"page"`
		TotalPages   int64 `json:"total_pages"`
		TotalResults int64 `json:"total_results"`
		Results      []struct {
			ID        int64   `json:"id"`
			Title     string  `json:"title"`
			PosterURL *string `json:"poster_url"`
		} `json:"results"`
	}
	require.NoError(json.Unmarshal(out, &got))

	assert.Equal(int64(1), got.Page)
	assert.Equal(int64(3), got.TotalPages)
	assert.Equal(int64(42), got.TotalResults)
	require.Len(got.Results, 2)

	require.NotNil(got.Results[0].PosterURL)
	assert.Equal("https://image.tmdb.org/t/p/w500/abc.jpg", *got.Results[0].PosterURL)
	assert.Nil(got.Results[1].PosterURL)

	// The null must be serialized, not omitted.
	assert.Contains(string(out), `"poster_url":null`)
}

func TestSearchMovies_EmptyResultsStayAnArray(t *testing.T) {
	tool := toolByName(t, "search_movies")
	args := validated(t, tool, map[string]any{"query": "zzz"})

	out := project(t, tool, args, `{"page": 1, "results": [], "total_pages": 1, "total_results": 0}`)
	assert.Contains(t, string(out), `"results":[]`)
}

func TestMovieCredits_TruncationAndCrewFilter(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "get_movie_credits")
	args := validated(t, tool, map[string]any{"movie_id": float64(603)})

	cast := make([]map[string]any, 0, 30)
	for i := 1; i <= 30; i++ {
		cast = append(cast, map[string]any{
			"id": i, "name": fmt.Sprintf("Actor %d", i), "character": fmt.Sprintf("Role %d", i),
			"order": i - 1, "profile_path": nil,
		})
	}
	fixture := map[string]any{
		"id":   603,
		"cast": cast,
		"crew": []map[string]any{
			{"id": 905, "name": "Lana Wachowski", "job": "Director", "department": "Directing", "profile_path": "/lw.jpg"},
			{"id": 906, "name": "Some Gaffer", "job": "Gaffer", "department": "Lighting", "profile_path": nil},
		},
	}
	upstream, err := json.Marshal(fixture)
	require.NoError(err)

	out := project(t, tool, args, string(upstream))

	var got struct {
		ID   int64 `json:"id"`
		Cast []struct {
			Name  string `json:"name"`
			Order int64  `json:"order"`
		} `json:"cast"`
		Crew []struct {
			Name       string  `json:"name"`
			Job        string  `json:"job"`
			Department string  `json:"department"`
			ProfileURL *string `json:"profile_url"`
		} `json:"crew"`
	}
	require.NoError(json.Unmarshal(out, &got))

	assert.Equal(int64(603), got.ID)
	require.Len(got.Cast, 20)
	assert.Equal("Actor 1", got.Cast[0].Name)
	assert.Equal("Actor 20", got.Cast[19].Name)

	require.Len(got.Crew, 1)
	assert.Equal("Lana Wachowski", got.Crew[0].Name)
	assert.Equal("Director", got.Crew[0].Job)
	require.NotNil(got.Crew[0].ProfileURL)
	assert.Equal("https://image.tmdb.org/t/p/h632/lw.jpg", *got.Crew[0].ProfileURL)
}

func TestTVCredits_KeepsCreators(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "get_tv_show_credits")
	args := validated(t, tool, map[string]any{"series_id": float64(1396)})

	upstream := `{
		"id": 1396,
		"cast": [{"id": 1, "name": "Bryan Cranston", "character": "Walter White", "order": 0, "profile_path": null}],
		"crew": [
			{"id": 2, "name": "Vince Gilligan", "job": "Creator", "department": "Writing", "profile_path": null},
			{"id": 3, "name": "Key Grip", "job": "Key Grip", "department": "Camera", "profile_path": null}
		]
	}`

	out := project(t, tool, args, upstream)

	var got struct {
		Crew []struct {
			Name string `json:"name"`
			Job  string `json:"job"`
		} `json:"crew"`
	}
	require.NoError(json.Unmarshal(out, &got))
	require.Len(got.Crew, 1)
	assert.Equal("Creator", got.Crew[0].Job)
}

func TestTrending_MovieWindow(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "get_trending")
	args := validated(t, tool, map[string]any{"media_type": "movie", "time_window": "day", "page": float64(1)})

	results := make([]map[string]any, 0, 20)
	for i := 1; i <= 20; i++ {
		results = append(results, map[string]any{
			"media_type": "movie", "id": i, "title": fmt.Sprintf("Movie %d", i),
			"release_date": "2024-05-01", "overview": "plot", "vote_average": 6.5,
			"poster_path": "/p.jpg",
		})
	}
	fixture := map[string]any{"page": 1, "results": results, "total_pages": 10, "total_results": 200}
	upstream, err := json.Marshal(fixture)
	require.NoError(err)

	out := project(t, tool, args, string(upstream))

	var got struct {
		MediaType  string           `json:"media_type"`
		TimeWindow string           `json:"time_window"`
		Page       int64            `json:"page"`
		Results    []map[string]any `json:"results"`
	}
	require.NoError(json.Unmarshal(out, &got))

	assert.Equal("movie", got.MediaType)
	assert.Equal("day", got.TimeWindow)
	assert.Equal(int64(1), got.Page)
	require.Len(got.Results, 20)

	first := got.Results[0]
	assert.Contains(first, "title")
	assert.Contains(first, "release_date")
	assert.Contains(first, "overview")
	assert.NotContains(first, "name")
	assert.NotContains(first, "first_air_date")
}

func TestTrending_MixedAndUnknownVariants(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "get_trending")
	args := validated(t, tool, map[string]any{"media_type": "all", "time_window": "week"})

	upstream := `{
		"page": 1,
		"results": [
			{"media_type": "tv", "id": 10, "name": "Show", "first_air_date": "2019-01-01",
			 "overview": "tv plot", "vote_average": 8.0, "poster_path": "/tv.jpg"},
			{"media_type": "person", "id": 11, "name": "Star", "known_for_department": "Acting",
			 "popularity": 99.5, "profile_path": "/star.jpg"},
			{"media_type": "collection", "id": 12, "name": "Box Set"}
		],
		"total_pages": 1,
		"total_results": 3
	}`

	out := project(t, tool, args, upstream)

	var got struct {
		Results []map[string]any `json:"results"`
	}
	require.NoError(json.Unmarshal(out, &got))
	require.Len(got.Results, 3)

	tv := got.Results[0]
	assert.Equal("tv", tv["media_type"])
	assert.Equal("Show", tv["name"])
	assert.Equal("https://image.tmdb.org/t/p/w500/tv.jpg", tv["poster_url"])

	person := got.Results[1]
	assert.Equal("person", person["media_type"])
	assert.Equal("https://image.tmdb.org/t/p/h632/star.jpg", person["profile_url"])

	// Unrecognized discriminators keep their tag and nothing else is guessed.
	unknown := got.Results[2]
	assert.Equal(map[string]any{"media_type": "collection", "id": float64(12)}, unknown)
}

func TestDiscoverMovies_FiltersApplied(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "discover_movies")
	args := validated(t, tool, map[string]any{
		"min_rating":  float64(7.5),
		"with_genres": "878,12",
		"page":        float64(2),
	})

	out := project(t, tool, args, `{"page": 2, "results": [], "total_pages": 5, "total_results": 100}`)

	var got struct {
		Page           int64          `json:"page"`
		FiltersApplied map[string]any `json:"filters_applied"`
	}
	require.NoError(json.Unmarshal(out, &got))

	assert.Equal(int64(2), got.Page)
	// Defaults count as applied filters; omitted fields stay absent and the
	// page is pagination, not a filter.
	assert.Equal(map[string]any{
		"sort_by":       "popularity.desc",
		"include_adult": false,
		"min_rating":    7.5,
		"with_genres":   "878,12",
	}, got.FiltersApplied)
}

func TestMovieDetails_NullableFields(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "get_movie_details")
	args := validated(t, tool, map[string]any{"movie_id": float64(603)})

	upstream := `{
		"id": 603, "title": "The Matrix", "tagline": "Welcome to the Real World.",
		"overview": "A hacker learns the truth.", "release_date": "1999-03-30",
		"runtime": null, "genres": [{"id": 28, "name": "Action"}],
		"vote_average": 8.2, "vote_count": 24000, "popularity": 85.1,
		"status": "Released", "original_language": "en",
		"budget": 63000000, "revenue": 463517383,
		"homepage": null, "imdb_id": "tt0133093",
		"poster_path": "/abc.jpg", "backdrop_path": "/bg.jpg"
	}`

	out := project(t, tool, args, upstream)

	var got struct {
		Runtime     *int64  `json:"runtime"`
		Homepage    *string `json:"homepage"`
		IMDBID      *string `json:"imdb_id"`
		PosterURL   *string `json:"poster_url"`
		BackdropURL *string `json:"backdrop_url"`
		Genres      []struct {
			Name string `json:"name"`
		} `json:"genres"`
	}
	require.NoError(json.Unmarshal(out, &got))

	assert.Nil(got.Runtime)
	assert.Nil(got.Homepage)
	require.NotNil(got.IMDBID)
	assert.Equal("tt0133093", *got.IMDBID)
	require.NotNil(got.PosterURL)
	assert.Equal("https://image.tmdb.org/t/p/w500/abc.jpg", *got.PosterURL)
	require.NotNil(got.BackdropURL)
	assert.Equal("https://image.tmdb.org/t/p/w780/bg.jpg", *got.BackdropURL)
	require.Len(got.Genres, 1)
	assert.Equal("Action", got.Genres[0].Name)
}

func TestSearchPeople_KnownForReusesTrendingShapes(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "search_people")
	args := validated(t, tool, map[string]any{"query": "reeves"})

	upstream := `{
		"page": 1,
		"results": [{
			"id": 6384, "name": "Keanu Reeves", "known_for_department": "Acting",
			"popularity": 50.2, "profile_path": "/kr.jpg",
			"known_for": [
				{"media_type": "movie", "id": 603, "title": "The Matrix", "release_date": "1999-03-30",
				 "overview": "plot", "vote_average": 8.2, "poster_path": "/abc.jpg"},
				{"media_type": "tv", "id": 2261, "name": "Some Show", "first_air_date": "2001-01-01",
				 "overview": "tv plot", "vote_average": 7.0, "poster_path": null}
			]
		}],
		"total_pages": 1,
		"total_results": 1
	}`

	out := project(t, tool, args, upstream)

	var got struct {
		Results []struct {
			Name       string           `json:"name"`
			ProfileURL *string          `json:"profile_url"`
			KnownFor   []map[string]any `json:"known_for"`
		} `json:"results"`
	}
	require.NoError(json.Unmarshal(out, &got))
	require.Len(got.Results, 1)

	person := got.Results[0]
	assert.Equal("Keanu Reeves", person.Name)
	require.NotNil(person.ProfileURL)
	assert.Equal("https://image.tmdb.org/t/p/h632/kr.jpg", *person.ProfileURL)

	require.Len(person.KnownFor, 2)
	assert.Equal("The Matrix", person.KnownFor[0]["title"])
	assert.Equal("Some Show", person.KnownFor[1]["name"])
	assert.Nil(person.KnownFor[1]["poster_url"])
}

func TestPersonMovieCredits_RolesAndJobs(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "get_person_movie_credits")
	args := validated(t, tool, map[string]any{"person_id": float64(525)})

	upstream := `{
		"id": 525,
		"cast": [
			{"id": 603, "title": "The Matrix", "release_date": "1999-03-30", "character": "Neo",
			 "vote_average": 8.2, "poster_path": "/abc.jpg"}
		],
		"crew": [
			{"id": 245891, "title": "John Wick", "release_date": "2014-10-24", "job": "Producer",
			 "vote_average": 7.4, "poster_path": null},
			{"id": 245892, "title": "Other Film", "release_date": "2015-01-01", "job": "Stunts",
			 "vote_average": 6.0, "poster_path": null}
		]
	}`

	out := project(t, tool, args, upstream)

	var got struct {
		Cast []struct {
			Character string `json:"character"`
			Title     string `json:"title"`
		} `json:"cast"`
		Crew []struct {
			Job   string `json:"job"`
			Title string `json:"title"`
		} `json:"crew"`
	}
	require.NoError(json.Unmarshal(out, &got))

	require.Len(got.Cast, 1)
	assert.Equal("Neo", got.Cast[0].Character)

	require.Len(got.Crew, 1)
	assert.Equal("Producer", got.Crew[0].Job)
	assert.Equal("John Wick", got.Crew[0].Title)
}

func TestGetGenres_EchoAndEmptyList(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "get_genres")
	args := validated(t, tool, map[string]any{"media_type": "tv"})

	out := project(t, tool, args, `{"genres": [{"id": 18, "name": "Drama"}]}`)
	var got struct {
		MediaType string `json:"media_type"`
		Genres    []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		} `json:"genres"`
	}
	require.NoError(json.Unmarshal(out, &got))
	assert.Equal("tv", got.MediaType)
	require.Len(got.Genres, 1)
	assert.Equal("Drama", got.Genres[0].Name)

	empty := project(t, tool, args, `{"genres": []}`)
	assert.Contains(string(empty), `"genres":[]`)
}

func TestProjection_MalformedUpstreamIsAProjectionError(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	tool := toolByName(t, "search_movies")
	args := validated(t, tool, map[string]any{"query": "abc"})

	doc, err := tool.Project(args, json.RawMessage(`"just a string"`))
	require.Error(err)
	assert.Nil(doc)

	var pErr *domain.ProjectionError
	require.ErrorAs(err, &pErr)
	assert.Contains(pErr.Error(), "unexpected payload for search_movies")
}

func TestProjection_IsDeterministic(t *testing.T) {
	assert := assert.New(t)

	tool := toolByName(t, "discover_movies")
	args := validated(t, tool, map[string]any{"min_rating": float64(8)})

	upstream := `{"page": 1, "results": [{"id": 1, "title": "A", "release_date": "2020-01-01",
		"overview": "o", "vote_average": 8.5, "vote_count": 10, "popularity": 1.0,
		"poster_path": "/a.jpg"}], "total_pages": 1, "total_results": 1}`

	first := project(t, tool, args, upstream)
	second := project(t, tool, args, upstream)
	assert.Equal(string(first), string(second))
}
