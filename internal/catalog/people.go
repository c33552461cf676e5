package catalog

import (
	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

// tmdbPerson is the upstream list-item shape for person search and popular
// responses. known_for entries are polymorphic and reuse the trending
// projection.
type tmdbPerson struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name"`
	KnownForDepartment string             `json:"known_for_department"`
	Popularity         float64            `json:"popularity"`
	ProfilePath        *string            `json:"profile_path"`
	KnownFor           []tmdbTrendingItem `json:"known_for"`
}

type personSummary struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	KnownForDepartment string  `json:"known_for_department"`
	Popularity         float64 `json:"popularity"`
	ProfileURL         *string `json:"profile_url"`
	KnownFor           []any   `json:"known_for"`
}

func personSummaryFrom(in tmdbPerson) personSummary {
	knownFor := make([]any, 0, len(in.KnownFor))
	for _, item := range in.KnownFor {
		knownFor = append(knownFor, projectTrendingItem(item))
	}
	return personSummary{
		ID:                 in.ID,
		Name:               in.Name,
		KnownForDepartment: in.KnownForDepartment,
		Popularity:         in.Popularity,
		ProfileURL:         profileURL(in.ProfilePath),
		KnownFor:           knownFor,
	}
}

type tmdbPersonDetails struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Biography          string   `json:"biography"`
	Birthday           *string  `json:"birthday"`
	Deathday           *string  `json:"deathday"`
	PlaceOfBirth       *string  `json:"place_of_birth"`
	KnownForDepartment string   `json:"known_for_department"`
	Popularity         float64  `json:"popularity"`
	AlsoKnownAs        []string `json:"also_known_as"`
	IMDBID             *string  `json:"imdb_id"`
	Homepage           *string  `json:"homepage"`
	ProfilePath        *string  `json:"profile_path"`
}

type personDetails struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Biography          string   `json:"biography"`
	Birthday           *string  `json:"birthday"`
	Deathday           *string  `json:"deathday"`
	PlaceOfBirth       *string  `json:"place_of_birth"`
	KnownForDepartment string   `json:"known_for_department"`
	Popularity         float64  `json:"popularity"`
	AlsoKnownAs        []string `json:"also_known_as"`
	IMDBID             *string  `json:"imdb_id"`
	Homepage           *string  `json:"homepage"`
	ProfileURL         *string  `json:"profile_url"`
}

// personTools is the people portion of the catalog.
func personTools() []usecase.RegisteredTool {
	return []usecase.RegisteredTool{
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "search_people",
				Description: "Search for people by name. Returns a page of matches with the work they are known for.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"query":         {Type: "string", Description: "Text to match against person names."},
					"page":          pageProp(),
					"include_adult": includeAdultProp(),
				}, "query"),
			},
			Request: usecase.RequestSpec{
				Path: "/search/person",
				Query: map[string]string{
					"query":         "query",
					"page":          "page",
					"include_adult": "include_adult",
				},
			},
			Project: pageProjector("search_people", personSummaryFrom),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_person_details",
				Description: "Fetch biographical details for one person: biography, birth and death dates, and profile photo URL.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"person_id": {Type: "integer", Description: "TMDB person ID.", Minimum: f64(1)},
				}, "person_id"),
			},
			Request: usecase.RequestSpec{Path: "/person/{person_id}"},
			Project: docProjector("get_person_details", func(in tmdbPersonDetails) any {
				alsoKnownAs := in.AlsoKnownAs
				if alsoKnownAs == nil {
					alsoKnownAs = []string{}
				}
				return personDetails{
					ID:                 in.ID,
					Name:               in.Name,
					Biography:          in.Biography,
					Birthday:           in.Birthday,
					Deathday:           in.Deathday,
					PlaceOfBirth:       in.PlaceOfBirth,
					KnownForDepartment: in.KnownForDepartment,
					Popularity:         in.Popularity,
					AlsoKnownAs:        alsoKnownAs,
					IMDBID:             in.IMDBID,
					Homepage:           in.Homepage,
					ProfileURL:         profileURL(in.ProfilePath),
				}
			}),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_person_movie_credits",
				Description: "Fetch a person's movie work: acting roles (top 20 in upstream order) and key crew positions.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"person_id": {Type: "integer", Description: "TMDB person ID.", Minimum: f64(1)},
				}, "person_id"),
			},
			Request: usecase.RequestSpec{Path: "/person/{person_id}/movie_credits"},
			Project: personMovieCreditsProjector("get_person_movie_credits"),
		},
		{
			Descriptor: domain.ToolDescriptor{
				Name:        "get_popular_people",
				Description: "List the people currently most popular on TMDB.",
				InputSchema: objectSchema(map[string]domain.JSONSchemaProps{
					"page": pageProp(),
				}),
			},
			Request: usecase.RequestSpec{
				Path:  "/person/popular",
				Query: map[string]string{"page": "page"},
			},
			Project: pageProjector("get_popular_people", personSummaryFrom),
		},
	}
}
