package catalog

import (
	"slices"

	"github.com/tcehjaava/tmdb-mcp-server/internal/usecase"
)

// Credits are reduced the same way for every credits tool: cast keeps the
// first 20 entries in upstream billing order, crew keeps only the jobs an
// agent is likely to ask about. No re-sorting is applied.
const maxCastEntries = 20

var movieCrewJobs = []string{"Director", "Producer", "Writer", "Screenplay", "Story", "Executive Producer"}

// tvCrewJobs additionally keeps series creators.
var tvCrewJobs = []string{"Director", "Producer", "Writer", "Screenplay", "Story", "Executive Producer", "Creator"}

type tmdbCreditEntry struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Character   string  `json:"character"`
	Job         string  `json:"job"`
	Department  string  `json:"department"`
	Order       int64   `json:"order"`
	ProfilePath *string `json:"profile_path"`
}

type tmdbCredits struct {
	ID   int64             `json:"id"`
	Cast []tmdbCreditEntry `json:"cast"`
	Crew []tmdbCreditEntry `json:"crew"`
}

type castMember struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Character  string  `json:"character"`
	Order      int64   `json:"order"`
	ProfileURL *string `json:"profile_url"`
}

type crewMember struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Job        string  `json:"job"`
	Department string  `json:"department"`
	ProfileURL *string `json:"profile_url"`
}

type creditsDoc struct {
	ID   int64        `json:"id"`
	Cast []castMember `json:"cast"`
	Crew []crewMember `json:"crew"`
}

func castMemberFrom(in tmdbCreditEntry) castMember {
	return castMember{
		ID:         in.ID,
		Name:       in.Name,
		Character:  in.Character,
		Order:      in.Order,
		ProfileURL: profileURL(in.ProfilePath),
	}
}

func crewMemberFrom(in tmdbCreditEntry) crewMember {
	return crewMember{
		ID:         in.ID,
		Name:       in.Name,
		Job:        in.Job,
		Department: in.Department,
		ProfileURL: profileURL(in.ProfilePath),
	}
}

// projectCast truncates to the top billing entries and projects each one.
func projectCast[In, Out any](cast []In, project func(In) Out) []Out {
	if len(cast) > maxCastEntries {
		cast = cast[:maxCastEntries]
	}
	out := make([]Out, 0, len(cast))
	for _, entry := range cast {
		out = append(out, project(entry))
	}
	return out
}

// projectCrew keeps entries whose job is on the allow-list, in upstream order.
func projectCrew[In, Out any](crew []In, jobs []string, jobOf func(In) string, project func(In) Out) []Out {
	out := make([]Out, 0, len(crew))
	for _, entry := range crew {
		if slices.Contains(jobs, jobOf(entry)) {
			out = append(out, project(entry))
		}
	}
	return out
}

func creditsProjector(toolName string, crewJobs []string) usecase.ProjectFunc {
	return docProjector(toolName, func(in tmdbCredits) any {
		return creditsDoc{
			ID:   in.ID,
			Cast: projectCast(in.Cast, castMemberFrom),
			Crew: projectCrew(in.Crew, crewJobs, func(e tmdbCreditEntry) string { return e.Job }, crewMemberFrom),
		}
	})
}

// Person filmographies reuse the cast/crew policy with movie-shaped entries.

type tmdbPersonMovieCredit struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Character   string  `json:"character"`
	Job         string  `json:"job"`
	VoteAverage float64 `json:"vote_average"`
	PosterPath  *string `json:"poster_path"`
}

type tmdbPersonMovieCredits struct {
	ID   int64                   `json:"id"`
	Cast []tmdbPersonMovieCredit `json:"cast"`
	Crew []tmdbPersonMovieCredit `json:"crew"`
}

type personMovieRole struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Character   string  `json:"character"`
	VoteAverage float64 `json:"vote_average"`
	PosterURL   *string `json:"poster_url"`
}

type personMovieJob struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Job         string  `json:"job"`
	VoteAverage float64 `json:"vote_average"`
	PosterURL   *string `json:"poster_url"`
}

type personMovieCreditsDoc struct {
	ID   int64             `json:"id"`
	Cast []personMovieRole `json:"cast"`
	Crew []personMovieJob  `json:"crew"`
}

func personMovieCreditsProjector(toolName string) usecase.ProjectFunc {
	return docProjector(toolName, func(in tmdbPersonMovieCredits) any {
		return personMovieCreditsDoc{
			ID: in.ID,
			Cast: projectCast(in.Cast, func(e tmdbPersonMovieCredit) personMovieRole {
				return personMovieRole{
					ID:          e.ID,
					Title:       e.Title,
					ReleaseDate: e.ReleaseDate,
					Character:   e.Character,
					VoteAverage: e.VoteAverage,
					PosterURL:   posterURL(e.PosterPath),
				}
			}),
			Crew: projectCrew(in.Crew, movieCrewJobs, func(e tmdbPersonMovieCredit) string { return e.Job },
				func(e tmdbPersonMovieCredit) personMovieJob {
					return personMovieJob{
						ID:          e.ID,
						Title:       e.Title,
						ReleaseDate: e.ReleaseDate,
						Job:         e.Job,
						VoteAverage: e.VoteAverage,
						PosterURL:   posterURL(e.PosterPath),
					}
				}),
		}
	})
}
