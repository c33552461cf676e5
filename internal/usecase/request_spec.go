package usecase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
)

// RequestSpec declares how a tool's validated arguments become an upstream
// API request. Path may contain {placeholder} segments filled from the
// argument of the same name. Query maps argument names to upstream query
// parameter keys; only declared mappings are ever sent, and optional
// arguments that are absent after validation are omitted entirely.
type RequestSpec struct {
	Path  string
	Query map[string]string
}

// Resolve substitutes path placeholders and assembles the query values from
// the validated arguments. A placeholder with no matching argument is a
// registration bug, so Resolve returns an error instead of a half-built
// request.
func (s RequestSpec) Resolve(args domain.Arguments) (string, url.Values, error) {
	var path strings.Builder
	rest := s.Path
	for {
		start := strings.IndexByte(rest, '{')
		if start < 0 {
			path.WriteString(rest)
			break
		}
		end := strings.IndexByte(rest[start:], '}')
		if end < 0 {
			return "", nil, fmt.Errorf("malformed path template %q", s.Path)
		}
		name := rest[start+1 : start+end]
		value, ok := args[name]
		if !ok {
			return "", nil, fmt.Errorf("no argument fills path placeholder {%s} in %q", name, s.Path)
		}
		path.WriteString(rest[:start])
		path.WriteString(url.PathEscape(formatArgument(value)))
		rest = rest[start+end+1:]
	}

	query := url.Values{}
	for field, key := range s.Query {
		if value, ok := args[field]; ok {
			query.Set(key, formatArgument(value))
		}
	}
	return path.String(), query, nil
}

// formatArgument renders a validated argument for use in a URL. Validation
// only ever produces these four types.
func formatArgument(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return fmt.Sprint(v)
}
