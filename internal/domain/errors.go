package domain

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a startup-time misconfiguration, such as a
// missing API key. It is never produced during tool dispatch.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Violation describes a single argument that failed schema validation.
type Violation struct {
	Field   string
	Message string
}

// ValidationError aggregates every violation found in one tool call's
// arguments. Validation is all-or-nothing, so a call that produces this
// error was never sent upstream.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid arguments"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "invalid arguments: " + strings.Join(parts, "; ")
}

// UpstreamError reports a failed call to the TMDB API. StatusCode carries
// the HTTP status when a response was received, and is 0 when the request
// never completed (DNS failure, timeout, connection refused). Message is
// the upstream status_message when one was returned.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("TMDB API unreachable: %s", e.Message)
	}
	return fmt.Sprintf("TMDB API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// ProjectionError reports an upstream payload that could not be decoded
// into the shape the tool promises. It indicates a contract drift between
// this server and the TMDB API rather than a caller mistake.
type ProjectionError struct {
	Message string
	Err     error
}

func (e *ProjectionError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *ProjectionError) Unwrap() error {
	return e.Err
}
