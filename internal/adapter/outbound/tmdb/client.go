package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tcehjaava/tmdb-mcp-server/internal/domain"
)

// DefaultBaseURL is the TMDB v3 API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Config carries the client settings resolved at startup.
type Config struct {
	// BaseURL overrides the API root, mainly for tests. Empty means DefaultBaseURL.
	BaseURL string
	// APIKey is the TMDB read access token sent as a bearer credential.
	APIKey string
	// Language is an optional ISO 639-1 value (for example "en-US") appended
	// to every request so localized fields come back in that language.
	Language string
}

// Client implements the usecase.UpstreamClient interface against the TMDB v3
// API using standard net/http.
type Client struct {
	baseURL  string
	token    string
	language string
	client   *http.Client
	logger   *slog.Logger
}

// NewClient creates a new TMDB client. A missing API key is a startup
// misconfiguration and fails fast here rather than on the first tool call.
func NewClient(cfg Config, client *http.Client, logger *slog.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &domain.ConfigurationError{Message: "TMDB API key is not configured (set TMDB_API_KEY)"}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    cfg.APIKey,
		language: cfg.Language,
		client:   client,
		logger:   logger.With("component", "tmdb_client"),
	}, nil
}

// Get executes one GET against the API and returns the raw JSON body.
// Non-2xx responses and transport failures are both returned as
// *domain.UpstreamError; a transport failure carries status code 0.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	log := c.logger.With(slog.String("path", path))

	// Merge into a fresh set so the caller's values stay untouched.
	merged := url.Values{}
	for key, values := range query {
		merged[key] = values
	}
	if c.language != "" {
		merged.Set("language", c.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		log.Error("Failed to create TMDB request", slog.Any("error", err))
		return nil, &domain.UpstreamError{Message: fmt.Sprintf("building request for %s: %v", path, err)}
	}
	if len(merged) > 0 {
		req.URL.RawQuery = merged.Encode()
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	log.Debug("Executing TMDB request", slog.String("url", req.URL.String()))
	resp, err := c.client.Do(req)
	if err != nil {
		log.Error("TMDB request failed", slog.Any("error", err))
		return nil, &domain.UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read TMDB response body", slog.Any("error", err))
		return nil, &domain.UpstreamError{Message: fmt.Sprintf("reading response body: %v", err)}
	}
	log.Debug("Received TMDB response", slog.Int("status_code", resp.StatusCode), slog.Int("bytes", len(body)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn("TMDB returned a non-success status", slog.Int("status_code", resp.StatusCode))
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Message: errorMessage(body, resp.StatusCode)}
	}
	return json.RawMessage(body), nil
}

// errorMessage extracts the status_message from a TMDB error envelope,
// falling back to the raw body or the HTTP status text.
func errorMessage(body []byte, httpStatus int) string {
	var envelope struct {
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.StatusMessage != "" {
		return envelope.StatusMessage
	}
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		return trimmed
	}
	return http.StatusText(httpStatus)
}
