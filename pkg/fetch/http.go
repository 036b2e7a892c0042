package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPSource downloads documents over HTTP(S)
type HTTPSource struct {
	config *Config
	client *http.Client
}

// NewHTTPSource creates a new HTTP source instance
func NewHTTPSource(config *Config) *HTTPSource {
	return &HTTPSource{
		config: config,
		client: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Name returns the source kind
func (s *HTTPSource) Name() string {
	return "http"
}

// Fetch performs a GET request and returns the response body
func (s *HTTPSource) Fetch(ctx context.Context, location string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return "", &FetchError{
			Source:   s.Name(),
			Location: location,
			Message:  "failed to create HTTP request",
			Err:      err,
		}
	}
	if s.config.UserAgent != "" {
		req.Header.Set("User-Agent", s.config.UserAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &FetchError{
			Source:   s.Name(),
			Location: location,
			Message:  "HTTP request failed",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &FetchError{
			Source:   s.Name(),
			Location: location,
			Message:  fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{
			Source:   s.Name(),
			Location: location,
			Message:  "failed to read response body",
			Err:      err,
		}
	}

	return string(body), nil
}
