// Package fetch retrieves input documents before translation starts.
// Retrieval may run concurrently; translation consumes results in order.
package fetch

import (
	"context"
	"time"
)

// Source retrieves the text of documents from one kind of location
type Source interface {
	// Fetch returns the full content behind location
	Fetch(ctx context.Context, location string) (string, error)

	// Name identifies the source kind in errors and logs
	Name() string
}

// Config represents configuration for document sources
type Config struct {
	Timeout   time.Duration `yaml:"timeout"`    // Per-request timeout
	UserAgent string        `yaml:"user_agent"` // Sent with HTTP requests
}

// FetchError wraps a failure to retrieve a document
type FetchError struct {
	Source   string
	Location string
	Message  string
	Err      error
}

func (e *FetchError) Error() string {
	msg := e.Source + ": " + e.Location + ": " + e.Message
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
