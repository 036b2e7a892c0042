package fetch

import (
	"context"
	"os"
	"strings"
)

// FileSource reads documents from the local filesystem
type FileSource struct{}

// NewFileSource creates a new file source
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Name returns the source kind
func (s *FileSource) Name() string {
	return "file"
}

// Fetch reads the file at location; a file:// prefix is accepted
func (s *FileSource) Fetch(ctx context.Context, location string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &FetchError{Source: s.Name(), Location: location, Message: "cancelled", Err: err}
	}

	path := strings.TrimPrefix(location, "file://")
	content, err := os.ReadFile(path)
	if err != nil {
		return "", &FetchError{
			Source:   s.Name(),
			Location: location,
			Message:  "failed to read file",
			Err:      err,
		}
	}
	return string(content), nil
}
