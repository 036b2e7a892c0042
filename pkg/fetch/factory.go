package fetch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/puzpuzpuz/xsync"
)

// IsRemote reports whether location is fetched over HTTP
func IsRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Fetcher dispatches locations to the right source and caches contents
type Fetcher struct {
	remote      Source
	local       Source
	cache       *xsync.Map
	concurrency int
}

// NewFetcher creates a fetcher using HTTP for URLs and files otherwise
func NewFetcher(config *Config, concurrency int) (*Fetcher, error) {
	if config == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return newFetcher(NewHTTPSource(config), NewFileSource(), concurrency), nil
}

func newFetcher(remote, local Source, concurrency int) *Fetcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Fetcher{
		remote:      remote,
		local:       local,
		cache:       xsync.NewMap(),
		concurrency: concurrency,
	}
}

// SourceFor returns the source responsible for location
func (f *Fetcher) SourceFor(location string) Source {
	if IsRemote(location) {
		return f.remote
	}
	return f.local
}

// Fetch returns the content of location, from cache when possible
func (f *Fetcher) Fetch(ctx context.Context, location string) (string, error) {
	if cached, ok := f.cache.Load(location); ok {
		return cached.(string), nil
	}

	content, err := f.SourceFor(location).Fetch(ctx, location)
	if err != nil {
		return "", err
	}
	f.cache.Store(location, content)
	return content, nil
}

// Invalidate drops a cached location so the next Fetch reloads it
func (f *Fetcher) Invalidate(location string) {
	f.cache.Delete(location)
}

// FetchAll retrieves every location with bounded parallelism. Contents are
// returned in input order; the error of the earliest failing location wins.
func (f *Fetcher) FetchAll(ctx context.Context, locations []string) ([]string, error) {
	contents := make([]string, len(locations))
	errs := make([]error, len(locations))

	sem := make(chan struct{}, f.concurrency)
	var wg sync.WaitGroup

	for i, location := range locations {
		wg.Add(1)
		go func(i int, location string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				errs[i] = ctx.Err()
				return
			}
			defer func() { <-sem }()

			contents[i], errs[i] = f.Fetch(ctx, location)
		}(i, location)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", locations[i], err)
		}
	}
	return contents, nil
}
