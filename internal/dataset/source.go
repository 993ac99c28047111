package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Source retrieves raw dataset files by name from a base location, which
// is either a local directory or an HTTP(S) base URL.
type Source struct {
	base   string
	isHTTP bool
	client *http.Client
}

// NewSource creates a Source rooted at base. Bases beginning with http://
// or https:// are fetched over the network; everything else is treated as
// a local directory.
func NewSource(base string) Source {
	isHTTP := strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://")
	return Source{
		base:   base,
		isHTTP: isHTTP,
		client: http.DefaultClient,
	}
}

// Fetch returns the raw bytes of the named dataset file. A missing file or
// non-2xx response yields ErrSourceMissing. The fetch honours ctx; a
// caller that goes away mid-fetch gets ctx.Err() and the body is dropped.
func (s Source) Fetch(ctx context.Context, name string) ([]byte, error) {
	if s.isHTTP {
		return s.fetchHTTP(ctx, name)
	}
	return s.fetchFile(ctx, name)
}

func (s Source) fetchFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(filepath.Join(s.base, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, name)
		}
		return nil, fmt.Errorf("reading dataset file %s: %w", name, err)
	}
	return b, nil
}

func (s Source) fetchHTTP(ctx context.Context, name string) ([]byte, error) {
	target, err := url.JoinPath(s.base, name)
	if err != nil {
		return nil, fmt.Errorf("building dataset URL for %s: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("building dataset request for %s: %w", name, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceMissing, name, err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrSourceMissing, name, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("reading dataset response for %s: %w", name, err)
	}
	return b, nil
}
