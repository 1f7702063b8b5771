// Package httpsource fetches dataset documents from a static file server.
package httpsource

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"datacat/internal/adapters/jsondoc"
	"datacat/internal/domain"
	"datacat/internal/ports"
)

// DefaultTimeout caps a single document request.
const DefaultTimeout = 30 * time.Second

// Source implements ports.DatasetSource with GET <baseURL>/<file>
type Source struct {
	baseURL string
	files   map[domain.DatasetName]string
	client  *http.Client
}

// Ensure Source implements DatasetSource
var _ ports.DatasetSource = (*Source)(nil)

// Option configures a Source.
type Option func(*Source)

// WithClient replaces the HTTP client.
func WithClient(c *http.Client) Option {
	return func(s *Source) {
		s.client = c
	}
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.client = &http.Client{Timeout: d}
	}
}

// NewSource creates a source rooted at baseURL.
func NewSource(baseURL string, files map[domain.DatasetName]string, opts ...Option) *Source {
	s := &Source{
		baseURL: strings.TrimRight(baseURL, "/"),
		files:   files,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Location returns the document URL.
func (s *Source) Location(name domain.DatasetName) string {
	return s.baseURL + "/" + s.file(name)
}

// Fetch retrieves and decodes the dataset's document. Any non-2xx status is
// reported as "failed to fetch /<file>". No retries.
func (s *Source) Fetch(ctx context.Context, name domain.DatasetName) (*domain.Document, error) {
	file := s.file(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.Location(name), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch /%s", file)
	}

	doc, err := jsondoc.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", file, err)
	}
	return doc, nil
}

func (s *Source) file(name domain.DatasetName) string {
	if f, ok := s.files[name]; ok && f != "" {
		return f
	}
	return name.DefaultFile()
}
