package emoji

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	apperrors "github.com/Spiderpig86/gittr/internal/errors"
	"github.com/Spiderpig86/gittr/internal/infrastructure/httpclient"
)

// DefaultCatalogURL is the upstream gitmoji document.
const DefaultCatalogURL = "https://raw.githubusercontent.com/carloscuesta/gitmoji/master/packages/gitmojis/src/gitmojis.json"

const maxCatalogSize = 4 << 20

//go:embed data/gitmojis.json
var bundledCatalog []byte

// Source supplies a complete catalog.
type Source interface {
	// ID identifies the source; it keys the on-disk copy of the catalog.
	ID() string
	Fetch(ctx context.Context) ([]Emoji, error)
}

type document struct {
	Gitmojis []Emoji `json:"gitmojis"`
}

func decode(data []byte) ([]Emoji, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, apperrors.ErrCatalogDecode.WithError(err)
	}
	if len(doc.Gitmojis) == 0 {
		return nil, apperrors.ErrCatalogEmpty
	}
	return doc.Gitmojis, nil
}

// BundledSource serves the catalog compiled into the binary.
type BundledSource struct{}

func (BundledSource) ID() string { return "bundled" }

func (BundledSource) Fetch(context.Context) ([]Emoji, error) {
	return decode(bundledCatalog)
}

// HTTPSource downloads a gitmoji-formatted document.
type HTTPSource struct {
	url    string
	client httpclient.HTTPClient
}

func NewHTTPSource(url string, client httpclient.HTTPClient) *HTTPSource {
	if url == "" {
		url = DefaultCatalogURL
	}
	if client == nil {
		client = httpclient.NewDefaultHTTPClient()
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) ID() string { return s.url }

func (s *HTTPSource) Fetch(ctx context.Context) ([]Emoji, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, s.url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogSize))
	if err != nil {
		return nil, fmt.Errorf("error reading catalog: %w", err)
	}

	return decode(data)
}
