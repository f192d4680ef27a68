// Package probe resolves image pixel dimensions for the justified layout.
//
// Dimensions are read from image headers only (image.DecodeConfig), so a
// probe downloads and decodes just the first bytes it needs rather than the
// whole file. Probes fan out with bounded concurrency and apply results
// last-write-wins per id; a failed probe simply leaves the layout's default
// aspect ratio in place.
package probe

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/http"
	"sync"

	// Standard formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Extended formats served by file-service variants.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/filedeck/filedeck/internal/client/layout"
	"github.com/filedeck/filedeck/internal/client/models"
	"github.com/filedeck/filedeck/internal/logging"
)

const defaultConcurrency = 4

// Prober caches resolved dimensions and fetches unknown ones over HTTP.
type Prober struct {
	httpClient  *http.Client
	concurrency int
	log         logging.Logger

	mu   sync.Mutex
	dims layout.DimensionMap
}

func New(httpClient *http.Client, concurrency int, log logging.Logger) *Prober {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Prober{
		httpClient:  httpClient,
		concurrency: concurrency,
		log:         log,
		dims:        make(layout.DimensionMap),
	}
}

// Set records dimensions for an id. Later writes for the same id win;
// identical duplicates are harmless.
func (p *Prober) Set(id string, d layout.Dimensions) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dims[id] = d
}

// Dimensions returns a copy of the cache for handing to the packer.
func (p *Prober) Dimensions() layout.DimensionMap {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(layout.DimensionMap, len(p.dims))
	for k, v := range p.dims {
		out[k] = v
	}
	return out
}

// ResolveAll probes every record not already cached, fetching each one's URL
// via urlFor. Probes run in parallel with no ordering guarantee on
// completion; ResolveAll returns once all have finished. Individual failures
// are logged and skipped.
func (p *Prober) ResolveAll(ctx context.Context, records []models.FileRecord, urlFor func(models.FileRecord) string) {
	sem := make(chan struct{}, p.concurrency)
	var wg sync.WaitGroup

	for _, rec := range records {
		p.mu.Lock()
		_, known := p.dims[rec.ID]
		p.mu.Unlock()
		if known {
			continue
		}

		wg.Add(1)
		go func(rec models.FileRecord) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			d, err := p.fetch(ctx, urlFor(rec))
			if err != nil {
				if p.log != nil {
					p.log.Warn(ctx, "dimension probe failed", "id", rec.ID, "error", err)
				}
				return
			}
			p.Set(rec.ID, d)
		}(rec)
	}

	wg.Wait()
}

func (p *Prober) fetch(ctx context.Context, url string) (layout.Dimensions, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return layout.Dimensions{}, fmt.Errorf("building probe request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return layout.Dimensions{}, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return layout.Dimensions{}, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}

	return DecodeDimensions(resp.Body)
}

// DecodeDimensions reads just the image header from r and returns its pixel
// size.
func DecodeDimensions(r io.Reader) (layout.Dimensions, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return layout.Dimensions{}, fmt.Errorf("decoding image header: %w", err)
	}
	return layout.Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
}
