package pdfdoc

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// RetrieverConfig holds document retriever settings.
type RetrieverConfig struct {
	// Host is the base URL documents are derived from.
	Host string
	// FetchTimeout bounds a single download (default 30s).
	FetchTimeout time.Duration
	// RequestsPerSecond paces downloads against the remote host
	// (default 2/s, about the original 500ms inter-request delay).
	RequestsPerSecond float64
	// Extractor overrides the PDF text extractor (mainly for tests).
	Extractor Extractor
	// HTTPClient overrides the default client (mainly for tests).
	HTTPClient *http.Client
	// Logger is optional.
	Logger *slog.Logger
}

// Retriever downloads notice documents at a bounded rate and extracts
// their text.
type Retriever struct {
	host       string
	httpClient *http.Client
	limiter    *rate.Limiter
	extractor  Extractor
	logger     *slog.Logger
}

// NewRetriever creates a document retriever.
func NewRetriever(cfg RetrieverConfig) *Retriever {
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 2.0
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.FetchTimeout}
	}
	extractor := cfg.Extractor
	if extractor == nil {
		extractor = PDFExtractor{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Retriever{
		host:       cfg.Host,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		extractor:  extractor,
		logger:     logger,
	}
}

// DocumentURL derives the canonical document URL for a notice.
func (r *Retriever) DocumentURL(id string, published time.Time) string {
	return DocumentURL(r.host, id, published)
}

// Fetch downloads one document and extracts its text. The rate limiter is
// consulted before the request so consecutive fetches stay paced even when
// a download fails.
func (r *Retriever) Fetch(ctx context.Context, url string) (*Document, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := r.extractor.Extract(data)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("document fetched", "url", url, "pages", doc.Pages)
	return doc, nil
}
