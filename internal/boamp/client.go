// Package boamp is a client for the BOAMP opendatasoft records catalog.
package boamp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jfmartel/boampwatch/internal/records"
)

// hardOffsetCeiling bounds pagination regardless of the caller's record cap;
// the opendatasoft API rejects deeper offsets anyway.
const hardOffsetCeiling = 10000

// Config holds catalog client settings.
type Config struct {
	// URL is the records endpoint.
	URL string
	// MarketType is the server-side notice category filter.
	MarketType string
	// PageSize is the number of records per page.
	PageSize int
	// MaxRecords caps accumulation for one fetch.
	MaxRecords int
	// HTTPClient overrides the default client (mainly for tests).
	HTTPClient *http.Client
	// Logger is optional.
	Logger *slog.Logger
}

// Client pages through the records catalog.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a catalog client.
func NewClient(cfg Config) *Client {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.MaxRecords <= 0 {
		cfg.MaxRecords = 10000
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{cfg: cfg, httpClient: httpClient, logger: logger}
}

// recordsResponse is the catalog page envelope.
type recordsResponse struct {
	Results []records.Record `json:"results"`
}

// FetchAllForDate accumulates every record whose publication date equals
// targetDate. Pages are ordered by publication date descending, so fetching
// stops as soon as a page's last record predates the target. Transport
// failures truncate gracefully: whatever was accumulated so far is returned
// and no error escalates to the caller.
func (c *Client) FetchAllForDate(ctx context.Context, targetDate string) []records.Record {
	var all []records.Record
	offset := 0

	for len(all) < c.cfg.MaxRecords {
		page, err := c.fetchPage(ctx, offset)
		if err != nil {
			c.logger.Warn("catalog fetch failed, truncating", "offset", offset, "error", err)
			break
		}
		if len(page) == 0 {
			break
		}

		for _, rec := range page {
			if rec.String(records.FieldPublishDate) == targetDate {
				all = append(all, rec)
			}
		}

		// Descending order: once the last record on a page predates the
		// target, nothing further can match.
		last := page[len(page)-1].String(records.FieldPublishDate)
		if last < targetDate {
			break
		}

		offset += c.cfg.PageSize
		if offset > hardOffsetCeiling {
			break
		}
	}

	return all
}

func (c *Client) fetchPage(ctx context.Context, offset int) ([]records.Record, error) {
	q := url.Values{}
	q.Set("order_by", "dateparution DESC")
	q.Set("type_marche", c.cfg.MarketType)
	q.Set("limit", strconv.Itoa(c.cfg.PageSize))
	q.Set("offset", strconv.Itoa(offset))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var envelope recordsResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return envelope.Results, nil
}
