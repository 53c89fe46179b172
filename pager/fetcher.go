package pager

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"ytexport/retry"
)

// Source fetches one page of a remote collection. An empty pageToken
// requests the first page. Implementations return transient errors
// (network, rate limit, 5xx) for conditions that may clear on retry and
// anything else for conditions that will not.
type Source interface {
	GetPage(ctx context.Context, collectionID string, pageSize int64, pageToken string) (*Page, error)
}

// Config controls a Fetcher.
type Config struct {
	// PageSize is the number of items requested per page.
	PageSize int64
	// Retry bounds the per-page retry loop for transient failures.
	Retry retry.Config
	// Classify decides which page errors are transient. Defaults to
	// retry.Always, which is almost never what a real source wants.
	Classify retry.Classifier
	// MaxPages stops enumeration after this many pages (0 = no cap).
	// A misbehaving source that never returns an empty token would
	// otherwise loop forever.
	MaxPages int
	// MaxItems stops enumeration once this many raw items have been
	// fetched (0 = no cap).
	MaxItems int
	// Logger receives per-page progress at debug level.
	Logger zerolog.Logger
}

// DefaultConfig returns a fetcher configuration with a common maximum
// page size and a modest retry budget.
func DefaultConfig() Config {
	return Config{
		PageSize: 50,
		Retry:    retry.DefaultConfig(),
		Logger:   zerolog.Nop(),
	}
}

// Fetcher drives a Cursor through a Source until the collection is
// exhausted, normalizing every page into Records.
type Fetcher struct {
	source Source
	cfg    Config
}

// NewFetcher creates a Fetcher over src.
func NewFetcher(src Source, cfg Config) *Fetcher {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultConfig().PageSize
	}
	return &Fetcher{source: src, cfg: cfg}
}

// FetchAll enumerates collectionID to completion and returns the
// normalized records in API order, concatenated across pages.
//
// Transient page failures are retried with exponential backoff up to the
// configured budget; exhaustion surfaces as *ExhaustedRetriesError with
// the cursor at failure. Non-transient failures surface immediately as
// *UpstreamError. On any failure no partial results are returned.
func (f *Fetcher) FetchAll(ctx context.Context, collectionID string) ([]Record, error) {
	if collectionID == "" {
		return nil, fmt.Errorf("pager: collection id is required")
	}

	cursor := Initial()
	var result []Record
	pages := 0
	skipped := 0

	for !cursor.IsTerminal() {
		if f.cfg.MaxPages > 0 && pages >= f.cfg.MaxPages {
			return nil, fmt.Errorf("%w: %d pages fetched", ErrLimitExceeded, pages)
		}
		if f.cfg.MaxItems > 0 && cursor.ItemsFetched() >= f.cfg.MaxItems {
			return nil, fmt.Errorf("%w: %d items fetched", ErrLimitExceeded, cursor.ItemsFetched())
		}

		var page *Page
		err := retry.Do(ctx, f.cfg.Retry, f.cfg.Classify, func(ctx context.Context) error {
			p, err := f.source.GetPage(ctx, collectionID, f.cfg.PageSize, cursor.Token())
			if err != nil {
				return err
			}
			page = p
			return nil
		})
		if err != nil {
			if errors.Is(err, retry.ErrExhausted) {
				return nil, &ExhaustedRetriesError{
					CollectionID: collectionID,
					Cursor:       cursor,
					Attempts:     f.cfg.Retry.MaxRetries + 1,
					Err:          err,
				}
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, &UpstreamError{CollectionID: collectionID, Cursor: cursor, Err: err}
		}

		for _, item := range page.Items {
			rec, ok := Normalize(item)
			if !ok {
				skipped++
				f.cfg.Logger.Debug().
					Str("collection_id", collectionID).
					Int("page", pages+1).
					Msg("skipping item without id")
				continue
			}
			result = append(result, rec)
		}

		cursor = cursor.Advance(page.NextToken, len(page.Items))
		pages++

		f.cfg.Logger.Debug().
			Str("collection_id", collectionID).
			Int("page", pages).
			Int("items", len(page.Items)).
			Int("total", cursor.ItemsFetched()).
			Bool("last", cursor.IsTerminal()).
			Msg("fetched page")
	}

	f.cfg.Logger.Info().
		Str("collection_id", collectionID).
		Int("pages", pages).
		Int("records", len(result)).
		Int("skipped", skipped).
		Msg("collection enumerated")

	return result, nil
}
