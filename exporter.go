package ytexport

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"ytexport/export"
	"ytexport/pager"
	"ytexport/summarize"
)

// TranscriptFetcher fetches a video transcript as plain text.
// *transcript.Client is the production implementation.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, videoID, lang string) (string, error)
}

// Options configures an export run.
type Options struct {
	// Pager configures pagination, retries, and safety caps.
	Pager pager.Config

	// Sort orders the output by publish date ascending. When false the
	// API order is preserved.
	Sort bool

	// Transcripts enables per-video transcript fetching.
	Transcripts TranscriptFetcher
	// TranscriptLang is the preferred caption language.
	TranscriptLang string
	// TranscriptDir, when set, receives one text file per transcript.
	TranscriptDir string

	// Summarizer enables per-video summaries; requires Transcripts.
	Summarizer summarize.Summarizer
	// SummaryDir, when set, receives one text file per summary.
	SummaryDir string

	Logger zerolog.Logger
}

// Result holds the outcome of an export run.
type Result struct {
	Rows []export.Row

	TranscriptsFetched int
	TranscriptsMissing int
	SummariesGenerated int
	SummariesFailed    int
}

// Exporter drives the full pipeline: enumerate the playlist, optionally
// enrich each video with transcript and summary, sort, and write CSV.
type Exporter struct {
	fetcher *pager.Fetcher
	opts    Options
}

// New creates an Exporter over the given page source.
func New(source pager.Source, opts Options) *Exporter {
	return &Exporter{
		fetcher: pager.NewFetcher(source, opts.Pager),
		opts:    opts,
	}
}

// Run exports playlistID to a CSV file at outputPath. The file is only
// written after the whole playlist has been fetched successfully; a
// fetch failure leaves no output behind. Per-video enrichment failures
// degrade to empty cells instead of aborting the run.
func (e *Exporter) Run(ctx context.Context, playlistID, outputPath string) (*Result, error) {
	result, err := e.Collect(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	opts := export.Options{
		IncludeTranscripts: e.opts.Transcripts != nil,
		IncludeSummaries:   e.opts.Summarizer != nil,
	}
	if err := export.WriteCSV(outputPath, result.Rows, opts); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}

	return result, nil
}

// Collect enumerates the playlist and applies enrichment and sorting,
// returning the rows without writing them anywhere.
func (e *Exporter) Collect(ctx context.Context, playlistID string) (*Result, error) {
	records, err := e.fetcher.FetchAll(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	if e.opts.Sort {
		records = pager.SortByPublished(records)
	}

	result := &Result{Rows: make([]export.Row, 0, len(records))}
	for _, rec := range records {
		row := export.Row{
			Title:       rec.Title,
			Description: rec.Description,
			VideoID:     rec.ID,
			PublishedAt: rec.PublishedAt,
		}

		if e.opts.Transcripts != nil {
			if err := e.enrich(ctx, rec, &row, result); err != nil {
				return nil, err
			}
		}

		result.Rows = append(result.Rows, row)
	}

	return result, nil
}

// enrich fetches the transcript and summary for one video. Missing
// transcripts and failed summaries are tolerated; only cancellation
// stops the run.
func (e *Exporter) enrich(ctx context.Context, rec pager.Record, row *export.Row, result *Result) error {
	text, err := e.opts.Transcripts.Fetch(ctx, rec.ID, e.opts.TranscriptLang)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		result.TranscriptsMissing++
		e.opts.Logger.Warn().Str("video_id", rec.ID).Err(err).Msg("transcript unavailable")
		return nil
	}

	row.Transcript = text
	result.TranscriptsFetched++

	if e.opts.TranscriptDir != "" {
		if _, err := export.SaveText(e.opts.TranscriptDir, rec.ID, rec.Title, "", text); err != nil {
			return fmt.Errorf("save transcript for %s: %w", rec.ID, err)
		}
	}

	if e.opts.Summarizer == nil {
		return nil
	}

	summary, err := e.opts.Summarizer.Summarize(ctx, text)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		result.SummariesFailed++
		e.opts.Logger.Warn().Str("video_id", rec.ID).Err(err).Msg("summary failed")
		return nil
	}

	row.Summary = summary
	result.SummariesGenerated++

	if e.opts.SummaryDir != "" {
		if _, err := export.SaveText(e.opts.SummaryDir, rec.ID, rec.Title, "_summary", summary); err != nil {
			return fmt.Errorf("save summary for %s: %w", rec.ID, err)
		}
	}

	return nil
}
