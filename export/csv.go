// Package export serializes collected playlist metadata to CSV and
// writes per-video transcript and summary text files.
package export

import (
	"encoding/csv"
	"fmt"
	"time"
)

// Row is one video's worth of output. Transcript and Summary are empty
// unless enrichment ran for the video.
type Row struct {
	Title       string
	Description string
	VideoID     string
	PublishedAt time.Time
	Transcript  string
	Summary     string
}

// Options controls which optional columns appear in the CSV.
type Options struct {
	IncludeTranscripts bool
	IncludeSummaries   bool
}

// WriteCSV writes rows to path as UTF-8 CSV with a header row,
// atomically: the target file only appears once every row is written.
// Timestamps are serialized as RFC3339; the zero time becomes an empty
// cell.
func WriteCSV(path string, rows []Row, opts Options) error {
	w, err := newAtomicWriter(path)
	if err != nil {
		return fmt.Errorf("open output: %w", err)
	}

	if err := writeRows(w, rows, opts); err != nil {
		_ = w.abort()
		return err
	}

	if err := w.commit(); err != nil {
		return fmt.Errorf("commit output: %w", err)
	}
	return nil
}

func writeRows(w *atomicWriter, rows []Row, opts Options) error {
	cw := csv.NewWriter(w)

	header := []string{"title", "description", "video_id", "published_at"}
	if opts.IncludeTranscripts {
		header = append(header, "transcript")
	}
	if opts.IncludeSummaries {
		header = append(header, "summary")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, row := range rows {
		published := ""
		if !row.PublishedAt.IsZero() {
			published = row.PublishedAt.Format(time.RFC3339)
		}

		record := []string{row.Title, row.Description, row.VideoID, published}
		if opts.IncludeTranscripts {
			record = append(record, row.Transcript)
		}
		if opts.IncludeSummaries {
			record = append(record, row.Summary)
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row for %s: %w", row.VideoID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// DefaultOutputName returns the date-stamped default CSV filename.
func DefaultOutputName(now time.Time) string {
	return fmt.Sprintf("playlist_videos_%s.csv", now.Format("20060102"))
}
