package ytexport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ytexport/pager"
	"ytexport/retry"
	"ytexport/transcript"
)

// stubSource serves a fixed two-page playlist or a scripted error.
type stubSource struct {
	err   error
	calls int
}

func (s *stubSource) GetPage(ctx context.Context, collectionID string, pageSize int64, pageToken string) (*pager.Page, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}

	switch pageToken {
	case "":
		return &pager.Page{
			Items: []pager.RawItem{
				{pager.KeyID: "vid-b", pager.KeyTitle: "Newer", pager.KeyPublishedAt: "2024-02-01T00:00:00Z"},
				{pager.KeyID: "vid-a", pager.KeyTitle: "Older", pager.KeyPublishedAt: "2024-01-01T00:00:00Z"},
			},
			NextToken: "T2",
		}, nil
	case "T2":
		return &pager.Page{
			Items: []pager.RawItem{
				{pager.KeyID: "vid-c", pager.KeyTitle: "Newest", pager.KeyPublishedAt: "2024-03-01T00:00:00Z"},
			},
		}, nil
	default:
		return nil, fmt.Errorf("unexpected token %q", pageToken)
	}
}

type stubTranscripts struct {
	texts map[string]string
}

func (s *stubTranscripts) Fetch(ctx context.Context, videoID, lang string) (string, error) {
	if text, ok := s.texts[videoID]; ok {
		return text, nil
	}
	return "", fmt.Errorf("%w: %s", transcript.ErrNoTranscript, videoID)
}

type stubSummarizer struct {
	err error
}

func (s *stubSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "summary of: " + text, nil
}

func testOptions() Options {
	return Options{
		Pager: pager.Config{
			PageSize: 50,
			Retry: retry.Config{
				MaxRetries:     1,
				InitialBackoff: time.Millisecond,
				MaxBackoff:     time.Millisecond,
				Multiplier:     2,
			},
		},
	}
}

func TestCollect(t *testing.T) {
	src := &stubSource{}

	result, err := New(src, testOptions()).Collect(context.Background(), "PLtest")
	require.NoError(t, err)

	require.Len(t, result.Rows, 3)
	assert.Equal(t, 2, src.calls)
	// Unsorted: API order preserved.
	assert.Equal(t, "vid-b", result.Rows[0].VideoID)
}

func TestCollectSorted(t *testing.T) {
	opts := testOptions()
	opts.Sort = true

	result, err := New(&stubSource{}, opts).Collect(context.Background(), "PLtest")
	require.NoError(t, err)

	got := make([]string, len(result.Rows))
	for i, row := range result.Rows {
		got[i] = row.VideoID
	}
	assert.Equal(t, []string{"vid-a", "vid-b", "vid-c"}, got)
}

func TestCollectWithEnrichment(t *testing.T) {
	opts := testOptions()
	opts.Transcripts = &stubTranscripts{texts: map[string]string{
		"vid-a": "transcript a",
		"vid-b": "transcript b",
		// vid-c has no transcript
	}}
	opts.Summarizer = &stubSummarizer{}

	result, err := New(&stubSource{}, opts).Collect(context.Background(), "PLtest")
	require.NoError(t, err)

	assert.Equal(t, 2, result.TranscriptsFetched)
	assert.Equal(t, 1, result.TranscriptsMissing)
	assert.Equal(t, 2, result.SummariesGenerated)
	assert.Equal(t, 0, result.SummariesFailed)

	assert.Equal(t, "transcript b", result.Rows[0].Transcript)
	assert.Equal(t, "summary of: transcript b", result.Rows[0].Summary)
	assert.Empty(t, result.Rows[2].Transcript, "missing transcript degrades to an empty cell")
}

func TestCollectSummaryFailureDegrades(t *testing.T) {
	opts := testOptions()
	opts.Transcripts = &stubTranscripts{texts: map[string]string{"vid-a": "x", "vid-b": "y", "vid-c": "z"}}
	opts.Summarizer = &stubSummarizer{err: errors.New("model overloaded")}

	result, err := New(&stubSource{}, opts).Collect(context.Background(), "PLtest")
	require.NoError(t, err)

	assert.Equal(t, 3, result.SummariesFailed)
	for _, row := range result.Rows {
		assert.Empty(t, row.Summary)
	}
}

func TestRunWritesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	result, err := New(&stubSource{}, testOptions()).Run(context.Background(), "PLtest", path)
	require.NoError(t, err)
	require.Len(t, result.Rows, 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "title,description,video_id,published_at")
	assert.Contains(t, string(data), "vid-a")
}

func TestRunFetchFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.csv")

	src := &stubSource{err: errors.New("boom")}
	opts := testOptions()
	opts.Pager.Classify = func(error) bool { return false }

	_, err := New(src, opts).Run(context.Background(), "PLtest", path)
	require.Error(t, err)

	var upstream *UpstreamError
	assert.ErrorAs(t, err, &upstream)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "a failed fetch must not produce partial output")
}

func TestCollectAbortsOnCanceledEnrichment(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	opts := testOptions()
	opts.Transcripts = fetcherFunc(func(fctx context.Context, videoID, lang string) (string, error) {
		cancel()
		return "", fctx.Err()
	})

	_, err := New(&stubSource{}, opts).Collect(ctx, "PLtest")
	assert.ErrorIs(t, err, context.Canceled)
}

type fetcherFunc func(ctx context.Context, videoID, lang string) (string, error)

func (f fetcherFunc) Fetch(ctx context.Context, videoID, lang string) (string, error) {
	return f(ctx, videoID, lang)
}
