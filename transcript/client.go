// Package transcript fetches video captions from YouTube's timedtext
// endpoint and flattens them into plain text.
package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://www.youtube.com/api/timedtext"
	defaultTimeout = 30 * time.Second
	fallbackLang   = "en"
)

// Sentinel errors for caption retrieval.
var (
	ErrNoTranscript     = errors.New("transcript: no transcript available")
	ErrCaptionsDisabled = errors.New("transcript: captions disabled or region restricted")
	ErrRateLimited      = errors.New("transcript: rate limited")
)

// Entry is a single timed caption line.
type Entry struct {
	Start    float64
	Duration float64
	Text     string
}

// Client queries the timedtext API. The zero value is not usable; use New.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// New creates a timedtext client with a bounded request timeout.
func New() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    defaultBaseURL,
	}
}

// Fetch returns the transcript of videoID in lang as one space-joined
// string. When lang has no track it retries in English before giving up,
// matching the behavior most callers want for mixed-language playlists.
func (c *Client) Fetch(ctx context.Context, videoID, lang string) (string, error) {
	if lang == "" {
		lang = fallbackLang
	}

	entries, err := c.FetchEntries(ctx, videoID, lang)
	if errors.Is(err, ErrNoTranscript) && lang != fallbackLang {
		entries, err = c.FetchEntries(ctx, videoID, fallbackLang)
	}
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		if t := strings.TrimSpace(e.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " "), nil
}

// FetchEntries returns the timed caption entries for videoID in lang.
func (c *Client) FetchEntries(ctx context.Context, videoID, lang string) ([]Entry, error) {
	if videoID == "" {
		return nil, fmt.Errorf("transcript: video id is required")
	}

	params := url.Values{}
	params.Set("v", videoID)
	params.Set("lang", lang)
	params.Set("fmt", "json3")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: video %s lang %s", ErrNoTranscript, videoID, lang)
	case http.StatusForbidden:
		return nil, fmt.Errorf("%w: video %s", ErrCaptionsDisabled, videoID)
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("transcript: timedtext returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read timedtext body: %w", err)
	}

	// The endpoint answers 200 with an empty body when the track
	// does not exist.
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("%w: video %s lang %s", ErrNoTranscript, videoID, lang)
	}

	entries, err := parseTimedtext(body)
	if err != nil {
		return nil, fmt.Errorf("parse timedtext response: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: video %s lang %s", ErrNoTranscript, videoID, lang)
	}

	return entries, nil
}

type timedtextResponse struct {
	Events []timedtextEvent `json:"events"`
}

type timedtextEvent struct {
	TStartMs    int64              `json:"tStartMs"`
	DDurationMs int64              `json:"dDurationMs"`
	Segs        []timedtextSegment `json:"segs,omitempty"`
}

type timedtextSegment struct {
	UTF8 string `json:"utf8"`
}

// parseTimedtext converts the json3 event list into entries, skipping
// events that carry no text segments.
func parseTimedtext(data []byte) ([]Entry, error) {
	var resp timedtextResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal timedtext JSON: %w", err)
	}

	var entries []Entry
	for _, event := range resp.Events {
		if len(event.Segs) == 0 {
			continue
		}

		var text strings.Builder
		for _, seg := range event.Segs {
			text.WriteString(seg.UTF8)
		}

		entries = append(entries, Entry{
			Start:    float64(event.TStartMs) / 1000.0,
			Duration: float64(event.DDurationMs) / 1000.0,
			Text:     text.String(),
		})
	}

	return entries, nil
}
