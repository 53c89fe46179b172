// Package youtube adapts the YouTube Data API v3 to the pager.Source
// interface for playlist enumeration.
package youtube

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"ytexport/pager"
)

// Sentinel errors for playlist operations.
var (
	ErrPlaylistNotFound = errors.New("youtube: playlist not found")
	ErrInvalidURL       = errors.New("youtube: invalid URL")
)

// PlaylistSource fetches playlist item pages from the YouTube Data API v3.
// It implements pager.Source; each playlistItems.list call costs one
// quota unit per page.
type PlaylistSource struct {
	service *yt.Service
}

// NewPlaylistSource creates a source authenticated with an API key.
func NewPlaylistSource(ctx context.Context, apiKey string) (*PlaylistSource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: api key required")
	}

	service, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}

	return &PlaylistSource{service: service}, nil
}

// GetPage fetches one page of playlist items and maps each snippet into
// a pager.RawItem. The page token is passed through unchanged.
func (s *PlaylistSource) GetPage(ctx context.Context, playlistID string, pageSize int64, pageToken string) (*pager.Page, error) {
	call := s.service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(pageSize).
		PageToken(pageToken).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, err
	}

	page := &pager.Page{NextToken: resp.NextPageToken}
	for _, item := range resp.Items {
		page.Items = append(page.Items, snippetToRaw(item))
	}

	return page, nil
}

// snippetToRaw maps a playlist item snippet onto the normalized keys the
// pager recognizes, keeping the extra snippet fields as passthrough.
func snippetToRaw(item *yt.PlaylistItem) pager.RawItem {
	raw := pager.RawItem{}
	if item.Snippet == nil {
		return raw
	}

	if item.Snippet.ResourceId != nil {
		raw[pager.KeyID] = item.Snippet.ResourceId.VideoId
	}
	raw[pager.KeyTitle] = item.Snippet.Title
	raw[pager.KeyDescription] = item.Snippet.Description
	raw[pager.KeyPublishedAt] = item.Snippet.PublishedAt

	raw["channel_title"] = item.Snippet.ChannelTitle
	raw["position"] = item.Snippet.Position
	if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
		raw["thumbnail"] = item.Snippet.Thumbnails.Default.Url
	}

	return raw
}
