package ytexport

import (
	"ytexport/pager"
	"ytexport/retry"
	"ytexport/transcript"
	"ytexport/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytexport.ErrPlaylistNotFound) {
//		fmt.Println("Playlist not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var exhausted *ytexport.ExhaustedRetriesError
//	if errors.As(err, &exhausted) {
//		fmt.Printf("gave up after %d attempts, %d items fetched\n",
//			exhausted.Attempts, exhausted.Cursor.ItemsFetched())
//	}

// Type aliases for convenient error handling.
type (
	// ExhaustedRetriesError reports a page that kept failing transiently
	// until the retry budget ran out.
	ExhaustedRetriesError = pager.ExhaustedRetriesError
	// UpstreamError reports a non-transient API failure.
	UpstreamError = pager.UpstreamError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrRetryExhausted is wrapped into errors returned after all retry
	// attempts failed.
	ErrRetryExhausted = retry.ErrExhausted
	// ErrLimitExceeded indicates the page or item safety cap was hit.
	ErrLimitExceeded = pager.ErrLimitExceeded

	// ErrPlaylistNotFound indicates the playlist does not exist.
	ErrPlaylistNotFound = youtube.ErrPlaylistNotFound
	// ErrInvalidURL indicates the provided URL or id is invalid.
	ErrInvalidURL = youtube.ErrInvalidURL

	// ErrNoTranscript indicates a video has no transcript in the
	// requested language or English.
	ErrNoTranscript = transcript.ErrNoTranscript
	// ErrCaptionsDisabled indicates captions are disabled for a video.
	ErrCaptionsDisabled = transcript.ErrCaptionsDisabled
)
