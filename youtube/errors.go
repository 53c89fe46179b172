package youtube

import (
	"context"
	"errors"
	"net"

	"google.golang.org/api/googleapi"
)

// IsTransient classifies YouTube API errors for the retry loop.
// Server-side failures and rate limiting clear on retry; bad credentials,
// unknown playlists, and malformed requests do not.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrPlaylistNotFound) || errors.Is(err, ErrInvalidURL) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code >= 500:
			return true
		case gerr.Code == 429:
			return true
		case gerr.Code == 403:
			// 403 is ambiguous: quota/rate reasons are transient,
			// access denial is not.
			for _, item := range gerr.Errors {
				switch item.Reason {
				case "quotaExceeded", "rateLimitExceeded", "userRateLimitExceeded":
					return true
				}
			}
			return false
		default:
			return false
		}
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		return true
	}

	// Unknown errors default to retryable
	return true
}
