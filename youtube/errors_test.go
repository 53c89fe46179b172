package youtube

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"server error", &googleapi.Error{Code: 500}, true},
		{"bad gateway", &googleapi.Error{Code: 502}, true},
		{"too many requests", &googleapi.Error{Code: 429}, true},
		{
			"quota exceeded",
			&googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "quotaExceeded"}}},
			true,
		},
		{
			"rate limit exceeded",
			&googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "rateLimitExceeded"}}},
			true,
		},
		{
			"forbidden without quota reason",
			&googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "forbidden"}}},
			false,
		},
		{"unauthorized", &googleapi.Error{Code: 401}, false},
		{"not found", &googleapi.Error{Code: 404}, false},
		{"bad request", &googleapi.Error{Code: 400}, false},
		{
			"wrapped api error",
			fmt.Errorf("call failed: %w", &googleapi.Error{Code: 503}),
			true,
		},
		{"playlist not found sentinel", ErrPlaylistNotFound, false},
		{"invalid url sentinel", fmt.Errorf("bad input: %w", ErrInvalidURL), false},
		{"context canceled", context.Canceled, false},
		{"deadline exceeded", context.DeadlineExceeded, false},
		{"unknown error defaults to retryable", errors.New("connection reset"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
