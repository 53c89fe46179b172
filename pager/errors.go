package pager

import (
	"errors"
	"fmt"
)

// ErrLimitExceeded is returned when enumeration hits the configured
// MaxPages or MaxItems safety cap before the source signaled termination.
var ErrLimitExceeded = errors.New("pager: page or item limit exceeded")

// UpstreamError wraps a non-transient source failure (bad credentials,
// unknown collection, malformed request). It is surfaced immediately,
// without retries.
type UpstreamError struct {
	CollectionID string
	Cursor       Cursor
	Err          error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("pager: upstream error for collection %s after %d items: %v",
		e.CollectionID, e.Cursor.ItemsFetched(), e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ExhaustedRetriesError reports that a single page kept failing
// transiently until the retry budget ran out. It carries the cursor at
// the point of failure so a caller could in principle resume, though
// resumption is not implemented here.
type ExhaustedRetriesError struct {
	CollectionID string
	Cursor       Cursor
	Attempts     int
	Err          error
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("pager: retries exhausted for collection %s after %d attempts (%d items fetched): %v",
		e.CollectionID, e.Attempts, e.Cursor.ItemsFetched(), e.Err)
}

func (e *ExhaustedRetriesError) Unwrap() error {
	return e.Err
}
