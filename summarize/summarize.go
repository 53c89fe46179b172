// Package summarize generates short prose summaries of video transcripts.
package summarize

import "context"

// Summarizer produces a summary of a transcript.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
