// Package ytexport collects the contents of a YouTube playlist into CSV.
//
// It enumerates a playlist through the YouTube Data API v3, optionally
// enriches each video with its transcript and an AI-generated summary,
// and serializes the result to a CSV file.
//
// Quick Start
//
// Export a playlist:
//
//	ctx := context.Background()
//	source, err := youtube.NewPlaylistSource(ctx, apiKey)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	exp := ytexport.New(source, ytexport.Options{Sort: true})
//	result, err := exp.Run(ctx, "PLxxxxxx", "playlist.csv")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("exported %d videos\n", len(result.Rows))
//
// The pagination core lives in the pager package and is independent of
// YouTube: any paged list API can be enumerated by implementing
// pager.Source.
package ytexport
