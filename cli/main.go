// Command ytexport exports the contents of a YouTube playlist to CSV,
// optionally enriched with transcripts and AI-generated summaries.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"ytexport"
	"ytexport/config"
	"ytexport/export"
	"ytexport/logging"
	"ytexport/pager"
	"ytexport/retry"
	"ytexport/summarize"
	"ytexport/transcript"
	"ytexport/youtube"
)

// Version and Commit are set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "none"
)

var flags struct {
	apiKey      string
	playlistID  string
	output      string
	noSort      bool
	transcripts bool
	summaries   bool
	lang        string
	model       string
	pageSize    int64
	maxItems    int
	maxPages    int
	timeout     time.Duration
	verbose     bool
}

var rootCmd = &cobra.Command{
	Use:   "ytexport [playlist-url-or-id]",
	Short: "Export YouTube playlist metadata to CSV",
	Long: "ytexport enumerates every video in a YouTube playlist through the Data API,\n" +
		"optionally fetches transcripts and AI-generated summaries, and writes the\n" +
		"collected metadata to a CSV file.",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExport,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("ytexport %s (%s)\n", Version, Commit)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flags.apiKey, "api-key", "k", "", "YouTube Data API key (or YOUTUBE_API_KEY)")
	rootCmd.Flags().StringVarP(&flags.playlistID, "playlist-id", "p", "", "playlist ID or URL to export")
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "output CSV file (default playlist_videos_YYYYMMDD.csv)")
	rootCmd.Flags().BoolVar(&flags.noSort, "no-sort", false, "keep API order instead of sorting by publish date")
	rootCmd.Flags().BoolVar(&flags.transcripts, "transcripts", false, "fetch a transcript for each video")
	rootCmd.Flags().BoolVar(&flags.summaries, "summaries", false, "generate an AI summary per video (implies --transcripts)")
	rootCmd.Flags().StringVar(&flags.lang, "lang", "", "preferred transcript language code (default en)")
	rootCmd.Flags().StringVar(&flags.model, "model", "", "chat model for summaries")
	rootCmd.Flags().Int64Var(&flags.pageSize, "page-size", 0, "playlist items per page, 1-50")
	rootCmd.Flags().IntVar(&flags.maxItems, "max-items", 0, "stop after this many items (0 = all)")
	rootCmd.Flags().IntVar(&flags.maxPages, "max-pages", 0, "stop after this many pages (0 = all)")
	rootCmd.Flags().DurationVar(&flags.timeout, "timeout", 0, "overall fetch timeout")
	rootCmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	level := "info"
	if flags.verbose {
		level = "debug"
	}
	logger := logging.Setup(logging.Config{Level: level, Pretty: true}).
		With().Str("run_id", uuid.NewString()).Logger()

	if cfg.APIKey == "" {
		return fmt.Errorf("api key required: pass --api-key or set YOUTUBE_API_KEY")
	}

	playlistInput := flags.playlistID
	if len(args) > 0 {
		playlistInput = args[0]
	}
	if playlistInput == "" {
		playlistInput = cfg.DefaultPlaylistID
	}
	if playlistInput == "" {
		return fmt.Errorf("playlist required: pass --playlist-id or set YTEXPORT_PLAYLIST_ID")
	}

	playlistID, err := youtube.ExtractPlaylistID(playlistInput)
	if err != nil {
		return err
	}

	output := flags.output
	if output == "" {
		output = export.DefaultOutputName(time.Now())
	}

	ctx := cmd.Context()
	if cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.FetchTimeout)
		defer cancel()
	}

	source, err := youtube.NewPlaylistSource(ctx, cfg.APIKey)
	if err != nil {
		return err
	}

	opts := ytexport.Options{
		Pager: pager.Config{
			PageSize: cfg.PageSize,
			Retry: retry.Config{
				MaxRetries:     cfg.MaxRetries,
				InitialBackoff: cfg.InitialBackoff,
				MaxBackoff:     cfg.MaxBackoff,
				Multiplier:     cfg.BackoffMultiplier,
				JitterFraction: 0.2,
			},
			Classify: youtube.IsTransient,
			MaxPages: cfg.MaxPages,
			MaxItems: cfg.MaxItems,
			Logger:   logging.Component("pager"),
		},
		Sort:   !flags.noSort,
		Logger: logger,
	}

	if flags.summaries {
		flags.transcripts = true
	}
	if flags.transcripts {
		opts.Transcripts = transcript.New()
		opts.TranscriptLang = cfg.TranscriptLang
		opts.TranscriptDir = cfg.TranscriptDir
	}
	if flags.summaries {
		if cfg.OpenAIAPIKey == "" {
			return fmt.Errorf("openai api key required for --summaries: set OPENAI_API_KEY")
		}
		opts.Summarizer = summarize.NewLLM(cfg.OpenAIAPIKey, cfg.SummaryModel)
		opts.SummaryDir = cfg.SummaryDir
	}

	logger.Info().
		Str("playlist_id", playlistID).
		Str("output", output).
		Bool("transcripts", flags.transcripts).
		Bool("summaries", flags.summaries).
		Msg("starting export")

	exp := ytexport.New(source, opts)
	result, err := exp.Run(ctx, playlistID, output)
	if err != nil {
		return err
	}

	logger.Info().
		Int("videos", len(result.Rows)).
		Int("transcripts", result.TranscriptsFetched).
		Int("transcripts_missing", result.TranscriptsMissing).
		Int("summaries", result.SummariesGenerated).
		Int("summaries_failed", result.SummariesFailed).
		Msg("export complete")

	fmt.Printf("Data saved to %s\n", output)
	return nil
}

// applyFlags lets command-line flags override loaded configuration.
func applyFlags(cfg *config.Config) {
	if flags.apiKey != "" {
		cfg.APIKey = flags.apiKey
	}
	if flags.lang != "" {
		cfg.TranscriptLang = flags.lang
	}
	if flags.model != "" {
		cfg.SummaryModel = flags.model
	}
	if flags.pageSize > 0 {
		cfg.PageSize = flags.pageSize
	}
	if flags.maxItems > 0 {
		cfg.MaxItems = flags.maxItems
	}
	if flags.maxPages > 0 {
		cfg.MaxPages = flags.maxPages
	}
	if flags.timeout > 0 {
		cfg.FetchTimeout = flags.timeout
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", describeError(err))
		os.Exit(1)
	}
}

// describeError prefixes the failure kind so exit messages say whether
// retrying might help.
func describeError(err error) string {
	var exhausted *ytexport.ExhaustedRetriesError
	if errors.As(err, &exhausted) {
		return fmt.Sprintf("retries exhausted: %v", err)
	}
	var upstream *ytexport.UpstreamError
	if errors.As(err, &upstream) {
		return fmt.Sprintf("upstream error: %v", err)
	}
	if errors.Is(err, ytexport.ErrLimitExceeded) {
		return fmt.Sprintf("limit exceeded: %v", err)
	}
	return err.Error()
}
