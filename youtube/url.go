package youtube

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	playlistIDRegex    = regexp.MustCompile(`^[A-Za-z0-9_-]{2,}$`)
	playlistParamRegex = regexp.MustCompile(`[?&]list=([A-Za-z0-9_-]+)`)

	videoIDRegex      = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	videoParamRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?:v=|/v/|/embed/|youtu\.be/)([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
	}
)

// ExtractPlaylistID resolves a playlist ID from raw input: either a bare
// ID or any YouTube URL carrying a list= parameter.
func ExtractPlaylistID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidURL)
	}

	if m := playlistParamRegex.FindStringSubmatch(input); len(m) == 2 {
		return m[1], nil
	}

	if !strings.Contains(input, "/") && playlistIDRegex.MatchString(input) {
		return input, nil
	}

	return "", fmt.Errorf("%w: no playlist id in %q", ErrInvalidURL, input)
}

// ExtractVideoID resolves a video ID from raw input: either a bare
// 11-character ID or a watch/shorts/embed/youtu.be URL.
func ExtractVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: empty input", ErrInvalidURL)
	}

	for _, re := range videoParamRegexes {
		if m := re.FindStringSubmatch(input); len(m) == 2 {
			return m[1], nil
		}
	}

	if !strings.Contains(input, "/") && videoIDRegex.MatchString(input) {
		return input, nil
	}

	return "", fmt.Errorf("%w: no video id in %q", ErrInvalidURL, input)
}
