package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

const maxTitleRunes = 100

// SaveText writes text to <dir>/<sanitized title>_<videoID><suffix>.txt
// and returns the full path. Used for per-video transcript and summary
// files.
func SaveText(dir, videoID, title, suffix, text string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s%s.txt", sanitizeTitle(title), videoID, suffix)
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return path, nil
}

// sanitizeTitle keeps letters, digits, and a few safe punctuation runes,
// trimmed to a length that stays under filesystem name limits.
func sanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(" ._-", r) {
			b.WriteRune(r)
		}
	}

	clean := strings.TrimSpace(b.String())
	if clean == "" {
		clean = "untitled"
	}

	runes := []rune(clean)
	if len(runes) > maxTitleRunes {
		clean = string(runes[:maxTitleRunes])
	}
	return clean
}
