package watcher

import (
	"context"
	"log/slog"
	"unicode/utf8"
)

const previewLen = 120

// logOutcome logs one pass of the output policy at DEBUG, with a preview of
// the content capped at previewLen characters.
func logOutcome(outcome Outcome, content string, hasText bool) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	if !hasText {
		slog.Debug("clipboard read", "outcome", outcome.String(), "text", false)
		return
	}
	slog.Debug("clipboard read",
		"outcome", outcome.String(),
		"size_bytes", len(content),
		"preview", preview(content),
	)
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewLen {
		return s
	}
	n := 0
	for i := range s {
		if n == previewLen {
			return s[:i] + "…"
		}
		n++
	}
	return s
}
