package logger

import (
	"io"
	"log/slog"
	"strings"

	"prank_names/internal/models"
)

// New returns a text logger writing to w at the named level. Unknown levels
// fall back to warn.
func New(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler)
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LogFetched emits an info-level "fetched_page" record for p.
// If l is nil, slog.Default() is used.
func LogFetched(l *slog.Logger, p *models.Page, title string) {
	if l == nil {
		l = slog.Default()
	}
	l.Info("fetched_page",
		slog.String("url", p.FinalURL),
		slog.Int("status", p.StatusCode),
		slog.Int("bytes", len(p.Body)),
		slog.String("hash", p.ContentHash),
		slog.String("title", title),
	)
}

// LogExtracted emits an info-level "extracted_names" record with list sizes.
func LogExtracted(l *slog.Logger, names models.NameLists) {
	if l == nil {
		l = slog.Default()
	}
	l.Info("extracted_names",
		slog.Int("first", len(names.First)),
		slog.Int("last", len(names.Last)),
	)
}

// LogFailed emits a warn-level "<stage>_failed" record.
func LogFailed(l *slog.Logger, stage string, err error) {
	if l == nil {
		l = slog.Default()
	}
	l.Warn(stage+"_failed", slog.Any("err", err))
}
