// Package logging builds the service's slog loggers and carries them through
// request contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//	logging.FromContext(ctx).WarnContext(ctx, "model prediction failed, using heuristic",
//	    slog.String("operation", "Classify"),
//	    logging.Preview(description),
//	    slog.Any("error", err),
//	)
//
// Descriptions are user text: log a Preview of them, never the whole string.
// Loggers taken from a request context already carry request_id and
// correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
	"unicode/utf8"
)

// PreviewRunes is the maximum number of runes kept by Preview.
const PreviewRunes = 50

type contextKey struct{}

// New returns a logger writing to w. level is one of debug, info, warn, or
// error in any case; anything else means info. format "text" selects the
// text handler and every other value JSON. Debug loggers add source
// locations. All output passes through the redaction layer.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored by WithLogger, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Preview returns a "preview" attribute holding at most PreviewRunes runes of
// text, with "..." appended when the text was cut.
func Preview(text string) slog.Attr {
	if utf8.RuneCountInString(text) <= PreviewRunes {
		return slog.String("preview", text)
	}
	return slog.String("preview", string([]rune(text)[:PreviewRunes])+"...")
}
