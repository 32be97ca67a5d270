package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Service records the service name under "service".
func Service(name string) slog.Attr {
	return slog.String("service", name)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under "request_id".
// An empty id yields an empty Attr.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Duration records d in milliseconds under "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Float64("duration_ms", float64(d)/float64(time.Millisecond))
}

// TextBytes records the size of an analyzed input under "text_bytes".
func TextBytes(n int) slog.Attr {
	return slog.Int("text_bytes", n)
}

// Counts groups the document counters under "counts".
func Counts(words, sentences, syllables int) slog.Attr {
	return slog.Group("counts",
		slog.Int("words", words),
		slog.Int("sentences", sentences),
		slog.Int("syllables", syllables),
	)
}

// HTTP groups the request line and status under "http".
func HTTP(method, path string, status int) slog.Attr {
	return slog.Group("http",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
	)
}
