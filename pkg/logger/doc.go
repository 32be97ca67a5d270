// Package logger builds *slog.Logger values from functional options and
// injects request-scoped attributes pulled from context.Context.
//
// New picks slog.NewJSONHandler or slog.NewTextHandler according to the
// Format and attaches static attributes. When context extractors are
// registered, every record also carries their attributes at the top level,
// even from loggers derived with WithGroup.
//
// # Usage
//
//	log := logger.New(
//		logger.WithService("readkitd"),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithContextExtractors(requestid.Extractor),
//	)
//	log.InfoContext(ctx, "analyzed",
//		logger.TextBytes(len(text)),
//		logger.Counts(r.Words, r.Sentences, r.Syllables),
//	)
//
// ParseLevel and ParseFormat turn configuration strings into option values.
// Error returns an empty attribute for nil errors, so it can be passed
// unconditionally.
package logger
