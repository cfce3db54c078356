// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so cache components log with consistent keys.
//
// New picks a JSON or text slog handler, attaches static attributes and wraps
// the result in a handler that adds attributes taken from the context of each
// record. The name set by ContextWithOperation is always logged as "op".
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(os.Getenv("APP_ENV"), "lrudemo"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	logger.SetAsDefault(log)
//
//	ctx = logger.ContextWithOperation(ctx, "warm-users")
//	log.LogAttrs(ctx, slog.LevelDebug, "cache entry evicted",
//	    logger.Key(key),
//	    logger.Capacity(c.Cap()),
//	)
//
// Library types default to Discard so they stay silent until a logger is
// supplied.
//
// # Options
//
//   - WithEnvironment: debug text logs for development, info JSON for staging
//     and production, plus "service" and "env" attributes.
//   - WithFormat, WithTextFormatter, WithJSONFormatter: output format.
//     WithFormat panics on unknown formats.
//   - WithLevel, WithOutput, WithAttr: level, writer and static attributes.
//   - WithContextExtractors, WithContextValue: per-record context attributes,
//     added after "op".
package logger
