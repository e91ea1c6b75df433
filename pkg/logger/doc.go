// Package logger builds the slog loggers the library hands to its
// subsystems: JSON to stdout, optional Sentry mirroring for warnings and
// errors, and per-call context extractors for request-scoped attributes.
//
//	log := logger.New(func(ctx context.Context) (slog.Attr, bool) {
//		if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
//			return slog.String("request_id", id), true
//		}
//		return slog.Attr{}, false
//	})
//	log.InfoContext(ctx, "email sent", slog.String("slug", "welcome_email"))
//
// NewWithSentry degrades gracefully: with no DSN configured it behaves
// exactly like New, so development and production share one code path.
package logger
