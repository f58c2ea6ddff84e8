// Package logger builds configured slog.Logger instances for the broker
// binaries: JSON or text output, level selection, static service attributes,
// and optional context extractors that inject request-scoped values (such as
// the transport's request ID) into every record.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(slog.String("service", "broker")),
//	)
package logger
