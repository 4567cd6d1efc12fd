// Package logger builds *slog.Logger instances from functional options and
// decorates them with attributes pulled from context.Context.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the Format,
// applies static attributes and wraps the result in LogHandlerDecorator, which
// runs every registered ContextExtractor before delegating.
//
// Attribute helpers in attr.go (Slug, Base, Attempt, Names, Error...) keep key
// names consistent between the slug resolver and the command line tool.
//
// # Usage
//
//	level, err := logger.ParseLevel("debug")
//	if err != nil {
//		return err
//	}
//	log := logger.New(
//		logger.WithLevel(level),
//		logger.WithFormat(logger.FormatJSON),
//		logger.WithAttr(logger.Component("slugify")),
//	)
//	log.Debug("slug resolved", logger.Slug("John-Doe-3"), logger.Attempt(3))
//
// The default output is os.Stderr in text format at INFO level. Nop returns a
// logger that discards every record.
package logger
