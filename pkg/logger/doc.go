// Package logger builds log/slog loggers with functional options, environment
// presets and attributes injected from the request context.
//
//	log := logger.New(
//		logger.WithEnvironment("production", "sitesd"),
//		logger.WithContextExtractors(site.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
// Attribute helpers (Error, Host, SiteID, ...) keep key names consistent.
package logger
