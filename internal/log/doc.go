// Package log provides slog loggers that never write credentials.
//
// drills sends user-configured HTTP headers and may talk to URLs that embed
// user info. The RedactingHandler masks such values before any handler
// formats them:
//   - Values under keys like authorization, cookie, x-api-key or *token*
//   - Values that look like bearer tokens, JWTs or long API keys
//   - Passwords embedded in URLs
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("request", "url", u, "headers", cfg.Headers)
//	slog.SetDefault(logger)
package log
