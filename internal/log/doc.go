// Package log provides logging functionality with automatic length capping
// of oversized attribute values, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic trimming of oversized values (page bodies, HTML fragments)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Trimming
//
// The TrimHandler cuts string attribute values at a byte limit before they
// reach the underlying handler. Lookup diagnostics routinely attach raw page
// fragments, and without a cap a single failed extraction could write an
// entire HTML document into one log line. Cuts never split a UTF-8 sequence,
// and trimmed values are suffixed with a marker so the cap is visible.
//
// # Usage
//
//	// Create a logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Debug("page fetched",
//	    "url", "https://www.wordreference.com/es/en/translation.asp",
//	    "body", page, // Cut at the length limit
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
