// Package logging provides structured logging for the pixelgrid editor.
//
// This package wraps zap logger with convenience functions for common logging
// patterns used throughout the application. It provides both general logging
// functions and specialized functions for editor events.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (individual paint writes, pick misses)
//   - Info: Normal operations (exports, viewer connections, announce)
//   - Warn: Non-fatal issues (viewer drops, slow broadcasts)
//   - Error: Fatal issues (startup failures, export write errors)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Mirror server listening",
//	    zap.String("addr", ":8137"),
//	    zap.Int("grid_size", 16),
//	)
//
// # Configuration
//
// The editor occupies the terminal, so logging is silent by default and
// writes to stderr when enabled. Set PIXELGRID_LOG_LEVEL to enable:
//
//	PIXELGRID_LOG_LEVEL=debug pixelgrid 2>editor.log
//
// Initialize at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
