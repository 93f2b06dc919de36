// Package logging provides structured logging utilities for trophe components.
//
// # Overview
//
// This package wraps the standard library slog package with project-wide
// defaults and conventions so the CLI, the API daemon, and the library
// packages all emit the same log shape. It supports environment-based log
// level configuration, module/version context injection, and automatic
// source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("trophe", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("loading dataset", "source", "ABBREV.txt")
//	    slog.Debug("detailed state", "records", n)
//	    slog.Error("load failed", "error", err)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("trophe", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug trophe plan
//	LOG_LEVEL=error trophed
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "plan generated",
//	    "module": "trophe",
//	    "version": "v1.0.0",
//	    "items": 12
//	}
//
// Debug logs additionally include source location (function, file, line).
package logging
