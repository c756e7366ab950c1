// Package logging provides structured logging utilities for Plateful components.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
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
//	    logging.SetDefaultStructuredLogger("plateful", "v1.0.0")
//
//	    // Use slog as normal
//	    slog.Info("generating plan", "start", start, "types", types)
//	    slog.Debug("candidate accepted", "key", key, "score", score)
//	    slog.Error("generation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("planner", "v2.0.0", "debug")
//	logger.Info("weekly plan generated", "days", 7)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug plateful plan week
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
//	    "msg": "weekly plan generated",
//	    "module": "plateful",
//	    "version": "v1.0.0",
//	    "days": 7
//	}
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/planner - Plan assembly logging
//   - pkg/bundler - Plan export logging
//
// All components share consistent logging format and configuration.
package logging
