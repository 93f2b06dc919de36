// Package defaults provides centralized configuration constants for trophe.
//
// This package defines timeout values and planner parameter defaults used
// across the codebase. Centralizing these values ensures consistency and
// makes tuning easier.
//
// # Categories
//
// Constants are organized by component:
//
//   - Planner defaults: Calorie budget, calorie window, and candidate limits
//   - Loader timeouts: For dataset fetch operations
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For outbound HTTP requests
//
// # Usage
//
//	srv := &http.Server{
//	    ReadTimeout:  defaults.ServerReadTimeout,
//	    WriteTimeout: defaults.ServerWriteTimeout,
//	}
//
// Values are deliberately conservative. Components accepting configuration
// should use these as fallbacks, not overrides.
package defaults
