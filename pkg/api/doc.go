// Package api wires the trophed daemon together: structured logging, the
// dataset store, and the HTTP server with the planning endpoints.
//
// # Overview
//
// Serve is the single entry point. It configures the default slog logger,
// builds a server from environment-driven configuration (PORT,
// TROPHE_DATASET, SHUTDOWN_TIMEOUT_SECONDS), and blocks until shutdown.
//
// # Usage
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        os.Exit(1)
//	    }
//	}
//
// Version information is injected at build time with ldflags:
//
//	go build -ldflags '-X "github.com/nutrikit/trophe/pkg/api.version=1.0.0"'
package api
