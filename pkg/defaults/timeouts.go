package defaults

import "time"

// Loader timeouts for dataset acquisition.
const (
	// LoaderTimeout is the default timeout for loading a dataset from a
	// local file or embedded source.
	LoaderTimeout = 10 * time.Second

	// LoaderRemoteTimeout is the timeout for fetching datasets over HTTP
	// or from object storage. Remote sources may involve redirects and
	// larger transfers.
	LoaderRemoteTimeout = 30 * time.Second
)

// Handler timeouts for HTTP request processing.
const (
	// PlanHandlerTimeout is the timeout for plan generation requests.
	PlanHandlerTimeout = 30 * time.Second

	// PlanBuildTimeout is the internal timeout for plan building.
	// Should be less than PlanHandlerTimeout to allow error handling.
	PlanBuildTimeout = 25 * time.Second

	// FoodsCacheTTL is the default cache duration for food list responses.
	FoodsCacheTTL = 10 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// Store timing for dataset hot reload.
const (
	// StoreReloadDebounce is how long the dataset store waits after a file
	// change notification before reloading, coalescing editor write bursts.
	StoreReloadDebounce = 500 * time.Millisecond
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the default total timeout for HTTP requests.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the timeout for establishing connections.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPTLSHandshakeTimeout is the timeout for TLS handshake.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPResponseHeaderTimeout is the timeout for reading response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is the timeout for idle connections in the pool.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPKeepAlive is the keep-alive duration for connections.
	HTTPKeepAlive = 30 * time.Second

	// HTTPExpectContinueTimeout is the timeout for Expect: 100-continue.
	HTTPExpectContinueTimeout = 1 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIPlanTimeout is the default timeout for plan and compare commands.
	CLIPlanTimeout = 5 * time.Minute
)
