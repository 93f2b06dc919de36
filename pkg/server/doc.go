// Package server implements the trophe planning API.
//
// # Architecture
//
// The server is a stateless HTTP API in front of the planning pipeline:
//
//   - POST /v1/plan runs the loader, filter, and selected strategy and
//     returns a plan document
//   - GET /v1/foods returns the filtered candidate pool
//   - request bodies are validated with go-playground/validator struct tags
//   - rate limiting uses a token bucket (golang.org/x/time/rate)
//   - request ID tracking via the X-Request-Id header (google/uuid)
//   - panic recovery keeps a bad request from taking the process down
//   - /health and /ready serve Kubernetes probes, /metrics serves Prometheus
//
// The dataset is held by a Store that swaps immutable snapshots: the
// selectors only ever see a fixed slice, and a file change on disk replaces
// the pointer, never the records.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("trophed"),
//	    server.WithVersion("1.0.0"),
//	)
//	if err := s.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
//
// Run blocks until SIGINT/SIGTERM and shuts down gracefully within the
// configured timeout.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "budget must be non-negative, got -1",
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-08-25T12:00:00Z",
//	  "retryable": false
//	}
//
// # Observability
//
// Rate limit status is reported through X-RateLimit-Limit,
// X-RateLimit-Remaining, and X-RateLimit-Reset response headers; a rejected
// request gets 429 with Retry-After. RED metrics, rate-limit rejects, panic
// recoveries, and dataset reloads are exported under the trophe_ prefix.
package server
