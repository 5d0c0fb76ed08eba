// Package http provides the HTTP API implementation.
//
// The HTTP server exposes endpoints for:
//   - The greeting message
//   - Health checks
//   - The current time of day
//   - Prometheus metrics
package http
