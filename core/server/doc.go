// Package server holds the HTTP server configuration and builds the Fiber app.
//
// # Configuration
//
// The Config struct defines the listen port (TEAPOT_FORTUNE_PORT), the status code
// sent with every response (RESPONSE_CODE), the worker pool size and the per-request
// selection timeout.
//
// # Middleware chain
//
// New registers, in order: RayID, request logging, no-store cache headers,
// response compression, and the worker pool limiter. Features (the fortune
// catch-all) are loaded afterwards by core/loader.
package server
