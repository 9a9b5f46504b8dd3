// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - NoCache: Sets Cache-Control and CDN-Cache-Control to no-store on every response.
//   - Limiter: Bounds the number of requests handled concurrently (the worker pool),
//     shedding requests that wait too long for a worker.
//
// These middleware components are registered globally by core/server.
package middleware
