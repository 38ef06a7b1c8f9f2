// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation (X-API-Key or Bearer token) protecting feature routes.
//   - rayid: a unique request id (RayID) for every incoming request, stored in the
//     context and echoed in the X-Ray-ID response header for tracing.
//
// These middleware components are registered globally in the start command;
// rayid must come first so that every log line carries the id.
package middleware
