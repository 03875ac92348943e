// Package server runs an invoke-on-event handler behind a local HTTP server.
// It mounts a single wildcard route on a gorilla/mux router, buffers each
// request body to completion, hands the request to the invoke translator,
// calls the configured handler exactly once, and writes the handler's result
// back as the HTTP response.
//
// The adapter also owns the CORS policy: when enabled (the default), OPTIONS
// requests are answered immediately with the fixed CORS header set and the
// handler is never invoked, and every other response carries the same set in
// addition to the handler's own headers.
package server
