// Package middleware stores the global middleware of the HTTP server.
//
// These intercept requests to handle cross-cutting concerns such as CORS,
// request ids, request-scoped logging, New Relic tracing, panic recovery
// and the global error handler.
package middleware
