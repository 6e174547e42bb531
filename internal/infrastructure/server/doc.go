// Package server assembles the compute API: logger, tracer, metrics,
// middleware and routes, behind a net/http server with graceful shutdown.
//
// Middleware order, outermost first:
//
//	gzip (optional) → recovery → tracing → metrics (optional) → CORS (optional) → handler
package server
