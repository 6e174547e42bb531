// Package middleware provides HTTP middleware for the compute API.
//
// Middleware stack includes:
//   - CORS: Cross-origin resource sharing with configurable origins
//   - Recovery: Panic recovery with a JSON internal_error body
//   - Compression: gzip for responses above a size threshold
//
// Compression wraps the whole http.Handler rather than running as gin
// middleware, so it sees the final response bytes.
//
// Example Usage:
//
//	router.Use(middleware.Recovery(logger))
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//
//	gzip, err := middleware.Compression(1024)
//	handler := gzip(router)
package middleware
