// Package logging provides structured logging using uber/zap.
//
// Two output modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Every logger built from a Config with a Service name carries a
// "service" field. Components derive named children with Component.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{Level: "info", Service: "cloud-api"})
//	logger.Info("Server starting", zap.String("addr", ":8000"))
//	logger.Component("http").Error("Handler failed", zap.Error(err))
package logging
