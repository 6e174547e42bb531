// Package main is the entry point for the compute API server.
//
// The server exposes arithmetic, text and statistics operations over
// HTTP, plus /health, an operation catalogue at / and Prometheus metrics.
//
// Configuration:
//   - Defaults for development
//   - Optional YAML/TOML file (-config)
//   - Environment variables (12-factor)
//   - CLI flags (override everything else)
//
// Usage:
//
//	# Production mode
//	./server -port 8000
//
//	# With a config file
//	./server -config config.yaml
//
//	# Development mode (colored logs, debug level)
//	./server -dev
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
