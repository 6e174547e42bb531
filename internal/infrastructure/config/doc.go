// Package config provides 12-factor configuration management for the compute API.
//
// Configuration is resolved in layers, later layers winning:
//  1. Default() values
//  2. an optional YAML or TOML file (LoadFile)
//  3. environment variables that are actually set
//
// CLI flags in cmd/server override the result.
//
// Configuration Sections:
//   - Server: HTTP listen address, service name, shutdown timeout
//   - Logging: Log level and output format
//   - CORS: Cross-origin policy
//   - Compression: gzip response compression
//   - Metrics: Prometheus endpoint
//   - Client: Base URL, timeout and breaker for the API client
//
// Example Usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//		return err
//	}
//	fmt.Printf("Server running on %s\n", cfg.Server.Addr())
//
// Environment Variables:
//   - PORT, HOST, SERVICE_NAME, SHUTDOWN_TIMEOUT
//   - LOG_LEVEL, LOG_DEV
//   - CORS_ENABLED, CORS_ORIGINS
//   - COMPRESSION_ENABLED, COMPRESSION_MIN_SIZE
//   - METRICS_ENABLED, METRICS_PATH
//   - API_BASE_URL, API_TIMEOUT, API_BREAKER_ENABLED
package config
