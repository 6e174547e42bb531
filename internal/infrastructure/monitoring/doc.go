/*
Package monitoring provides Prometheus metrics for the compute API.

# Overview

Each Metrics value owns a private registry holding HTTP request metrics,
per-operation call and error metrics, uptime and the Go runtime and
process collectors.

# Usage

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))

	timer := monitoring.NewTimer(metrics, "add")
	// ... perform operation ...
	timer.Stop("success")

# Metrics Endpoint

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

HTTP metrics are labelled with the gin route template rather than the raw
path; requests that match no route share the "unmatched" label.
*/
package monitoring
