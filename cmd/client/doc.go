// Package main is a demonstration client that exercises every compute API
// operation once and logs the results.
//
// Usage:
//
//	./client -url http://localhost:8000 -timeout 5s
//
// API_BASE_URL, API_TIMEOUT and API_BREAKER_ENABLED provide the defaults.
package main
