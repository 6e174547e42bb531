// Package compute implements the stateless operations exposed by the API.
//
// This package is organized by operation family:
//   - arithmetic: add (int64), multiply and power (float64)
//   - text: upper, reverse, clean transforms
//   - statistics: mean, median, max, min, count
//   - health: static service status
//
// Every function is pure: no shared state, no I/O, safe for concurrent use.
// Failures are reported through the sentinel errors in errors.go so the HTTP
// layer can map them onto status codes with errors.Is.
//
// Built on gonum.org/v1/gonum for the statistics:
//   - stat.Mean for the arithmetic mean
//   - floats.Min / floats.Max for the extremes
//
// Example Usage:
//
//	result, err := compute.Power(2, 3)
//	stats, err := compute.CalculateStatistics([]float64{1, 2, 3})
package compute
