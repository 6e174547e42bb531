// Package types provides the wire contract shared by the compute server and its client.
//
// Every payload that crosses the HTTP boundary is defined here so both sides
// agree on field names and on which values travel in the body versus the query string.
//
// Request Types:
//   - AddRequest: JSON body {a, b}
//   - MultiplyRequest, PowerRequest: query parameters
//   - TextRequest: JSON body {text, operation}
//   - StatsRequest: JSON body {numbers}
//
// Result Types:
//   - AddResult, FloatResult: single numeric result
//   - TextResult: transformed text with the operation tag
//   - StatsResult: mean, median, max, min, count
//   - HealthStatus: static service status
//   - ErrorResponse: body of every non-2xx response
//
// Example Usage:
//
//	text := "Hello"
//	req := types.TextRequest{Text: &text, Operation: types.TextUpper}
package types
