// Package http exposes the compute operations as gin handlers.
//
// Routes:
//   - GET  /                  operation catalogue
//   - GET  /health            service status
//   - POST /math/add          JSON {a, b} integers
//   - POST /math/multiply     query ?a=&b=
//   - POST /math/power        query ?base=&exponent=
//   - POST /text/process      JSON {text, operation}
//   - POST /stats/calculate   JSON {numbers}
//
// Every failure is answered with a types.ErrorResponse. Binding and
// non-finite inputs give 422 validation_error, unknown text operations
// 400 invalid_operation, empty statistics input 400 empty_input, and
// results outside the finite reals 422 non_finite_result.
package http
