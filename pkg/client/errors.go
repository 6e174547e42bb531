package client

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/cloudapi/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/cloudapi/pkg/types"
)

// ErrCircuitOpen is wrapped by the ConnectivityError returned while the
// client's breaker is rejecting calls.
var ErrCircuitOpen = resilience.ErrCircuitOpen

// TransportError reports a response with a non-2xx status.
type TransportError struct {
	Op         string
	StatusCode int
	// Code is the server's error code when the body is an ErrorResponse
	Code string
	// Body is the raw response body
	Body string
}

func (e *TransportError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: server returned %d (%s): %s", e.Op, e.StatusCode, e.Code, e.Body)
	}
	return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Body)
}

// ConnectivityError reports a call that got no response at all: refused
// connection, DNS failure, timeout, cancelled context or open circuit.
type ConnectivityError struct {
	Op  string
	URL string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s: cannot reach %s: %v", e.Op, e.URL, e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// DecodeError reports a 2xx response whose body is not the expected JSON.
type DecodeError struct {
	Op   string
	Body string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is or wraps a *TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsConnectivity reports whether err is or wraps a *ConnectivityError.
func IsConnectivity(err error) bool {
	var ce *ConnectivityError
	return errors.As(err, &ce)
}

func newTransportError(op string, status int, body []byte) *TransportError {
	te := &TransportError{Op: op, StatusCode: status, Body: string(body)}

	var resp types.ErrorResponse
	if sonic.Unmarshal(body, &resp) == nil {
		te.Code = resp.Code
	}
	return te
}
