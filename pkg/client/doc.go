// Package client is a typed Go client for the compute API.
//
// Each method mirrors one server operation, places its arguments where the
// server expects them (JSON body for add, process_text and
// calculate_statistics; query parameters for multiply and power) and
// returns the decoded result.
//
// Failures are typed:
//   - *TransportError: the server answered with a non-2xx status; Body holds the raw payload
//   - *ConnectivityError: no response was received
//   - *DecodeError: a 2xx body could not be decoded
//
// Calls are never retried.
//
// Example Usage:
//
//	c, err := client.New("http://localhost:8000", client.WithTimeout(5*time.Second))
//	sum, err := c.Add(ctx, 2, 3)
//	if client.IsConnectivity(err) {
//		// server down
//	}
package client
