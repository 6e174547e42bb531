/*
Package tracing provides lightweight request tracing for the compute API.

# Overview

Spans carry a trace ID shared by every hop of a request and a span ID for
the current operation. Finished spans are handed to a buffered collector
that logs them through zap; nothing is exported to an external backend.

# Usage

	tracer := tracing.New("cloud-api", logger)
	defer tracer.Close()

	router.Use(tracing.HTTPMiddleware(tracer))

	span, ctx := tracer.StartSpan(ctx, "operation")
	defer func() {
		span.Finish()
		tracer.Submit(span)
	}()

# Propagation

Trace context travels in two HTTP headers:
  - X-Trace-ID: identifier for the entire request flow
  - X-Span-ID: identifier of the calling span

The middleware continues an incoming trace, echoes both IDs on the
response, and InjectTraceContext copies them onto outgoing requests.
*/
package tracing
