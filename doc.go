// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package brnetwork provides a resilient HTTP request execution layer:
it dispatches immutable request descriptors through a pluggable
transport, applies bounded retry with backoff, validates responses, and
classifies every failure into a small closed taxonomy (package fault).

Create an Engine to begin sending requests.

	engine := &brnetwork.Engine{}
	rec, err := engine.Get("https://api.example.com/health")

For full control, build a descriptor and pass per-call options:

	d, err := request.New("POST", "https://api.example.com/users").
		Name("create-user").
		BodyParam("email", "kim@example.com").
		Encode(request.EncodingJSON).
		Timeout(10 * time.Second).
		Build()
	...
	rec, err := engine.Send(d, &brnetwork.Options{
		RetryMax: 2,
		StatusHandler: func(rec *request.Record) (string, string) {
			code, _ := request.StringField(rec, "error_code")
			msg, _ := request.StringField(rec, "message")
			return code, msg
		},
		FailureHandler: logging.NewFailureHandler(log, request.Redacted),
	})

A send call makes up to RetryMax+1 attempts. Error statuses (outside
[200, 300)) and transport failures, connectivity-class or not, are
retried;
enrichment and the failure handler run exactly once, on the terminal
attempt, never per intermediate retry, so side effects such as logging
are not duplicated. A transport result with no HTTP-shaped status is an
immediately terminal unexpected-response fault, and cancellation of the
descriptor's context terminates the call at once without consulting
retry policy or handlers.

Every failing call returns a *fault.Error identifying the failure kind
alongside the populated record, so callers can decide remediation
without re-deriving context:

	rec, err := engine.Send(d, opts)
	if fault.Is(err, fault.KindServer) {
		var fe *fault.Error
		errors.As(err, &fe)
		// fe.Snapshot, fe.Code, fe.Message
	}

Retry decisions and backoff are pluggable through package retry, the
I/O boundary through package transport, structured failure logging
through package logging, and circuit breaking through package breaker.
*/
package brnetwork
