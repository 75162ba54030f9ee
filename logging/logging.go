// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package logging provides a ready-made failure handler that logs
// terminal send failures through zerolog.
//
// The engine itself never logs; install the handler per call through
// Options.FailureHandler. The redaction mode is a parameter: in
// request.Redacted mode the logged summary carries neither the URL nor
// any header values, while the record stays fully populated for
// programmatic use.
package logging

import (
	"github.com/rs/zerolog"

	brnetwork "github.com/UnknownB/BRNetwork"
	"github.com/UnknownB/BRNetwork/fault"
	"github.com/UnknownB/BRNetwork/request"
)

// MaxBodyLogBytes caps the number of response body bytes included in a
// verbose-mode log event. Bodies are routinely large and the log line
// is not the place for them.
const MaxBodyLogBytes = 2048

// NewFailureHandler returns a FailureHandler that logs every terminal
// failure at error level with structured fields (failure kind, status,
// retries, duration, request id) and a request summary rendered in the
// given mode. The response body is included, truncated to
// MaxBodyLogBytes, in request.Verbose mode only.
//
// The handler always returns nil, so the original error propagates
// unchanged. It runs synchronously on the goroutine executing the send
// call, like any failure handler.
func NewFailureHandler(log zerolog.Logger, mode request.Mode) brnetwork.FailureHandler {
	return func(err error, rec *request.Record) error {
		ev := log.Error().
			Err(err).
			Str("request", request.Describe(rec.Descriptor, mode)).
			Str("request_id", rec.Descriptor.Header.Get(request.RequestIDHeader)).
			Int("status", rec.StatusCode).
			Int("retries", rec.Retries).
			Dur("duration", rec.Duration())
		if kind, ok := fault.KindOf(err); ok {
			ev = ev.Str("kind", kind.String())
		}
		if mode == request.Verbose && len(rec.Body) > 0 {
			ev = ev.Bytes("body", truncate(rec.Body, MaxBodyLogBytes))
		}
		ev.Msg("request failed")
		return nil
	}
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}
