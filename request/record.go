// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"time"
)

// A Record accumulates the state of one send call.
//
// The engine creates a Record when a send call starts, overwrites its
// response fields on every attempt, and freezes it when the call
// terminates, whether in success or failure. Each Record is owned
// exclusively by the send call that created it; concurrent send calls
// never share one. The Record is returned to the caller in both the
// success and the failure case, so a failing call still exposes the
// last attempt's response data alongside the terminal error.
//
// Retry deciders, waiters and user callbacks receive the live Record
// during the call. They must treat its fields as read-only; the engine
// relies on them for the correctness of the retry loop.
type Record struct {
	// Descriptor references the request description being executed. It
	// is never nil.
	Descriptor *Descriptor

	// StatusCode is the HTTP status of the most recent attempt that
	// produced a response, or 0 if no attempt has produced one.
	StatusCode int

	// Header contains the response headers of the most recent attempt
	// that produced a response, normalized to canonical (and therefore
	// case-insensitive) keys. It is nil if no attempt has produced a
	// response.
	Header http.Header

	// Body is the fully buffered response body of the most recent
	// attempt that produced a response.
	Body []byte

	// Start is the time the send call started.
	Start time.Time

	// End is the time the send call terminated. It is the zero time
	// while the call is in flight.
	End time.Time

	// Retries is the number of retries consumed so far, which equals
	// the zero-based index of the current attempt. A call that
	// terminates after the initial attempt plus two retries ends with
	// Retries == 2.
	Retries int

	// Err is the classified failure of the most recent attempt, or nil
	// if the attempt produced a response (regardless of status code).
	// Once the call terminates in failure, Err holds the terminal
	// error.
	Err error
}

// Duration returns the elapsed time of the send call: End minus Start
// once the call has terminated, current time minus Start while it is in
// flight, and zero before it starts.
func (r *Record) Duration() time.Duration {
	if !r.Started() {
		return 0
	}
	if !r.Ended() {
		return time.Since(r.Start)
	}
	return r.End.Sub(r.Start)
}

// Started reports whether the send call has started.
func (r *Record) Started() bool {
	return !r.Start.IsZero()
}

// Ended reports whether the send call has terminated. Once Ended
// reports true the Record is frozen.
func (r *Record) Ended() bool {
	return !r.End.IsZero()
}

// ErrorStatus reports whether the most recent attempt produced a
// response whose status code lies outside the success range [200, 300).
// It is false while no response has been received.
func (r *Record) ErrorStatus() bool {
	return r.StatusCode != 0 && (r.StatusCode < 200 || r.StatusCode >= 300)
}
