// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fault defines the closed set of failure kinds raised by the
// BRNetwork execution engine and its collaborators.
//
// Every error raised by the engine, the request builder, or the decode
// helpers is a *fault.Error carrying exactly one Kind. The set of kinds
// is closed: switching over Kind covers every failure the library can
// produce. Use KindOf to recover the kind from a wrapped error chain,
// and errors.Is/errors.As to reach the underlying cause.
package fault

import (
	"errors"
	"fmt"
	"net/http"
)

// A Kind discriminates the failure variants raised by this library.
type Kind int

const (
	// KindClient indicates the request was malformed before dispatch,
	// for example a relative URL or an unsupported method. Client
	// failures are raised by the request builder and are never retried.
	KindClient Kind = iota
	// KindNetwork indicates the transport reported a connectivity-class
	// failure: a timeout, a refused or reset connection, an unreachable
	// host, or a name resolution failure.
	KindNetwork
	// KindServer indicates a response was obtained but its status code
	// lies outside the success range [200, 300). A Server error is the
	// only variant carrying a response snapshot.
	KindServer
	// KindUnexpectedResponse indicates the transport completed without
	// producing an HTTP-shaped status at all. It signals a broken
	// transport contract and is immediately terminal.
	KindUnexpectedResponse
	// KindDecoding indicates a successful response body could not be
	// decoded.
	KindDecoding
	// KindMissingKey indicates a successful response body decoded fine
	// but lacks a required field.
	KindMissingKey
	// KindUnknown indicates the transport failed in a way that is not
	// connectivity-class.
	KindUnknown
)

var kindNames = map[Kind]string{
	KindClient:             "client",
	KindNetwork:            "network",
	KindServer:             "server",
	KindUnexpectedResponse: "unexpected_response",
	KindDecoding:           "decoding",
	KindMissingKey:         "missing_key",
	KindUnknown:            "unknown",
}

// String returns the lower-case tag name of the kind.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("fault.Kind(%d)", int(k))
}

// A Snapshot is the frozen view of an HTTP response attached to a
// Server error. It is a copy taken at the moment the terminal error was
// constructed, so callers may hold it beyond the send call that
// produced it.
type Snapshot struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// An Error is one failure from the closed taxonomy. Only the fields
// relevant to its Kind are populated.
type Error struct {
	// Kind is the variant discriminant.
	Kind Kind

	// Err is the underlying cause for the Client, Network, Decoding and
	// Unknown kinds. It is nil for the other kinds.
	Err error

	// Snapshot is the response snapshot for the Server kind, nil
	// otherwise.
	Snapshot *Snapshot

	// Code and Message hold the application-specific error code and
	// message extracted by a status handler for the Server kind. Empty
	// strings mean the handler supplied nothing, or no handler was
	// installed.
	Code    string
	Message string

	// Field names the absent field for the MissingKey kind.
	Field string
}

// Error renders a one-line description combining the kind tag and the
// attached detail.
func (e *Error) Error() string {
	switch e.Kind {
	case KindClient:
		return fmt.Sprintf("client error: %v", e.Err)
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindServer:
		msg := fmt.Sprintf("server error: status %d", e.Snapshot.StatusCode)
		if e.Code != "" {
			msg += fmt.Sprintf(" code %s", e.Code)
		}
		if e.Message != "" {
			msg += ": " + e.Message
		}
		return msg
	case KindUnexpectedResponse:
		return "unexpected response: transport result carries no HTTP status"
	case KindDecoding:
		return fmt.Sprintf("decoding error: %v", e.Err)
	case KindMissingKey:
		return fmt.Sprintf("missing key %q in response body", e.Field)
	case KindUnknown:
		return fmt.Sprintf("unknown error: %v", e.Err)
	}
	return fmt.Sprintf("%s error", e.Kind)
}

// Unwrap returns the underlying cause, if any, so that errors.Is and
// errors.As see through the taxonomy wrapper.
func (e *Error) Unwrap() error {
	return e.Err
}

// Client wraps a pre-dispatch request construction failure.
func Client(err error) *Error {
	return &Error{Kind: KindClient, Err: err}
}

// Network wraps a connectivity-class transport failure.
func Network(err error) *Error {
	return &Error{Kind: KindNetwork, Err: err}
}

// Server builds a status failure from a response snapshot and the
// optional application code and message extracted from it.
func Server(snap *Snapshot, code, message string) *Error {
	return &Error{Kind: KindServer, Snapshot: snap, Code: code, Message: message}
}

// UnexpectedResponse reports a transport result without an HTTP-shaped
// status.
func UnexpectedResponse() *Error {
	return &Error{Kind: KindUnexpectedResponse}
}

// Decoding wraps a response body decode failure.
func Decoding(err error) *Error {
	return &Error{Kind: KindDecoding, Err: err}
}

// MissingKey reports an absent field in a decoded response body.
func MissingKey(field string) *Error {
	return &Error{Kind: KindMissingKey, Field: field}
}

// Unknown wraps a transport failure that is not connectivity-class.
func Unknown(err error) *Error {
	return &Error{Kind: KindUnknown, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain. The
// second return value is false if the chain contains no taxonomy error.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}

// Is reports whether err's chain contains a taxonomy error of kind k.
func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
