// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/UnknownB/BRNetwork/fault"
	"github.com/UnknownB/BRNetwork/request"
	"github.com/UnknownB/BRNetwork/transient"
)

// A Decider decides whether a failed attempt should be retried.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines. The engine consults the decider only for
// retryable failure classes; an unexpected-response fault and a
// cancelled context terminate the call before any decider runs.
//
// Use the built-in constructors Times, StatusCode and Before, and the
// built-in deciders ErrorStatus, TransportErr and TransientErr; or
// implement your own. Use DeciderFunc to convert an ordinary function
// into a Decider and to compose deciders with And and Or.
type Decider interface {
	Decide(r *request.Record) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders. It implements Decider and provides the
// logical composition methods And and Or.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
type DeciderFunc func(r *request.Record) bool

// ErrorStatus is a decider that indicates a retry if the most recent
// attempt produced a response whose status code lies outside the
// success range [200, 300). It only looks at the status code; compose
// it with TransportErr to also cover transport failures.
var ErrorStatus DeciderFunc = errorStatus

// TransportErr is a decider that indicates a retry if the most recent
// attempt failed in the transport, whether the failure was
// connectivity-class (a network fault) or not (an unknown fault). It is
// the transport half of the engine's default decision.
var TransportErr DeciderFunc = transportErr

// TransientErr is a decider that indicates a retry if the most recent
// attempt failed with a connectivity-class transport error according to
// transient.Categorize. It is narrower than TransportErr: an unknown
// fault does not indicate a retry. It only looks at the error, so it
// always returns false when a response was received.
var TransientErr DeciderFunc = transientErr

// Decide returns true if a retry should be done, and false otherwise,
// after examining the current send call state.
func (f DeciderFunc) Decide(r *request.Record) bool {
	return f(r)
}

// And composes two deciders into one that returns true only if both
// return true. Short-circuit logic is used, so g is not evaluated if f
// returns false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(r *request.Record) bool {
		return f(r) && g(r)
	}
}

// Or composes two deciders into one that returns true if either
// returns true. Short-circuit logic is used, so g is not evaluated if f
// returns true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(r *request.Record) bool {
		return f(r) || g(r)
	}
}

// Times constructs a decider which allows up to n retries: it returns
// true while the number of retries consumed is less than n.
func Times(n int) DeciderFunc {
	return func(r *request.Record) bool {
		return r.Retries < n
	}
}

// Before constructs a decider allowing retries until the send call has
// been running for d: it returns true while the call duration is less
// than d.
func Before(d time.Duration) DeciderFunc {
	return func(r *request.Record) bool {
		return r.Duration() < d
	}
}

// StatusCode constructs a decider allowing retries only when the most
// recent attempt's response status code is one of ss.
func StatusCode(ss ...int) DeciderFunc {
	ss2 := make([]int, len(ss))
	copy(ss2, ss)
	return func(r *request.Record) bool {
		for _, s := range ss2 {
			if r.StatusCode == s {
				return true
			}
		}
		return false
	}
}

func errorStatus(r *request.Record) bool {
	return r.ErrorStatus()
}

func transportErr(r *request.Record) bool {
	return fault.Is(r.Err, fault.KindNetwork) || fault.Is(r.Err, fault.KindUnknown)
}

func transientErr(r *request.Record) bool {
	return transient.Categorize(r.Err) != transient.Not
}
