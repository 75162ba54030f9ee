// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package brnetwork

import (
	"time"

	"github.com/UnknownB/BRNetwork/fault"
	"github.com/UnknownB/BRNetwork/request"
	"github.com/UnknownB/BRNetwork/retry"
	"github.com/UnknownB/BRNetwork/transient"
	"github.com/UnknownB/BRNetwork/transport"
)

// DefaultRetryMax is the retry bound applied when Send is called with
// nil options.
const DefaultRetryMax = 3

// A StatusHandler extracts an application-specific error code and
// message from a terminal status failure, typically by parsing the
// response body. Empty return values mean nothing could be extracted.
//
// The engine invokes the handler at most once per send call, only when
// the call ultimately terminates in a status failure, and never on
// intermediate attempts that are going to be retried. It runs
// synchronously on the goroutine executing the send call.
type StatusHandler func(rec *request.Record) (code, message string)

// A FailureHandler observes the terminal error of a failing send call,
// typically to log it. It receives the terminal error and the frozen
// record of the call.
//
// Returning nil propagates the original error to the caller. Returning
// a non-nil error replaces the original: the replacement propagates
// instead, and is also stored in the record. The engine invokes the
// handler at most once per send call, only on terminal failure, and
// never on success or cancellation. It runs synchronously on the
// goroutine executing the send call, so it may perform its own I/O.
type FailureHandler func(err error, rec *request.Record) error

// Options carries the per-call knobs of one send call.
//
// A nil *Options is valid and means DefaultRetryMax retries with no
// handlers. Note the distinction from a zero-valued Options, which
// means no retries at all: retryMax bounds total attempts to
// RetryMax+1.
type Options struct {
	// RetryMax is the maximum number of retries, so the call makes at
	// most RetryMax+1 attempts. A negative value is treated as 0.
	RetryMax int

	// StatusHandler, if set, enriches a terminal status failure with an
	// application error code and message.
	StatusHandler StatusHandler

	// FailureHandler, if set, observes (and may replace) the terminal
	// error of a failing call.
	FailureHandler FailureHandler
}

// An Engine executes request descriptors with bounded retry, response
// validation and failure classification. Its zero value is a valid
// configuration using transport.Default, the policy of retrying error
// statuses and transport failures, and retry.DefaultWaiter backoff.
//
// An Engine holds no per-call state: every send call owns its record
// and retry counter exclusively, so a single Engine is safe for
// concurrent use by multiple goroutines and should be reused rather
// than created per call (its transport typically caches TCP
// connections).
type Engine struct {
	// Transport performs the actual network call for each attempt. If
	// nil, transport.Default is used.
	Transport transport.Transport

	// Decider narrows which failed attempts are retried. If nil, error
	// statuses and transport failures, connectivity-class or not, are
	// retried. The per-call retry maximum always bounds attempts
	// regardless of the decider, and an unexpected-response fault or a
	// cancelled context terminates the call without consulting it.
	Decider retry.Decider

	// Waiter controls the backoff between attempts. If nil,
	// retry.DefaultWaiter is used.
	Waiter retry.Waiter
}

// Send executes the descriptor, retrying failed attempts per the
// options and the engine's policy, and returns the record of the call.
//
// On success the returned error is nil and the record holds the
// response. On failure the returned error is a *fault.Error (or the
// failure handler's replacement) and the record holds the last
// attempt's state; the record is never nil. When the descriptor's
// context is cancelled, or its deadline exceeded, the context error is
// returned directly, without fault classification and without invoking
// any handler.
//
// The record returned is frozen: the engine does not touch it after
// Send returns.
func (c *Engine) Send(d *request.Descriptor, opts *Options) (*request.Record, error) {
	o := normalize(opts)
	rec := &request.Record{
		Descriptor: d,
		Start:      time.Now(),
	}

	tr := c.transport()
	decide := retry.Times(o.RetryMax).And(c.decide)
	ctx := d.Context()

RetryLoop:
	for {
		if err := ctx.Err(); err != nil {
			return cancelled(rec, err)
		}

		res, err := tr.Do(d)
		if err != nil {
			// A transport failure caused by the caller's own context is
			// a cancellation, not a network fault.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return cancelled(rec, ctxErr)
			}
			rec.Err = classify(err)
		} else {
			rec.Err = nil
			if verr := validate(rec, res); verr != nil {
				// Broken transport contract; never retried.
				rec.Err = verr
				break RetryLoop
			}
			if !rec.ErrorStatus() {
				rec.End = time.Now()
				return rec, nil
			}
		}

		if !decide.Decide(rec) {
			break
		}

		if wait := c.waiter().Wait(rec); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return cancelled(rec, ctx.Err())
			}
		}

		rec.StatusCode = 0
		rec.Header = nil
		rec.Body = nil
		rec.Err = nil
		rec.Retries++
	}

	return fail(rec, o)
}

// fail finalizes a terminal failure: it freezes the record, enriches a
// status failure through the status handler, and gives the failure
// handler its single chance to observe or replace the error.
func fail(rec *request.Record, o *Options) (*request.Record, error) {
	rec.End = time.Now()

	terr := rec.Err
	if terr == nil {
		var code, message string
		if o.StatusHandler != nil {
			code, message = o.StatusHandler(rec)
		}
		terr = fault.Server(snapshot(rec), code, message)
		rec.Err = terr
	}

	if o.FailureHandler != nil {
		if repl := o.FailureHandler(terr, rec); repl != nil {
			terr = repl
			rec.Err = repl
		}
	}

	return rec, terr
}

// cancelled freezes the record and propagates the context error
// untouched. No handler runs: cancellation is the caller's own doing,
// not a failure to report back to them.
func cancelled(rec *request.Record, err error) (*request.Record, error) {
	rec.End = time.Now()
	rec.Err = err
	return rec, err
}

// classify maps a transport failure into the taxonomy:
// connectivity-class failures become network faults, anything else
// unknown faults.
func classify(err error) error {
	if transient.Categorize(err) != transient.Not {
		return fault.Network(err)
	}
	return fault.Unknown(err)
}

func snapshot(rec *request.Record) *fault.Snapshot {
	body := make([]byte, len(rec.Body))
	copy(body, rec.Body)
	return &fault.Snapshot{
		StatusCode: rec.StatusCode,
		Header:     rec.Header.Clone(),
		Body:       body,
	}
}

func normalize(opts *Options) *Options {
	if opts == nil {
		return &Options{RetryMax: DefaultRetryMax}
	}
	o := *opts
	if o.RetryMax < 0 {
		o.RetryMax = 0
	}
	return &o
}

func (c *Engine) transport() transport.Transport {
	if c.Transport != nil {
		return c.Transport
	}
	return transport.Default
}

func (c *Engine) decide(r *request.Record) bool {
	if c.Decider != nil {
		return c.Decider.Decide(r)
	}
	return retry.ErrorStatus.Or(retry.TransportErr)(r)
}

func (c *Engine) waiter() retry.Waiter {
	if c.Waiter != nil {
		return c.Waiter
	}
	return retry.DefaultWaiter
}
