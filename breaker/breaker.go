// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package breaker decorates any Sender with a circuit breaker, so a
// downstream service that keeps failing stops receiving attempts for a
// while instead of burning every caller's full retry budget against it.
package breaker

import (
	"errors"

	"github.com/sony/gobreaker/v2"

	brnetwork "github.com/UnknownB/BRNetwork"
	"github.com/UnknownB/BRNetwork/fault"
	"github.com/UnknownB/BRNetwork/request"
)

// A Breaker is a Sender that forwards to an underlying Sender through a
// sony/gobreaker circuit breaker. While the circuit is open, Send fails
// fast without invoking the underlying sender.
//
// A Breaker is safe for concurrent use by multiple goroutines.
type Breaker struct {
	sender brnetwork.Sender
	cb     *gobreaker.CircuitBreaker[*request.Record]
}

// New wraps the sender in a circuit breaker configured by settings.
//
// Unless the caller supplies their own IsSuccessful, only
// infrastructure-level failures count against the circuit: network,
// unknown and unexpected-response faults, and server faults with a 5xx
// status. Client mistakes, 4xx statuses and cancellations pass through
// without moving the breaker, since they say nothing about the health
// of the downstream service.
func New(sender brnetwork.Sender, settings gobreaker.Settings) *Breaker {
	if sender == nil {
		panic("breaker: nil sender")
	}
	if settings.Name == "" {
		settings.Name = "brnetwork"
	}
	if settings.IsSuccessful == nil {
		settings.IsSuccessful = isSuccessful
	}
	return &Breaker{
		sender: sender,
		cb:     gobreaker.NewCircuitBreaker[*request.Record](settings),
	}
}

// Send forwards to the underlying sender if the circuit allows it.
//
// While the circuit is open (or half-open and saturated) Send returns a
// network fault wrapping the gobreaker error: from the caller's
// perspective the service is unreachable, and no transport attempt is
// consumed. The returned record is nil in that case, since no send call
// ever started.
func (b *Breaker) Send(d *request.Descriptor, opts *brnetwork.Options) (*request.Record, error) {
	rec, err := b.cb.Execute(func() (*request.Record, error) {
		return b.sender.Send(d, opts)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fault.Network(err)
	}
	return rec, err
}

// State returns the current state of the circuit.
func (b *Breaker) State() gobreaker.State {
	return b.cb.State()
}

// Counts returns the circuit's internal counters.
func (b *Breaker) Counts() gobreaker.Counts {
	return b.cb.Counts()
}

func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	var fe *fault.Error
	if !errors.As(err, &fe) {
		// Cancellation or a handler-replaced error; not a verdict on
		// the downstream service.
		return true
	}
	switch fe.Kind {
	case fault.KindNetwork, fault.KindUnknown, fault.KindUnexpectedResponse:
		return false
	case fault.KindServer:
		return fe.Snapshot == nil || fe.Snapshot.StatusCode < 500
	}
	return true
}
