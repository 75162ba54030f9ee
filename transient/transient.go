// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"errors"
	"net"
	"syscall"
)

// A Category is the connectivity category of a transport failure, as
// reported by Categorize.
//
// The category Not means the failure is not connectivity-class: the
// transport broke for a reason unrelated to reaching the remote host,
// and the execution engine classifies it as an unknown failure.
//
// Every other category marks a connectivity-class failure. The engine
// classifies those as network failures, which are retryable because a
// later attempt has some prospect of reaching the host.
type Category int

const (
	// Not indicates a failure that is not connectivity-class.
	Not Category = iota
	// Timeout indicates a client-side timeout, either from the
	// per-attempt timeout on the request descriptor or from a deadline
	// inside the transport. Categorize returns Timeout when the error
	// or any wrapped cause has a Timeout() method reporting true.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (ECONNREFUSED). Refusal can be a permanent condition, but it also
	// happens while a service is restarting and not yet listening, so
	// it is treated as connectivity-class.
	ConnRefused
	// ConnReset indicates the remote host reset an active connection
	// (ECONNRESET), commonly seen behind load balancers during
	// deployments.
	ConnReset
	// Unreachable indicates no route to the remote network or host
	// (ENETUNREACH, EHOSTUNREACH).
	Unreachable
	// DNS indicates a name resolution failure. Resolution failures are
	// connectivity-class because resolvers routinely return transient
	// SERVFAIL-type answers under load.
	DNS
)

// Categorize returns the connectivity category of a transport failure.
// A nil error and a failure that is not connectivity-class both produce
// Not.
//
// Categorize inspects wrapped causes within err, not just err itself.
// It deliberately ignores the deprecated Temporary() method, whose
// semantics are too loose to base retry decisions on.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var t timeouter
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return DNS
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.ECONNREFUSED:
			return ConnRefused
		case syscall.ENETUNREACH, syscall.EHOSTUNREACH:
			return Unreachable
		}
	}

	return Not
}

type timeouter interface {
	Timeout() bool
}
