// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transport is the sole I/O boundary of the library. A
// Transport performs one network attempt for a frozen request
// descriptor and returns the raw protocol-level result; the execution
// engine never touches sockets or streams itself.
//
// The default implementation, Client, is backed by net/http. Any other
// implementation (a recorded stub, a message-bus bridge, a fault
// injector) can be installed on the engine as long as it honors the
// Transport contract.
package transport

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/UnknownB/BRNetwork/request"
)

// A Result is the raw outcome of one transport attempt: the
// protocol-level response metadata plus the fully buffered body.
//
// A Result with a StatusCode outside the HTTP-shaped range [100, 600)
// violates the transport contract; the engine turns it into an
// unexpected-response fault and terminates the send call immediately.
type Result struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// A Transport performs the network call for one request attempt.
//
// Do either returns a Result or an error, never both. The per-attempt
// timeout from the descriptor must be applied inside Do, fresh on every
// call, and the descriptor's context must be honored for cancellation.
// Do must not retry on its own; retrying is the engine's job.
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Transport interface {
	Do(d *request.Descriptor) (*Result, error)
}

// The Func type is an adapter to allow the use of ordinary functions as
// transports, which is convenient for stubs in tests.
type Func func(d *request.Descriptor) (*Result, error)

// Do calls f(d).
func (f Func) Do(d *request.Descriptor) (*Result, error) {
	return f(d)
}

// An HTTPDoer implements a Do method in the same manner as the standard
// library http.Client from the net/http package.
type HTTPDoer interface {
	Do(r *http.Request) (*http.Response, error)
}

// Default is the transport the engine falls back to when none is
// installed. It uses http.DefaultClient.
var Default = &Client{}

// A Client is the net/http-backed Transport. Its zero value is a valid
// configuration using http.DefaultClient.
//
// The HTTPDoer is responsible for protocol-level concerns: connection
// pooling, redirects, cookies, proxies and TLS. Client only converts
// the descriptor into an http.Request, applies the per-attempt timeout,
// and buffers the response body.
type Client struct {
	// HTTPDoer specifies the mechanics of sending HTTP requests and
	// receiving responses. If nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer
}

// New returns a Client backed by the given doer. A nil doer means
// http.DefaultClient.
func New(doer HTTPDoer) *Client {
	return &Client{HTTPDoer: doer}
}

// Do performs one request attempt for the descriptor. The descriptor's
// timeout bounds this attempt only; each call to Do starts a fresh
// timeout budget derived from the descriptor's context.
func (c *Client) Do(d *request.Descriptor) (*Result, error) {
	ctx := d.Context()
	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	req, err := newRequest(ctx, d)
	if err != nil {
		return nil, err
	}

	resp, err := c.doer().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}
	return c.HTTPDoer
}

// CloseIdleConnections forwards to the underlying HTTPDoer if it has a
// CloseIdleConnections method, and does nothing otherwise.
func (c *Client) CloseIdleConnections() {
	if ic, ok := c.doer().(interface{ CloseIdleConnections() }); ok {
		ic.CloseIdleConnections()
	}
}

// newRequest converts a frozen descriptor into the http.Request for one
// attempt. The descriptor's header map is cloned so handler or doer
// mutations cannot leak back into the immutable descriptor.
func newRequest(ctx context.Context, d *request.Descriptor) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, d.Method, d.URL.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header = d.Header.Clone()
	if len(d.Body) > 0 {
		req.Body = io.NopCloser(bytes.NewReader(d.Body))
		req.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(d.Body)), nil
		}
		req.ContentLength = int64(len(d.Body))
	}
	return req, nil
}
