// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"net/http"
	urlpkg "net/url"
	"time"
)

const nilCtxMsg = "request: nil context"

// An Encoding selects how body parameters are serialized into the
// request body when the descriptor is built.
type Encoding int

const (
	// EncodingNone means the request carries no body. Setting body
	// parameters together with EncodingNone is a build error.
	EncodingNone Encoding = iota
	// EncodingJSON serializes body parameters as a JSON object and sets
	// Content-Type to application/json.
	EncodingJSON
	// EncodingForm serializes body parameters as URL-encoded form data
	// and sets Content-Type to application/x-www-form-urlencoded.
	EncodingForm
)

var encodingNames = []string{"none", "json", "form"}

// String returns the lower-case name of the encoding.
func (e Encoding) String() string {
	if int(e) < len(encodingNames) {
		return encodingNames[e]
	}
	return "invalid"
}

// A Descriptor is the immutable description of one HTTP request,
// produced by a Builder and consumed by the execution engine.
//
// A Descriptor must not be modified after it has been passed to an
// engine. The engine, the transport, and any user callbacks treat its
// fields as read-only; the only sanctioned way to derive a variant is
// WithContext, which copies the descriptor. Because a Descriptor is
// immutable it is safe to execute the same descriptor from multiple
// goroutines concurrently.
type Descriptor struct {
	// Name is the display name used when the request is rendered for
	// humans, for example in failure logs. It carries no protocol
	// meaning.
	Name string

	// Method is the HTTP method. The builder guarantees it is one of
	// GET, POST, PUT, PATCH or DELETE.
	Method string

	// URL is the absolute request URL. Query parameters given to the
	// builder are already merged into URL.RawQuery.
	URL *urlpkg.URL

	// Header contains the request headers, including the Content-Type
	// implied by the body encoding and the X-Request-ID assigned at
	// build time.
	Header http.Header

	// Body is the encoded request body, or nil when Encoding is
	// EncodingNone.
	Body []byte

	// Encoding records how Body was produced.
	Encoding Encoding

	// Timeout is the per-attempt timeout budget. The transport applies
	// it fresh on every attempt; it does not accumulate across retries.
	Timeout time.Duration

	// ctx controls cancellation of the whole send call, including every
	// attempt and the waits between them. Modify only by copying the
	// descriptor with WithContext.
	ctx context.Context
}

// Context returns the descriptor's context. The returned context is
// never nil; it defaults to the background context.
func (d *Descriptor) Context() context.Context {
	if d.ctx != nil {
		return d.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of d with its context changed to
// ctx, which must be non-nil. The original descriptor is left
// untouched.
func (d *Descriptor) WithContext(ctx context.Context) *Descriptor {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	d2 := new(Descriptor)
	*d2 = *d
	d2.ctx = ctx
	return d2
}
