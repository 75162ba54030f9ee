// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"fmt"
	"net/http"
	urlpkg "net/url"
	"time"

	"github.com/google/uuid"

	"github.com/UnknownB/BRNetwork/fault"
)

// DefaultTimeout is the per-attempt timeout assigned by Build when the
// caller did not set one.
const DefaultTimeout = 30 * time.Second

// RequestIDHeader is the header Build populates with a fresh UUID when
// the caller did not supply a request id of their own.
const RequestIDHeader = "X-Request-ID"

var validMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// A Builder accumulates the configuration of one HTTP request through
// chained setter calls and finalizes it into a frozen Descriptor.
//
// The zero value is not usable; create a Builder with New. All setters
// return the receiver so calls can be chained. A Builder is mutable and
// not safe for concurrent use; the Descriptor produced by Build is
// immutable and safe to share. Configuration problems (a relative URL,
// an unsupported method, body parameters without an encoding) are not
// reported by the setters; they surface from Build as client faults, so
// the engine never observes a partially built request.
type Builder struct {
	method   string
	url      string
	name     string
	header   http.Header
	query    urlpkg.Values
	body     map[string]any
	encoding Encoding
	timeout  time.Duration
	ctx      context.Context
}

// New creates a Builder for the given method and absolute URL. An empty
// method means GET.
func New(method, url string) *Builder {
	if method == "" {
		method = http.MethodGet
	}
	return &Builder{
		method: method,
		url:    url,
		header: make(http.Header),
		query:  make(urlpkg.Values),
	}
}

// Name sets the display name used when the request is rendered for
// humans.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Header sets a request header, replacing any existing values for the
// key. Keys are case-insensitive.
func (b *Builder) Header(key, value string) *Builder {
	b.header.Set(key, value)
	return b
}

// Query sets a query parameter, replacing any existing values for the
// key.
func (b *Builder) Query(key, value string) *Builder {
	b.query.Set(key, value)
	return b
}

// BodyParam sets one body parameter. The value may be any JSON-able
// scalar or composite; with EncodingForm it is rendered with fmt.Sprint.
// Body parameters require an encoding other than EncodingNone to be
// selected with Encode.
func (b *Builder) BodyParam(key string, value any) *Builder {
	if b.body == nil {
		b.body = make(map[string]any)
	}
	b.body[key] = value
	return b
}

// Encode selects the body encoding mode.
func (b *Builder) Encode(e Encoding) *Builder {
	b.encoding = e
	return b
}

// Timeout sets the per-attempt timeout budget.
func (b *Builder) Timeout(d time.Duration) *Builder {
	b.timeout = d
	return b
}

// Context sets the context controlling cancellation of the whole send
// call built from this request.
func (b *Builder) Context(ctx context.Context) *Builder {
	b.ctx = ctx
	return b
}

// Build validates the accumulated configuration and freezes it into a
// Descriptor. Any configuration problem is returned as a client fault.
//
// Build merges query parameters into the URL, encodes body parameters
// per the selected encoding (setting Content-Type accordingly), applies
// DefaultTimeout when no timeout was set, and assigns a fresh UUID to
// the X-Request-ID header unless the caller already set one. Build does
// not consume the builder; calling it again yields an equivalent, but
// distinct, descriptor with its own request id.
func (b *Builder) Build() (*Descriptor, error) {
	if !validMethods[b.method] {
		return nil, fault.Client(fmt.Errorf("request: unsupported method %q", b.method))
	}
	u, err := urlpkg.Parse(b.url)
	if err != nil {
		return nil, fault.Client(err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fault.Client(fmt.Errorf("request: URL %q is not absolute", b.url))
	}
	if len(b.query) > 0 {
		q := b.query.Encode()
		if u.RawQuery != "" {
			u.RawQuery += "&" + q
		} else {
			u.RawQuery = q
		}
	}

	body, contentType, err := encodeBody(b.body, b.encoding)
	if err != nil {
		return nil, fault.Client(err)
	}

	header := b.header.Clone()
	if header == nil {
		header = make(http.Header)
	}
	if contentType != "" && header.Get("Content-Type") == "" {
		header.Set("Content-Type", contentType)
	}
	if header.Get(RequestIDHeader) == "" {
		header.Set(RequestIDHeader, uuid.NewString())
	}

	timeout := b.timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Descriptor{
		Name:     b.name,
		Method:   b.method,
		URL:      u,
		Header:   header,
		Body:     body,
		Encoding: b.encoding,
		Timeout:  timeout,
		ctx:      b.ctx,
	}, nil
}
