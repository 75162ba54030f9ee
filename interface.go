// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package brnetwork

import (
	"net/http"

	"github.com/UnknownB/BRNetwork/request"
)

// Sender is the interface that wraps the basic Send method.
//
// Engine implements Sender, and so does any decorator around it, such
// as the circuit breaker in package breaker. Any other implementation
// must behave substantially the same as Engine.Send.
type Sender interface {
	Send(d *request.Descriptor, opts *Options) (*request.Record, error)
}

// Get uses the sender to issue a GET to the specified URL with default
// options.
//
// For custom headers, query parameters or options, build a descriptor
// with request.New and call s.Send.
func Get(s Sender, url string) (*request.Record, error) {
	d, err := request.New(http.MethodGet, url).Build()
	if err != nil {
		return nil, err
	}
	return s.Send(d, nil)
}

// PostJSON uses the sender to issue a POST to the specified URL with
// the given parameters serialized as a JSON object, using default
// options.
func PostJSON(s Sender, url string, params map[string]any) (*request.Record, error) {
	return post(s, url, params, request.EncodingJSON)
}

// PostForm uses the sender to issue a POST to the specified URL with
// the given parameters URL-encoded as form data, using default options.
func PostForm(s Sender, url string, params map[string]any) (*request.Record, error) {
	return post(s, url, params, request.EncodingForm)
}

func post(s Sender, url string, params map[string]any, enc request.Encoding) (*request.Record, error) {
	b := request.New(http.MethodPost, url).Encode(enc)
	for k, v := range params {
		b.BodyParam(k, v)
	}
	d, err := b.Build()
	if err != nil {
		return nil, err
	}
	return s.Send(d, nil)
}

// Get issues a GET to the specified URL with default options, using the
// same policies followed by Send.
func (c *Engine) Get(url string) (*request.Record, error) {
	return Get(c, url)
}

// PostJSON issues a POST with a JSON body to the specified URL with
// default options, using the same policies followed by Send.
func (c *Engine) PostJSON(url string, params map[string]any) (*request.Record, error) {
	return PostJSON(c, url, params)
}

// PostForm issues a form POST to the specified URL with default
// options, using the same policies followed by Send.
func (c *Engine) PostForm(url string, params map[string]any) (*request.Record, error) {
	return PostForm(c, url, params)
}
