// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package brnetwork

import (
	"net/http"

	"github.com/UnknownB/BRNetwork/fault"
	"github.com/UnknownB/BRNetwork/request"
	"github.com/UnknownB/BRNetwork/transport"
)

// validate inspects a raw transport result and populates the record
// from it.
//
// A result without an HTTP-shaped status, meaning one outside the range
// [100, 600), violates the transport contract: validate returns an
// unexpected-response fault and leaves the record's response fields
// untouched. Otherwise it fills in the status code, the response
// headers normalized to canonical case-insensitive keys, and the body,
// and returns nil. Whether the populated status is acceptable is the
// engine's decision, via Record.ErrorStatus.
func validate(rec *request.Record, res *transport.Result) error {
	if res == nil || res.StatusCode < 100 || res.StatusCode >= 600 {
		return fault.UnexpectedResponse()
	}

	rec.StatusCode = res.StatusCode
	rec.Header = canonicalHeader(res.Header)
	rec.Body = res.Body
	return nil
}

// canonicalHeader rebuilds h with canonical MIME keys. Results from the
// net/http transport are canonical already, but the Transport interface
// does not require it, and case-insensitive lookups on the record
// depend on it.
func canonicalHeader(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, vs := range h {
		for _, v := range vs {
			out.Add(k, v)
		}
	}
	return out
}
