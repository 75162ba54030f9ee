// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"
	"errors"
	"fmt"
	urlpkg "net/url"
)

const paramsWithoutEncodingMsg = "request: body parameters set but encoding is none"

// encodeBody serializes body parameters per the selected encoding and
// returns the encoded bytes together with the implied Content-Type.
//
// With EncodingNone the parameters must be empty and no body is
// produced. With EncodingForm every value is rendered with fmt.Sprint,
// which is lossless for the scalar values the builder is meant to
// carry. An encoding value outside the defined set is an error.
func encodeBody(params map[string]any, e Encoding) (body []byte, contentType string, err error) {
	switch e {
	case EncodingNone:
		if len(params) > 0 {
			return nil, "", errors.New(paramsWithoutEncodingMsg)
		}
		return nil, "", nil
	case EncodingJSON:
		if len(params) == 0 {
			return nil, "", nil
		}
		b, err := json.Marshal(params)
		if err != nil {
			return nil, "", err
		}
		return b, "application/json", nil
	case EncodingForm:
		if len(params) == 0 {
			return nil, "", nil
		}
		form := make(urlpkg.Values, len(params))
		for k, v := range params {
			form.Set(k, fmt.Sprint(v))
		}
		return []byte(form.Encode()), "application/x-www-form-urlencoded", nil
	default:
		return nil, "", fmt.Errorf("request: invalid body encoding %d", int(e))
	}
}
