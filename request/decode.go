// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"
	"fmt"

	"github.com/UnknownB/BRNetwork/fault"
)

// DecodeJSON unmarshals the record's response body into v. A decode
// failure is returned as a decoding fault wrapping the json error.
func DecodeJSON(r *Record, v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fault.Decoding(err)
	}
	return nil
}

// Field decodes the record's response body as a JSON object and returns
// the value stored under key. An absent key is returned as a missing
// key fault naming the field; a body that is not a JSON object is a
// decoding fault.
func Field(r *Record, key string) (any, error) {
	var obj map[string]any
	if err := DecodeJSON(r, &obj); err != nil {
		return nil, err
	}
	v, ok := obj[key]
	if !ok {
		return nil, fault.MissingKey(key)
	}
	return v, nil
}

// StringField is Field restricted to string values. A value of any
// other type is a decoding fault.
func StringField(r *Record, key string) (string, error) {
	v, err := Field(r, key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fault.Decoding(fmt.Errorf("request: field %q is %T, not string", key, v))
	}
	return s, nil
}
