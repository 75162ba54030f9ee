// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package request defines the value types flowing through a send call:
// the immutable Descriptor produced by a Builder, and the per-call
// Record the engine accumulates response state into.
//
// Build a descriptor with chained setters and hand it to an engine:
//
//	d, err := request.New("POST", "https://api.example.com/users").
//		Name("create-user").
//		Query("notify", "1").
//		BodyParam("email", "kim@example.com").
//		Encode(request.EncodingJSON).
//		Timeout(10 * time.Second).
//		Build()
//
// The package also provides JSON decode helpers over a finished Record
// (DecodeJSON, Field, StringField) and redaction-aware formatting of
// descriptors and records for logs (Describe, DescribeRecord).
package request
