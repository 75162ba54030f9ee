// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatDescriptor(t *testing.T) *Descriptor {
	t.Helper()
	d, err := New("POST", "https://api.internal.example.com/v1/tokens?tenant=acme").
		Name("issue-token").
		Header("Authorization", "Bearer sekrit").
		BodyParam("scope", "admin").
		Encode(EncodingJSON).
		Build()
	require.NoError(t, err)
	return d
}

func TestDescribeRedacted(t *testing.T) {
	s := Describe(formatDescriptor(t), Redacted)

	assert.Contains(t, s, "POST")
	assert.Contains(t, s, `"issue-token"`)
	assert.Contains(t, s, "url=[redacted]")
	assert.Contains(t, s, "Authorization", "header names stay visible")
	assert.NotContains(t, s, "api.internal.example.com")
	assert.NotContains(t, s, "tenant=acme")
	assert.NotContains(t, s, "sekrit")
}

func TestDescribeVerbose(t *testing.T) {
	s := Describe(formatDescriptor(t), Verbose)

	assert.Contains(t, s, "https://api.internal.example.com/v1/tokens?tenant=acme")
	assert.Contains(t, s, "Authorization=Bearer sekrit")
	assert.Contains(t, s, "body=")
}

func TestDescribeRecord(t *testing.T) {
	start := time.Now().Add(-time.Second)
	rec := &Record{
		Descriptor: formatDescriptor(t),
		StatusCode: 503,
		Retries:    2,
		Start:      start,
		End:        start.Add(750 * time.Millisecond),
		Err:        errors.New("gave up"),
	}

	s := DescribeRecord(rec, Redacted)
	assert.Contains(t, s, "status=503")
	assert.Contains(t, s, "retries=2")
	assert.Contains(t, s, "750ms")
	assert.Contains(t, s, `err="gave up"`)
	assert.NotContains(t, s, "api.internal.example.com")
}
