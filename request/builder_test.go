// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UnknownB/BRNetwork/fault"
)

func TestBuild(t *testing.T) {
	t.Run("full configuration", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), ctxKey{}, "v")
		d, err := New("POST", "https://api.test/v1/users").
			Name("create-user").
			Header("X-Api-Key", "sekrit").
			Query("notify", "1").
			BodyParam("email", "kim@example.com").
			Encode(EncodingJSON).
			Timeout(10 * time.Second).
			Context(ctx).
			Build()

		require.NoError(t, err)
		assert.Equal(t, "create-user", d.Name)
		assert.Equal(t, "POST", d.Method)
		assert.Equal(t, "https://api.test/v1/users?notify=1", d.URL.String())
		assert.Equal(t, "sekrit", d.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", d.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"email":"kim@example.com"}`, string(d.Body))
		assert.Equal(t, EncodingJSON, d.Encoding)
		assert.Equal(t, 10*time.Second, d.Timeout)
		assert.Equal(t, "v", d.Context().Value(ctxKey{}))
	})

	t.Run("empty method means GET", func(t *testing.T) {
		d, err := New("", "http://test").Build()
		require.NoError(t, err)
		assert.Equal(t, "GET", d.Method)
	})

	t.Run("query string encodes exactly", func(t *testing.T) {
		d, err := New("GET", "http://test/items").Query("page", "0").Build()
		require.NoError(t, err)
		assert.Equal(t, "page=0", d.URL.RawQuery)
	})

	t.Run("query merges with existing", func(t *testing.T) {
		d, err := New("GET", "http://test/items?limit=5").Query("page", "2").Build()
		require.NoError(t, err)
		assert.Equal(t, "limit=5&page=2", d.URL.RawQuery)
	})

	t.Run("form body", func(t *testing.T) {
		d, err := New("POST", "http://test").
			BodyParam("count", 3).
			Encode(EncodingForm).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "count=3", string(d.Body))
		assert.Equal(t, "application/x-www-form-urlencoded", d.Header.Get("Content-Type"))
	})

	t.Run("caller content type wins", func(t *testing.T) {
		d, err := New("POST", "http://test").
			Header("Content-Type", "application/vnd.api+json").
			BodyParam("a", 1).
			Encode(EncodingJSON).
			Build()
		require.NoError(t, err)
		assert.Equal(t, "application/vnd.api+json", d.Header.Get("Content-Type"))
	})

	t.Run("default timeout", func(t *testing.T) {
		d, err := New("GET", "http://test").Build()
		require.NoError(t, err)
		assert.Equal(t, DefaultTimeout, d.Timeout)
	})

	t.Run("request id assigned", func(t *testing.T) {
		d, err := New("GET", "http://test").Build()
		require.NoError(t, err)
		assert.NotEmpty(t, d.Header.Get(RequestIDHeader))
	})

	t.Run("request id not overwritten", func(t *testing.T) {
		d, err := New("GET", "http://test").Header(RequestIDHeader, "caller-id").Build()
		require.NoError(t, err)
		assert.Equal(t, "caller-id", d.Header.Get(RequestIDHeader))
	})

	t.Run("two builds give distinct request ids", func(t *testing.T) {
		b := New("GET", "http://test")
		d1, err := b.Build()
		require.NoError(t, err)
		d2, err := b.Build()
		require.NoError(t, err)
		assert.NotEqual(t, d1.Header.Get(RequestIDHeader), d2.Header.Get(RequestIDHeader))
	})

	t.Run("descriptor detached from builder", func(t *testing.T) {
		b := New("GET", "http://test").Header("X-One", "1")
		d, err := b.Build()
		require.NoError(t, err)
		b.Header("X-Two", "2")
		assert.Empty(t, d.Header.Get("X-Two"), "later builder mutation must not reach the frozen descriptor")
	})
}

func TestBuildErrors(t *testing.T) {
	testCases := []struct {
		name string
		b    *Builder
	}{
		{name: "unsupported method", b: New("TRACE", "http://test")},
		{name: "lowercase method", b: New("get", "http://test")},
		{name: "relative URL", b: New("GET", "/users")},
		{name: "empty URL", b: New("GET", "")},
		{name: "scheme only", b: New("GET", "http://")},
		{name: "body params without encoding", b: New("POST", "http://test").BodyParam("a", 1)},
		{
			name: "unencodable body value",
			b:    New("POST", "http://test").BodyParam("f", func() {}).Encode(EncodingJSON),
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			d, err := testCase.b.Build()
			require.Error(t, err)
			assert.Nil(t, d)
			assert.True(t, fault.Is(err, fault.KindClient), "builder failures are client faults")
		})
	}
}

type ctxKey struct{}
