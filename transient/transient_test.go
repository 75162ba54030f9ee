// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

type timeoutError struct{}

func (timeoutError) Error() string { return "operation timed out" }
func (timeoutError) Timeout() bool { return true }

type notTimeoutError struct{}

func (notTimeoutError) Error() string { return "no timeout here" }
func (notTimeoutError) Timeout() bool { return false }

func TestCategorize(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want Category
	}{
		{name: "nil", err: nil, want: Not},
		{name: "plain error", err: errors.New("something else"), want: Not},
		{name: "timeout method", err: timeoutError{}, want: Timeout},
		{name: "timeout method false", err: notTimeoutError{}, want: Not},
		{name: "context deadline", err: context.DeadlineExceeded, want: Timeout},
		{name: "context canceled", err: context.Canceled, want: Not},
		{
			name: "wrapped timeout",
			err:  &url.Error{Op: "Get", URL: "http://test", Err: timeoutError{}},
			want: Timeout,
		},
		{name: "conn refused", err: syscall.ECONNREFUSED, want: ConnRefused},
		{name: "conn reset", err: syscall.ECONNRESET, want: ConnReset},
		{name: "net unreachable", err: syscall.ENETUNREACH, want: Unreachable},
		{name: "host unreachable", err: syscall.EHOSTUNREACH, want: Unreachable},
		{
			name: "refused deep in op error chain",
			err: &net.OpError{
				Op:  "dial",
				Err: &os.SyscallError{Syscall: "connect", Err: syscall.ECONNREFUSED},
			},
			want: ConnRefused,
		},
		{
			name: "reset wrapped with fmt",
			err:  fmt.Errorf("read tcp: %w", syscall.ECONNRESET),
			want: ConnReset,
		},
		{
			name: "dns failure",
			err:  &net.DNSError{Err: "no such host", Name: "nope.example.com", IsNotFound: true},
			want: DNS,
		},
		{
			name: "dns timeout categorized as timeout",
			err:  &net.DNSError{Err: "i/o timeout", Name: "slow.example.com", IsTimeout: true},
			want: Timeout,
		},
		{name: "permission denied", err: syscall.EACCES, want: Not},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Categorize(testCase.err))
		})
	}
}
