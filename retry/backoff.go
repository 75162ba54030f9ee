// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	sretry "github.com/sethvargo/go-retry"

	"github.com/UnknownB/BRNetwork/request"
)

// NewBackoffWaiter adapts a github.com/sethvargo/go-retry backoff into
// a Waiter, giving access to that package's fibonacci, capped and
// jittered backoff constructors.
//
// A go-retry Backoff is a stateful iterator, while a Waiter is
// consulted with the current retry count, so the factory must return a
// fresh Backoff on every call. The waiter advances the fresh iterator
// to the current retry index and returns that step's duration:
//
//	w := retry.NewBackoffWaiter(func() sretry.Backoff {
//		return sretry.WithCappedDuration(5*time.Second,
//			sretry.NewFibonacci(100*time.Millisecond))
//	})
func NewBackoffWaiter(factory func() sretry.Backoff) Waiter {
	if factory == nil {
		panic("retry: nil backoff factory")
	}
	return backoffWaiter{factory: factory}
}

type backoffWaiter struct {
	factory func() sretry.Backoff
}

func (w backoffWaiter) Wait(r *request.Record) time.Duration {
	b := w.factory()
	var d time.Duration
	for i := 0; i <= r.Retries; i++ {
		next, stop := b.Next()
		if stop {
			break
		}
		d = next
	}
	return d
}
