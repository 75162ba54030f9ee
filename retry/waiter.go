// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"sync"
	"time"

	"github.com/UnknownB/BRNetwork/request"
)

// A Waiter specifies how long to wait before retrying a failed attempt.
//
// Implementations of Waiter must be safe for concurrent use by multiple
// goroutines. The engine only consults the waiter after it has decided
// to retry.
type Waiter interface {
	Wait(r *request.Record) time.Duration
}

// DefaultWaiter is the default retry wait policy: a jittered
// exponential backoff with a base wait of 50 milliseconds and a maximum
// wait of 1 second.
var DefaultWaiter = NewExpWaiter(50*time.Millisecond, 1*time.Second, time.Now())

// NewFixedWaiter constructs a Waiter that always returns d. Use a zero
// duration to retry without waiting.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *request.Record) time.Duration {
	return time.Duration(w)
}

// NewExpWaiter constructs a Waiter implementing exponential backoff
// with optional jitter, following the "Full Jitter" approach described
// in https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
//
// The wait for a given retry count is drawn uniformly from [0, ceil),
// where
//
//	ceil := min(base * 2**retries, max)
//
// Base must be positive and max must be at least base.
//
// Parameter jitter selects the randomness source for the draw: nil
// disables jitter entirely (the waiter returns ceil), a time.Time, int
// or int64 seeds a generator, and a rand.Source or *rand.Rand is used
// as-is.
func NewExpWaiter(base, max time.Duration, jitter any) Waiter {
	if base < 1 {
		panic("retry: base must be positive")
	}
	if max < base {
		panic("retry: max must be at least base")
	}
	return &jitterExpWaiter{
		base: base,
		max:  max,
		rand: newJitterRand(jitter),
	}
}

type jitterExpWaiter struct {
	base time.Duration
	max  time.Duration
	rand *rand.Rand
	lock sync.Mutex
}

func (w *jitterExpWaiter) Wait(r *request.Record) time.Duration {
	ceil := w.ceiling(r.Retries)
	if w.rand == nil || ceil <= 0 {
		return ceil
	}
	w.lock.Lock()
	defer w.lock.Unlock()
	return time.Duration(w.rand.Int63n(int64(ceil)))
}

// ceiling computes min(base * 2**retries, max), clamping to max when
// the doubling overflows int64.
func (w *jitterExpWaiter) ceiling(retries int) time.Duration {
	exp := int64(1) << retries
	if exp < 1 {
		return w.max
	}
	ceil := int64(w.base) * exp
	if ceil < int64(w.base) || ceil > int64(w.max) {
		return w.max
	}
	return time.Duration(ceil)
}

func newJitterRand(jitter any) *rand.Rand {
	switch j := jitter.(type) {
	case nil:
		return nil
	case *rand.Rand:
		if j == nil {
			panic("retry: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		return rand.New(j)
	case time.Time:
		return rand.New(rand.NewSource(j.UnixNano()))
	case int:
		return rand.New(rand.NewSource(int64(j)))
	case int64:
		return rand.New(rand.NewSource(j))
	}
	panic("retry: invalid jitter type")
}
