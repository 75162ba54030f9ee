// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides the pluggable pieces of the engine's retry
// behavior: Deciders, which judge whether a failed attempt should be
// retried, and Waiters, which control the backoff between attempts.
//
// The engine's default decision retries error statuses and transport
// failures of either failure kind, bounded by the per-call retry
// maximum. Install a custom Decider on the engine to narrow that, for
// example to retry only idempotent methods or only selected status
// codes:
//
//	engine := &brnetwork.Engine{
//		Decider: retry.StatusCode(429, 502, 503, 504).Or(retry.TransientErr),
//		Waiter:  retry.NewExpWaiter(250*time.Millisecond, 5*time.Second, time.Now()),
//	}
package retry
