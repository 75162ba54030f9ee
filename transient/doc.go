// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient categorizes transport-level failures by whether
// they are connectivity-class, meaning a retry has some prospect of
// success.
//
// The execution engine uses Categorize to decide how to classify a
// transport failure: connectivity-class failures become network faults
// and anything else becomes an unknown fault. Both are retryable, but
// the distinction is preserved in the terminal error so callers can
// tell a flaky network from a broken transport.
package transient
