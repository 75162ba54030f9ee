// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// A Mode selects how much sensitive request detail a human-readable
// rendering exposes. It is a parameter of the formatting functions, not
// a property of the data model: the underlying descriptor and record
// stay fully populated for programmatic use regardless of mode.
type Mode int

const (
	// Redacted omits the URL and header values, keeping only the
	// method, display name, header names and body size. Use it in
	// release builds.
	Redacted Mode = iota
	// Verbose renders the full URL and header values. Use it in debug
	// builds only.
	Verbose
)

// Describe renders a one-line human-readable summary of a descriptor.
// In Redacted mode the URL and all header values are withheld.
func Describe(d *Descriptor, mode Mode) string {
	var sb strings.Builder
	sb.WriteString(d.Method)
	if d.Name != "" {
		fmt.Fprintf(&sb, " %q", d.Name)
	}
	if mode == Verbose {
		sb.WriteByte(' ')
		sb.WriteString(d.URL.String())
	} else {
		sb.WriteString(" url=[redacted]")
	}
	if len(d.Header) > 0 {
		keys := make([]string, 0, len(d.Header))
		for k := range d.Header {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if mode == Verbose {
			pairs := make([]string, len(keys))
			for i, k := range keys {
				pairs[i] = k + "=" + strings.Join(d.Header.Values(k), ",")
			}
			fmt.Fprintf(&sb, " headers{%s}", strings.Join(pairs, " "))
		} else {
			fmt.Fprintf(&sb, " headers[%s]", strings.Join(keys, " "))
		}
	}
	if len(d.Body) > 0 {
		fmt.Fprintf(&sb, " body=%dB(%s)", len(d.Body), d.Encoding)
	}
	return sb.String()
}

// DescribeRecord renders a one-line human-readable summary of a send
// call's record, including the descriptor summary in the same mode.
func DescribeRecord(r *Record, mode Mode) string {
	var sb strings.Builder
	sb.WriteString(Describe(r.Descriptor, mode))
	fmt.Fprintf(&sb, " -> status=%d retries=%d duration=%s",
		r.StatusCode, r.Retries, r.Duration().Round(time.Millisecond))
	if r.Err != nil {
		fmt.Fprintf(&sb, " err=%q", r.Err.Error())
	}
	return sb.String()
}
