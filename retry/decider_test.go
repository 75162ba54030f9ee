// Copyright 2026 The BRNetwork Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/UnknownB/BRNetwork/fault"
	"github.com/UnknownB/BRNetwork/request"
)

func TestTimes(t *testing.T) {
	d := Times(2)
	assert.True(t, d.Decide(&request.Record{Retries: 0}))
	assert.True(t, d.Decide(&request.Record{Retries: 1}))
	assert.False(t, d.Decide(&request.Record{Retries: 2}))
	assert.False(t, Times(0).Decide(&request.Record{Retries: 0}))
}

func TestStatusCode(t *testing.T) {
	d := StatusCode(429, 503)
	assert.True(t, d.Decide(&request.Record{StatusCode: 429}))
	assert.True(t, d.Decide(&request.Record{StatusCode: 503}))
	assert.False(t, d.Decide(&request.Record{StatusCode: 500}))
	assert.False(t, d.Decide(&request.Record{}))
	assert.False(t, StatusCode().Decide(&request.Record{StatusCode: 200}))
}

func TestErrorStatus(t *testing.T) {
	assert.False(t, ErrorStatus.Decide(&request.Record{StatusCode: 200}))
	assert.False(t, ErrorStatus.Decide(&request.Record{StatusCode: 299}))
	assert.True(t, ErrorStatus.Decide(&request.Record{StatusCode: 300}))
	assert.True(t, ErrorStatus.Decide(&request.Record{StatusCode: 199}))
	assert.True(t, ErrorStatus.Decide(&request.Record{StatusCode: 500}))
	assert.False(t, ErrorStatus.Decide(&request.Record{}), "no response yet is not a status failure")
}

func TestTransportErr(t *testing.T) {
	assert.True(t, TransportErr.Decide(&request.Record{Err: fault.Network(syscall.ECONNREFUSED)}))
	assert.True(t, TransportErr.Decide(&request.Record{Err: fault.Unknown(errors.New("doer exploded"))}))
	assert.False(t, TransportErr.Decide(&request.Record{Err: fault.UnexpectedResponse()}))
	assert.False(t, TransportErr.Decide(&request.Record{Err: errors.New("not classified")}))
	assert.False(t, TransportErr.Decide(&request.Record{StatusCode: 500}), "status failures are ErrorStatus's concern")
	assert.False(t, TransportErr.Decide(&request.Record{}))
}

func TestTransientErr(t *testing.T) {
	assert.True(t, TransientErr.Decide(&request.Record{Err: fault.Network(syscall.ECONNREFUSED)}))
	assert.False(t, TransientErr.Decide(&request.Record{Err: fault.Unknown(errors.New("weird"))}))
	assert.False(t, TransientErr.Decide(&request.Record{}))
}

func TestBefore(t *testing.T) {
	rec := &request.Record{Start: time.Now().Add(-2 * time.Second)}
	assert.True(t, Before(time.Minute).Decide(rec))
	assert.False(t, Before(time.Second).Decide(rec))
}

func TestAndOr(t *testing.T) {
	yes := DeciderFunc(func(*request.Record) bool { return true })
	no := DeciderFunc(func(*request.Record) bool { return false })

	assert.True(t, yes.And(yes).Decide(nil))
	assert.False(t, yes.And(no).Decide(nil))
	assert.True(t, no.Or(yes).Decide(nil))
	assert.False(t, no.Or(no).Decide(nil))

	// Short circuit: the second decider must not run.
	boom := DeciderFunc(func(*request.Record) bool { panic("must not be evaluated") })
	assert.False(t, no.And(boom).Decide(nil))
	assert.True(t, yes.Or(boom).Decide(nil))
}
