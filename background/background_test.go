// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/supersanta183/orev2-cli/background"
)

type countingProcess struct {
	started uint64
	stopped uint64
}

func (p *countingProcess) Run(args interface{}, shutdown <-chan struct{}) {

	atomic.AddUint64(&p.started, 1)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(time.Millisecond):
		}
	}

	atomic.AddUint64(&p.stopped, 1)
}

// test that all processes start and that Stop waits for each one
func TestStartStop(t *testing.T) {

	p1 := &countingProcess{}
	p2 := &countingProcess{}
	p3 := &countingProcess{}

	processes := background.Processes{p1, p2, p3}

	handle := background.Start(processes, nil)
	time.Sleep(20 * time.Millisecond)
	handle.Stop()

	for i, p := range []*countingProcess{p1, p2, p3} {
		if 1 != atomic.LoadUint64(&p.started) {
			t.Errorf("%d: process did not start", i)
		}
		if 1 != atomic.LoadUint64(&p.stopped) {
			t.Errorf("%d: process did not stop", i)
		}
	}
}

// stopping a nil handle must be harmless
func TestStopNil(t *testing.T) {
	var handle *background.T
	handle.Stop()
}
