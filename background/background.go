// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

// Process - interface for a background process
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for the stop function
type T struct {
	count    int
	finished chan struct{}
	shutdown chan struct{}
}

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		count:    len(processes),
		finished: make(chan struct{}),
		shutdown: make(chan struct{}),
	}

	// start each background
	for _, p := range processes {
		proc := p
		go func() {
			// pass the shutdown channel to the Run loop for termination signalling
			proc.Run(args, register.shutdown)
			// flag for the stop routine to wait for shutdown
			register.finished <- struct{}{}
		}()
	}
	return register
}

// Stop - stop a set of background processes and wait for them to finish
func (t *T) Stop() {

	if nil == t {
		return
	}

	// shutdown all background tasks
	close(t.shutdown)

	// wait for finished
	for i := 0; i < t.count; i += 1 {
		<-t.finished
	}
}
