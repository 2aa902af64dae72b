// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/supersanta183/orev2-cli/counter"
	"github.com/supersanta183/orev2-cli/fault"
	"github.com/supersanta183/orev2-cli/solver"
)

// the coordinator walks these states once per round
type state int

// all possible states, in order
const (
	idle state = iota
	dispatching
	running
	collecting
	done
)

func (s state) String() string {
	switch s {
	case idle:
		return "idle"
	case dispatching:
		return "dispatching"
	case running:
		return "running"
	case collecting:
		return "collecting"
	case done:
		return "done"
	default:
		return "unknown"
	}
}

// minimum interval between live progress lines for the whole round
const progressInterval = time.Second

// Coordinator - runs search rounds one at a time
type Coordinator struct {
	sync.Mutex // one round at a time

	log    *logger.L
	solver solver.Solver
	state  state
}

// NewCoordinator - create a coordinator over a solver back end
func NewCoordinator(s solver.Solver) *Coordinator {
	return &Coordinator{
		log:    logger.New("mine"),
		solver: s,
		state:  idle,
	}
}

// result of one worker, folded during the collecting state
type workerResult struct {
	solution Solution
	found    bool
}

// RunRound - the blocking entry point of the search core
//
// spawns one worker per execution unit over disjoint nonce ranges,
// joins them, and folds the local bests into the round's Solution;
// fails with fault.ErrFloorUnmet when nothing reached the floor
func (c *Coordinator) RunRound(params RoundParameters) (Solution, error) {
	c.Lock()
	defer c.Unlock()

	c.enter(idle)

	workers := c.effectiveWorkers(params.Workers)

	c.enter(dispatching)

	// shared round instrumentation; neither is touched per nonce
	attempts := counter.Counter(0)
	progress := rate.NewLimiter(rate.Every(progressInterval), 1)

	// static disjoint ranges: worker i owns [i*size, (i+1)*size)
	rangeSize := math.MaxUint64 / uint64(workers)

	results := make([]workerResult, workers)
	var wg sync.WaitGroup

	start := time.Now()

	for i := uint(0); i < workers; i += 1 {

		w := &worker{
			number:      int(i),
			log:         c.log,
			solver:      c.solver,
			challenge:   params.Challenge,
			startNonce:  uint64(i) * rangeSize,
			endNonce:    uint64(i+1) * rangeSize,
			cutoff:      params.Cutoff,
			floor:       params.MinDifficulty,
			maxAttempts: params.MaxAttempts,
			attempts:    &attempts,
			progress:    progress,
		}
		if workers-1 == i {
			w.endNonce = math.MaxUint64
		}

		wg.Add(1)
		go func(n uint, w *worker) {
			defer wg.Done()

			// a crashed worker contributes no candidate, the round
			// still completes from the other workers' results
			defer func() {
				if r := recover(); nil != r {
					c.log.Errorf("worker: %d crashed: %v", n, r)
				}
			}()

			solution, found := w.run()
			results[n] = workerResult{solution: solution, found: found}
		}(i, w)
	}

	c.enter(running)
	wg.Wait()
	c.enter(collecting)

	// fold by a single scalar comparison; exact ties keep the first
	best := Solution{}
	found := false
	for _, r := range results {
		if r.found && (!found || r.solution.Difficulty > best.Difficulty) {
			best = r.solution
			found = true
		}
	}

	c.enter(done)

	elapsed := time.Since(start)
	if elapsed > 0 {
		c.log.Infof("round: attempts: %d  rate: %.0f/s  elapsed: %s", attempts.Uint64(), float64(attempts.Uint64())/elapsed.Seconds(), elapsed)
	}

	if !found || best.Difficulty < params.MinDifficulty {
		return Solution{}, fault.ErrFloorUnmet
	}

	c.log.Infof("round: best: %s", best)
	return best, nil
}

// log each state transition
func (c *Coordinator) enter(next state) {
	c.log.Debugf("state: %s to %s", c.state, next)
	c.state = next
}

// clamp the requested worker count to the hardware
//
// exceeding true parallelism is a warning, never an error; zero
// means use everything
func (c *Coordinator) effectiveWorkers(requested uint) uint {

	available := uint(runtime.NumCPU())
	switch {
	case 0 == requested:
		return available
	case requested > available:
		c.log.Warnf("requested workers: %d exceeds available parallelism: %d", requested, available)
		return available
	default:
		return requested
	}
}
