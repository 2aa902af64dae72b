// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/supersanta183/orev2-cli/counter"
	"github.com/supersanta183/orev2-cli/difficulty"
	"github.com/supersanta183/orev2-cli/digest"
	"github.com/supersanta183/orev2-cli/solver"
)

// nonces between termination checks
//
// sampling keeps the per-nonce overhead bounded: the deadline is
// only ever missed by at most this many attempts
const terminationSampleInterval = 100

// a search worker owns one disjoint slice of the nonce space
//
// the only values it shares with the rest of the round are the
// attempt counter (flushed at sample points) and the progress rate
// limiter; its best result stays local until the coordinator joins
type worker struct {
	number      int
	log         *logger.L
	solver      solver.Solver
	challenge   digest.Challenge
	startNonce  uint64
	endNonce    uint64 // exclusive
	cutoff      time.Duration
	floor       uint32
	maxAttempts uint64
	attempts    *counter.Counter
	progress    *rate.Limiter
}

// run - search this worker's nonce slice for the best scoring hash
//
// returns the local best and whether any candidate was found at all;
// a digest-less nonce is simply skipped, never an error
func (w *worker) run() (Solution, bool) {

	// scratch arena allocated once, reused for every attempt
	memory := solver.NewMemory()

	start := time.Now()

	best := Solution{Challenge: w.challenge}
	found := false
	pending := uint64(0)

	nonce := w.startNonce

loop:
	for attempt := uint64(0); ; attempt += 1 {

		if 0 != w.maxAttempts && attempt >= w.maxAttempts {
			break loop
		}
		if nonce >= w.endNonce {
			break loop // slice exhausted
		}

		seed := digest.Seed(w.challenge, nonce)
		pending += 1

		// the solver's candidate order is deterministic, take the first
		if candidates := w.solver.Solve(memory, seed); 0 != len(candidates) {
			hash := digest.ScoringHash(candidates[0], nonce)
			score := difficulty.Score(hash)
			if !found || score > best.Difficulty {
				best.Nonce = nonce
				best.Digest = candidates[0]
				best.Hash = hash
				best.Difficulty = score
				found = true
			}
		}

		if 0 == nonce%terminationSampleInterval {
			w.attempts.Add(pending)
			pending = 0

			elapsed := time.Since(start)
			if elapsed >= w.cutoff {
				// the cutoff is soft but the floor is hard: keep
				// searching past the deadline until the floor is met
				if found && best.Difficulty >= w.floor {
					break loop
				}
			} else if w.progress.Allow() {
				w.log.Infof("worker: %d  mining… %.0fs remaining", w.number, (w.cutoff - elapsed).Seconds())
			}
		}

		nonce += 1
	}

	w.attempts.Add(pending)
	return best, found
}
