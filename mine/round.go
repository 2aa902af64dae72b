// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"time"

	"github.com/supersanta183/orev2-cli/digest"
)

// seconds the chain allows between accepted solutions
const roundSeconds = 60

// RoundParameters - the inputs captured once at round start
//
// no further input is read while the round runs, which keeps the
// CPU-bound core isolated from the network-bound collaborators
type RoundParameters struct {
	Challenge     digest.Challenge
	MinDifficulty uint32        // the hard floor a solution must meet
	Cutoff        time.Duration // the soft deadline for the search
	Workers       uint          // 0 means one per available core
	MaxAttempts   uint64        // per-worker bound, 0 is unbounded; test harness guard
}

// RoundState - the on-chain snapshot round parameters derive from
//
// fetched by an external collaborator; this core never performs the
// network calls itself
type RoundState struct {
	Challenge     digest.Challenge
	MinDifficulty uint32
	Balance       uint64
	TopBalance    uint64
	LastHashAt    int64
	LastResetAt   int64
	CurrentTime   int64
}

// Cutoff - wall-clock budget remaining for a round
//
// the chain admits one solution per roundSeconds window; the buffer
// leaves room to build and land the submission before the window
// closes
func Cutoff(lastHashAt int64, now int64, buffer time.Duration) time.Duration {

	remaining := lastHashAt + roundSeconds - int64(buffer/time.Second) - now
	if remaining < 0 {
		remaining = 0
	}
	return time.Duration(remaining) * time.Second
}
