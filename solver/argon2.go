// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package solver

import (
	"github.com/bitmark-inc/go-argon2"

	"github.com/supersanta183/orev2-cli/digest"
)

// internal hashing parameters
//
// the memory cost is deliberately small: the arena is touched once
// per nonce attempt inside the hot loop
const (
	solverMode        = argon2.ModeArgon2d
	solverMemory      = 1 << 6 // 64 KiB
	solverParallelism = 1
	solverIterations  = 1
	solverVersion     = argon2.Version13
)

// Memory - per-worker scratch arena
//
// allocated once by each worker and reused across every nonce
// attempt; not safe for concurrent use
type Memory struct {
	context argon2.Context
}

// NewMemory - create the scratch arena for one worker
func NewMemory() *Memory {
	return &Memory{
		context: argon2.Context{
			Iterations:  solverIterations,
			Memory:      solverMemory,
			Parallelism: solverParallelism,
			HashLen:     digest.Length,
			Mode:        solverMode,
			Version:     solverVersion,
		},
	}
}

// Argon2Solver - the default memory-hard solver
//
// one candidate digest per seed, always; other solver back ends may
// legitimately return none for some seeds
type Argon2Solver struct{}

// New - create the default solver
func New() Solver {
	return Argon2Solver{}
}

// Solve - derive the candidate digest for a seed
func (s Argon2Solver) Solve(memory *Memory, seed [digest.SeedLength]byte) []digest.Digest {

	hash, err := argon2.Hash(&memory.context, seed[:], seed[:])
	if nil != err {
		return nil
	}

	var d digest.Digest
	copy(d[:], hash)
	return []digest.Digest{d}
}
