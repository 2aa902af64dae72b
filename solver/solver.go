// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package solver - the opaque combinatorial puzzle behind the search
//
// a solver maps a 40 byte seed to zero or more candidate digests; an
// empty result means "no solution for this nonce" and the caller just
// advances to the next nonce
//
// the solver must be deterministic for a given seed, including the
// order of its candidates, so that found solutions are reproducible
package solver

import (
	"github.com/supersanta183/orev2-cli/digest"
)

// Solver - produce the candidate digests for one seed
//
// implementations receive the per-worker memory arena so the hot
// loop never allocates
type Solver interface {
	Solve(memory *Memory, seed [digest.SeedLength]byte) []digest.Digest
}
