// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package solver_test

import (
	"testing"

	"github.com/supersanta183/orev2-cli/digest"
	"github.com/supersanta183/orev2-cli/solver"
)

// a solver must be deterministic per seed, even across arenas
func TestArgon2SolverDeterministic(t *testing.T) {

	s := solver.New()
	m1 := solver.NewMemory()
	m2 := solver.NewMemory()

	var challenge digest.Challenge
	challenge[0] = 0x55

	seed := digest.Seed(challenge, 12345)

	first := s.Solve(m1, seed)
	second := s.Solve(m2, seed)

	if 0 == len(first) || 0 == len(second) {
		t.Fatal("solver produced no candidate")
	}
	if first[0] != second[0] {
		t.Errorf("non-deterministic solve: %s vs %s", first[0], second[0])
	}
}

// different seeds must not collapse to one digest
func TestArgon2SolverSeedSensitive(t *testing.T) {

	s := solver.New()
	memory := solver.NewMemory()

	var challenge digest.Challenge

	a := s.Solve(memory, digest.Seed(challenge, 1))
	b := s.Solve(memory, digest.Seed(challenge, 2))

	if 0 == len(a) || 0 == len(b) {
		t.Fatal("solver produced no candidate")
	}
	if a[0] == b[0] {
		t.Errorf("distinct seeds produced identical digest: %s", a[0])
	}
}

// the arena must survive reuse across many attempts
func TestMemoryReuse(t *testing.T) {

	s := solver.New()
	memory := solver.NewMemory()

	var challenge digest.Challenge
	challenge[31] = 0xaa

	reference := s.Solve(memory, digest.Seed(challenge, 7))
	for nonce := uint64(0); nonce < 50; nonce += 1 {
		s.Solve(memory, digest.Seed(challenge, nonce))
	}
	again := s.Solve(memory, digest.Seed(challenge, 7))

	if reference[0] != again[0] {
		t.Errorf("arena reuse changed result: %s vs %s", reference[0], again[0])
	}
}
