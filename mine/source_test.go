// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/supersanta183/orev2-cli/mine"
)

// source stub counting upstream fetches
type countingSource struct {
	fetches int
	state   mine.RoundState
}

func (s *countingSource) FetchRoundState() (mine.RoundState, error) {
	s.fetches += 1
	return s.state, nil
}

// a fresh cache entry must absorb repeated fetches
func TestCachedSource(t *testing.T) {

	upstream := &countingSource{
		state: mine.RoundState{MinDifficulty: 9},
	}
	source := mine.NewCachedSource(upstream, 200*time.Millisecond)

	for i := 0; i < 5; i += 1 {
		state, err := source.FetchRoundState()
		assert.NoError(t, err)
		assert.Equal(t, uint32(9), state.MinDifficulty)
	}
	assert.Equal(t, 1, upstream.fetches)

	time.Sleep(300 * time.Millisecond)

	_, err := source.FetchRoundState()
	assert.NoError(t, err)
	assert.Equal(t, 2, upstream.fetches)
}

// the local bench source produces a fresh challenge each round
func TestLocalSource(t *testing.T) {

	source := mine.NewLocalSource(3)

	first, err := source.FetchRoundState()
	assert.NoError(t, err)
	second, err := source.FetchRoundState()
	assert.NoError(t, err)

	assert.Equal(t, uint32(3), first.MinDifficulty)
	assert.NotEqual(t, first.Challenge, second.Challenge)
	assert.NotZero(t, first.CurrentTime)
}
