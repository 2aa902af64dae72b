// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"crypto/rand"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/supersanta183/orev2-cli/digest"
)

// ParameterSource - external collaborator that fetches the on-chain
// round state
//
// implementations perform whatever RPC is needed; the search core
// only ever sees the returned snapshot
type ParameterSource interface {
	FetchRoundState() (RoundState, error)
}

// cache key for the single round state entry
const roundStateKey = "round-state"

// CachedSource - short-TTL cache in front of a parameter source
//
// the mining loop reads the state more than once around a round;
// caching stops those reads from turning into repeated upstream calls
type CachedSource struct {
	upstream ParameterSource
	cache    *gocache.Cache
}

// NewCachedSource - wrap a source with a time-to-live
func NewCachedSource(upstream ParameterSource, ttl time.Duration) *CachedSource {
	return &CachedSource{
		upstream: upstream,
		cache:    gocache.New(ttl, 10*ttl),
	}
}

// FetchRoundState - return the cached snapshot while it is fresh
func (s *CachedSource) FetchRoundState() (RoundState, error) {

	if cached, ok := s.cache.Get(roundStateKey); ok {
		return cached.(RoundState), nil
	}

	state, err := s.upstream.FetchRoundState()
	if nil != err {
		return RoundState{}, err
	}

	s.cache.Set(roundStateKey, state, gocache.DefaultExpiration)
	return state, nil
}

// LocalSource - self-generated round state for bench and local runs
//
// produces a fresh random challenge each round with the window
// opening immediately; nothing is fetched from any chain
type LocalSource struct {
	minDifficulty uint32
}

// NewLocalSource - create a local bench source with a fixed floor
func NewLocalSource(minDifficulty uint32) *LocalSource {
	return &LocalSource{minDifficulty: minDifficulty}
}

// FetchRoundState - generate one local round
func (s *LocalSource) FetchRoundState() (RoundState, error) {

	var challenge digest.Challenge
	_, err := rand.Read(challenge[:])
	if nil != err {
		return RoundState{}, err
	}

	now := time.Now().Unix()
	return RoundState{
		Challenge:     challenge,
		MinDifficulty: s.minDifficulty,
		Balance:       0,
		TopBalance:    1,
		LastHashAt:    now,
		LastResetAt:   now,
		CurrentTime:   now,
	}, nil
}
