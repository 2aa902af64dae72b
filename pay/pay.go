// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pay - fee tier and submission policy
//
// pure decisions over the winning difficulty; the transaction layer
// consumes the Decision when assembling the actual submission
package pay

import (
	"math/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"
)

// compute budget values for one submission
const (
	BaseComputeBudget  = 500_000 // every submission
	ResetComputeBudget = 100_000 // surcharge when a reset action is appended
)

// epoch reset policy
const (
	EpochSeconds = 60  // on-chain epoch duration
	resetBuffer  = 5   // seconds of slack before the epoch boundary
	resetChance  = 100 // reset is a uniform 1-in-resetChance draw
)

// Tier - discrete priority fee tier
type Tier int

// fee tiers ordered by the difficulty that earns them
const (
	Low Tier = iota
	Medium
	High
	Ultra
)

// String - tier name for logging
func (tier Tier) String() string {
	switch tier {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	case Ultra:
		return "ultra"
	default:
		return "unknown"
	}
}

// FeeTier - map a winning difficulty to its fee tier
//
// boundaries are exact: 16 is still low, 17 is medium, 20 is high,
// 24 is ultra
func FeeTier(difficulty uint32) Tier {
	switch {
	case difficulty < 17:
		return Low
	case difficulty < 20:
		return Medium
	case difficulty < 24:
		return High
	default:
		return Ultra
	}
}

// FeeSchedule - priority fee per tier in micro-units
type FeeSchedule struct {
	Low    uint64 `gluamapper:"low" json:"low"`
	Medium uint64 `gluamapper:"medium" json:"medium"`
	High   uint64 `gluamapper:"high" json:"high"`
	Ultra  uint64 `gluamapper:"ultra" json:"ultra"`
}

// DefaultFeeSchedule - used when the configuration file does not override
var DefaultFeeSchedule = FeeSchedule{
	Low:    1_000,
	Medium: 10_000,
	High:   50_000,
	Ultra:  100_000,
}

// Fee - the priority fee for a tier
func (schedule FeeSchedule) Fee(tier Tier) uint64 {
	switch tier {
	case Low:
		return schedule.Low
	case Medium:
		return schedule.Medium
	case High:
		return schedule.High
	default:
		return schedule.Ultra
	}
}

// ResetEligible - true when the on-chain epoch has elapsed
//
// a small buffer is subtracted so a reset sent just before the
// boundary still lands inside the new epoch
func ResetEligible(lastResetAt int64, now int64) bool {
	return lastResetAt+EpochSeconds-resetBuffer <= now
}

// BusCount - number of addressable reward buses
const BusCount = 8

// BusTarget - one of the addressable resources that can receive a submission
type BusTarget [32]byte

// String - display a bus target as base58 like any other chain address
func (bus BusTarget) String() string {
	return base58.Encode(bus[:])
}

// the fixed bus table, derived deterministically at start up
// real deployments key these to the on-chain program accounts
var busTargets [BusCount]BusTarget

func init() {
	for i := 0; i < BusCount; i += 1 {
		h := sha3.NewLegacyKeccak256()
		h.Write([]byte{'b', 'u', 's', byte(i)})
		copy(busTargets[i][:], h.Sum(nil))
	}
}

// FindBus - pick a bus uniformly at random to spread load
//
// TODO: pick a better strategy (avoid draining an already exhausted bus)
func FindBus(rng *rand.Rand) BusTarget {
	return busTargets[rng.Intn(BusCount)]
}

// Decision - everything the transaction layer needs from this policy
type Decision struct {
	Tier          Tier
	PriorityFee   uint64
	ComputeBudget uint64
	AttemptReset  bool
	Bus           BusTarget
}

// Decide - turn a winning difficulty into a submission decision
//
// the reset draw is independent of the difficulty and only taken
// when the external eligibility condition already holds
func Decide(difficulty uint32, resetEligible bool, rng *rand.Rand, schedule FeeSchedule) Decision {

	tier := FeeTier(difficulty)

	decision := Decision{
		Tier:          tier,
		PriorityFee:   schedule.Fee(tier),
		ComputeBudget: BaseComputeBudget,
		Bus:           FindBus(rng),
	}

	if resetEligible && 0 == rng.Intn(resetChance) {
		decision.AttemptReset = true
		decision.ComputeBudget += ResetComputeBudget
	}

	return decision
}

// Multiplier - stake multiplier for display
func Multiplier(balance uint64, topBalance uint64) float64 {
	if 0 == topBalance {
		return 1.0
	}
	m := float64(balance) / float64(topBalance)
	if m > 1.0 {
		m = 1.0
	}
	return 1.0 + m
}
