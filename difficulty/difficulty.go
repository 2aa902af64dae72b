// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package difficulty - the scalar quality score of a scoring hash
//
// the rule here must match the external verifier exactly since every
// submitted solution is independently re-scored on verification;
// callers only ever compare scores, never interpret them
package difficulty

import (
	"math/bits"

	"github.com/supersanta183/orev2-cli/digest"
)

// Score - count of leading zero bits of a scoring hash
//
// deterministic and monotonic: a numerically smaller hash never
// scores higher than a larger one with more leading zeros
func Score(hash digest.Hash) uint32 {

	score := uint32(0)
	for _, b := range hash {
		if 0 == b {
			score += 8
			continue
		}
		score += uint32(bits.LeadingZeros8(b))
		break
	}
	return score
}
