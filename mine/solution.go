// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine

import (
	"fmt"

	"github.com/supersanta183/orev2-cli/digest"
)

// Solution - the winning result of one search round
//
// immutable once returned; the transaction layer consumes it exactly
// once together with the fee decision
type Solution struct {
	Challenge  digest.Challenge
	Nonce      uint64
	Digest     digest.Digest
	Hash       digest.Hash
	Difficulty uint32
}

// String - single line form for logging
func (solution Solution) String() string {
	return fmt.Sprintf("nonce: %d  hash: %s  difficulty: %d", solution.Nonce, solution.Hash, solution.Difficulty)
}
