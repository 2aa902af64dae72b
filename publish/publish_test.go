// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/supersanta183/orev2-cli/digest"
	"github.com/supersanta183/orev2-cli/mine"
	"github.com/supersanta183/orev2-cli/pay"
	"github.com/supersanta183/orev2-cli/publish"
)

// the wire item carries every field the transaction layer needs
func TestNewItem(t *testing.T) {

	solution := mine.Solution{
		Nonce:      42,
		Digest:     digest.Digest{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
		Difficulty: 21,
	}
	solution.Challenge[0] = 0xab
	solution.Hash[0] = 0xcd

	decision := pay.Decision{
		Tier:          pay.High,
		PriorityFee:   50_000,
		ComputeBudget: 600_000,
		AttemptReset:  true,
	}

	item := publish.NewItem(solution, decision)

	assert.Equal(t, uint64(42), item.Nonce)
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", item.Digest)
	assert.Equal(t, solution.Hash.String(), item.Hash)
	assert.Equal(t, solution.Challenge.String(), item.Challenge)
	assert.Equal(t, uint32(21), item.Difficulty)
	assert.Equal(t, "high", item.Tier)
	assert.Equal(t, uint64(50_000), item.PriorityFee)
	assert.Equal(t, uint64(600_000), item.ComputeBudget)
	assert.True(t, item.AttemptReset)

	// and it survives the json encoding used on the wire
	data, err := json.Marshal(item)
	assert.NoError(t, err)

	var back publish.Item
	assert.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, item, back)
}
