// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package difficulty_test

import (
	"testing"

	"github.com/supersanta183/orev2-cli/difficulty"
	"github.com/supersanta183/orev2-cli/digest"
)

// test known leading zero bit counts
func TestScore(t *testing.T) {

	items := []struct {
		first    []byte
		expected uint32
	}{
		{[]byte{0x80}, 0},
		{[]byte{0xff}, 0},
		{[]byte{0x40}, 1},
		{[]byte{0x20}, 2},
		{[]byte{0x01}, 7},
		{[]byte{0x00, 0xff}, 8},
		{[]byte{0x00, 0x80}, 8},
		{[]byte{0x00, 0x10}, 11},
		{[]byte{0x00, 0x00, 0x01}, 23},
		{[]byte{0x00, 0x00, 0x00, 0x80}, 24},
	}

	for i, item := range items {
		var hash digest.Hash
		copy(hash[:], item.first)
		// pad the remainder with ones so only the prefix counts
		for j := len(item.first); j < digest.HashLength; j += 1 {
			hash[j] = 0xff
		}

		actual := difficulty.Score(hash)
		if item.expected != actual {
			t.Errorf("%d: score(% x…): actual: %d  expected: %d", i, item.first, actual, item.expected)
		}
	}
}

// the all-zero hash scores every bit
func TestScoreAllZero(t *testing.T) {

	var hash digest.Hash

	expected := uint32(8 * digest.HashLength)
	actual := difficulty.Score(hash)
	if expected != actual {
		t.Errorf("score: actual: %d  expected: %d", actual, expected)
	}
}
