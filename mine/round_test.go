// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mine_test

import (
	"testing"
	"time"

	"github.com/supersanta183/orev2-cli/mine"
)

// cutoff is the window remaining after buffer, clamped at zero
func TestCutoff(t *testing.T) {

	now := int64(1_700_000_000)

	items := []struct {
		lastHashAt int64
		now        int64
		buffer     time.Duration
		expected   time.Duration
	}{
		{now, now, 0, 60 * time.Second},
		{now, now, 5 * time.Second, 55 * time.Second},
		{now - 30, now, 5 * time.Second, 25 * time.Second},
		{now - 60, now, 0, 0},
		{now - 300, now, 5 * time.Second, 0},
		{now, now - 10, 0, 70 * time.Second},
	}

	for i, item := range items {
		actual := mine.Cutoff(item.lastHashAt, item.now, item.buffer)
		if item.expected != actual {
			t.Errorf("%d: cutoff: actual: %s  expected: %s", i, actual, item.expected)
		}
	}
}
