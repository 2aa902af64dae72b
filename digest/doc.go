// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - the scoring digest construction
//
// binds a round challenge and a candidate nonce into a canonical,
// order-independent scoring hash
//
// the solver output is not itself ordered, so the digest bytes are
// first rewritten into a canonical form; without this an adversary
// could present several nonce-equivalent encodings of one semantic
// solution
package digest
