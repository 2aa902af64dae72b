// SPDX-License-Identifier: ISC
// Copyright (c) 2024 supersanta183
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/binary"
	"encoding/hex"
	"sort"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/supersanta183/orev2-cli/fault"
)

// sizes of the fixed length byte arrays
const (
	Length          = 16                            // bytes in a solver digest
	ChallengeLength = 32                            // bytes in a round challenge
	NonceLength     = 8                             // bytes in a little-endian nonce
	SeedLength      = ChallengeLength + NonceLength // bytes in a solver seed
	HashLength      = 32                            // bytes in a scoring hash
)

// Challenge - the opaque per-round puzzle input
// immutable for the duration of one search round
type Challenge [ChallengeLength]byte

// Digest - raw solver output for one (challenge, nonce) seed
// the byte order is solver-internal, canonicalise before hashing
type Digest [Length]byte

// Hash - the scoring hash used to compute difficulty
// the external verifier recomputes this value bit for bit
type Hash [HashLength]byte

// Seed - concatenate a challenge and a little-endian nonce
// this is the exact buffer handed to the solver
func Seed(challenge Challenge, nonce uint64) [SeedLength]byte {
	var seed [SeedLength]byte
	copy(seed[:ChallengeLength], challenge[:])
	binary.LittleEndian.PutUint64(seed[ChallengeLength:], nonce)
	return seed
}

// Canonical - rewrite the digest as its canonical form
//
// the digest is treated as eight little-endian uint16 values sorted
// ascending; any two digests holding the same multiset of values
// canonicalise identically, which removes ordering malleability
// before the scoring hash is taken
func (digest Digest) Canonical() Digest {

	values := make([]uint16, Length/2)
	for i := 0; i < len(values); i += 1 {
		values[i] = binary.LittleEndian.Uint16(digest[2*i:])
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i] < values[j]
	})

	var canonical Digest
	for i, v := range values {
		binary.LittleEndian.PutUint16(canonical[2*i:], v)
	}
	return canonical
}

// ScoringHash - Keccak-256 over the canonical digest and the nonce
//
// this must reproduce the verifier's hash exactly, any deviation
// invalidates every solution found
func ScoringHash(digest Digest, nonce uint64) Hash {

	var nonceBytes [NonceLength]byte
	binary.LittleEndian.PutUint64(nonceBytes[:], nonce)

	canonical := digest.Canonical()

	h := sha3.NewLegacyKeccak256()
	h.Write(canonical[:])
	h.Write(nonceBytes[:])

	var hash Hash
	copy(hash[:], h.Sum(nil))
	return hash
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<digest:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(Length)
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.ErrDigestLength
	}
	byteCount, err := hex.Decode(digest[:], s)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.ErrDigestLength
	}
	return nil
}

// String - display a scoring hash the way the submission tools do, as base58
func (hash Hash) String() string {
	return base58.Encode(hash[:])
}

// GoString - convert a binary hash to its base58 form for use by the fmt package (for %#v)
func (hash Hash) GoString() string {
	return "<hash:" + base58.Encode(hash[:]) + ">"
}

// String - challenges are displayed as base58 like any other 32 byte chain value
func (challenge Challenge) String() string {
	return base58.Encode(challenge[:])
}

// ChallengeFromBytes - copy an externally fetched byte slice into a challenge
func ChallengeFromBytes(buffer []byte) (Challenge, error) {
	var challenge Challenge
	if ChallengeLength != len(buffer) {
		return challenge, fault.ErrChallengeLength
	}
	copy(challenge[:], buffer)
	return challenge, nil
}
