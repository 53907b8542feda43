// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/binary"

	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/shardstore/fault"
)

// limits on derivation input
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

// appended after the program so derived addresses cannot collide with
// any other use of the hash
var derivedMarker = []byte("ProgramDerivedAddress")

// IsOnCurve - true if the bytes decode to an ed25519 point
//
// such an address could have a private key, so it is never used for a
// program owned unit
func IsOnCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}

// FromLabel - fixed address from a text label, e.g. a program identity
func FromLabel(label string) Address {
	return sha3.Sum256([]byte(label))
}

// Seeds - seed followed by each offset as little endian uint64
func Seeds(seed []byte, offsets ...uint64) [][]byte {
	seeds := make([][]byte, 0, len(offsets)+1)
	seeds = append(seeds, seed)
	for _, offset := range offsets {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint64(b, offset)
		seeds = append(seeds, b)
	}
	return seeds
}

// Create - hash seeds and program into an address
//
// fails if the result is a valid curve point
func Create(program Address, seeds ...[]byte) (Address, error) {
	if len(seeds) > MaxSeeds {
		return Address{}, fault.ErrTooManySeeds
	}

	h := sha3.New256()
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return Address{}, fault.ErrSeedTooLong
		}
		h.Write(s)
	}
	h.Write(program[:])
	h.Write(derivedMarker)

	a := Address{}
	copy(a[:], h.Sum(nil))

	if IsOnCurve(a[:]) {
		return Address{}, fault.ErrOnCurve
	}
	return a, nil
}

// WithBump - recreate an address from a previously found bump
func WithBump(program Address, bump uint8, seed []byte, offsets ...uint64) (Address, error) {
	seeds := append(Seeds(seed, offsets...), []byte{bump})
	return Create(program, seeds...)
}

// Find - derive the address for a seed and offsets
//
// the bump is the smallest value giving an off curve address
func Find(program Address, seed []byte, offsets ...uint64) (Address, uint8, error) {
	seeds := Seeds(seed, offsets...)
	if len(seeds)+1 > MaxSeeds {
		return Address{}, 0, fault.ErrTooManySeeds
	}

	bump := []byte{0}
	seeds = append(seeds, bump)
	for b := 0; b <= 255; b += 1 {
		bump[0] = byte(b)
		a, err := Create(program, seeds...)
		if nil == err {
			return a, byte(b), nil
		}
		if fault.ErrOnCurve != err {
			return Address{}, 0, err
		}
	}
	return Address{}, 0, fault.ErrNoViableBump
}

// Verify - recompute the derivation and compare with a caller supplied address
func Verify(program Address, target Address, seed []byte, offsets ...uint64) (uint8, error) {
	expected, bump, err := Find(program, seed, offsets...)
	if nil != err {
		return 0, err
	}
	if expected != target {
		return 0, fault.ErrAddressMismatch
	}
	return bump, nil
}
