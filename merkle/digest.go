// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/shardstore/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - SHA3-256 of a node
//
// to convert to bytes just use d[:]
type Digest [DigestLength]byte

// NewDigest - digest of a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// Pair - parent of two sibling nodes
func Pair(left Digest, right Digest) Digest {
	buffer := make([]byte, 2*DigestLength)
	copy(buffer, left[:])
	copy(buffer[DigestLength:], right[:])
	return sha3.Sum256(buffer)
}

// String - hex for the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - hex for the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(digest[:]) + ">"
}

// MarshalText - digest as hex text
func (digest Digest) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(DigestLength))
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if hex.EncodedLen(DigestLength) != len(s) {
		return fault.ErrInvalidDigest
	}
	_, err := hex.Decode(digest[:], s)
	if nil != err {
		return fault.ErrInvalidDigest
	}
	return nil
}

// DigestFromBytes - validate and copy a byte slice into a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrInvalidDigest
	}
	copy(digest[:], buffer)
	return nil
}

// DigestCodec - digests as elements of a sharded array
type DigestCodec struct{}

func (DigestCodec) Width() int { return DigestLength }

func (DigestCodec) Encode(value Digest, buffer []byte) {
	copy(buffer, value[:])
}

func (DigestCodec) Decode(buffer []byte) Digest {
	var d Digest
	copy(d[:], buffer)
	return d
}
