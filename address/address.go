// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"bytes"

	"github.com/mr-tron/base58"

	"github.com/bitmark-inc/shardstore/fault"
)

// Length - number of bytes in an address
const Length = 32

// Address - a 32 byte unit or program address
//
// represented as base58 text for print and JSON
type Address [Length]byte

// FromBytes - create an address from exactly Length bytes
func FromBytes(b []byte) (Address, error) {
	a := Address{}
	if Length != len(b) {
		return a, fault.ErrInvalidAddress
	}
	copy(a[:], b)
	return a, nil
}

// FromBase58 - decode the text form of an address
func FromBase58(s string) (Address, error) {
	b, err := base58.Decode(s)
	if nil != err {
		return Address{}, fault.ErrInvalidAddress
	}
	return FromBytes(b)
}

// Bytes - copy of the address bytes
func (a Address) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, a[:])
	return b
}

// IsZero - true for the all-zero address
func (a Address) IsZero() bool {
	return a == Address{}
}

// Compare - byte order comparison
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// String - base58 for the fmt package (%s)
func (a Address) String() string {
	return base58.Encode(a[:])
}

// GoString - for the fmt package (%#v)
func (a Address) GoString() string {
	return "<address:" + base58.Encode(a[:]) + ">"
}

// MarshalText - base58 for JSON
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - base58 from JSON
func (a *Address) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}
