// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/fault"
)

// SystemProgram - owner of plain balance holding units
var SystemProgram = address.Address{}

// packed record: lamports(8) ++ owner(32) ++ data
const unitHeaderSize = 8 + address.Length

// Unit - a single storage unit
type Unit struct {
	Address  address.Address
	Lamports uint64
	Owner    address.Address
	Data     []byte
}

// Capacity - fixed data size of the unit
func (u *Unit) Capacity() int {
	return len(u.Data)
}

// IsZeroed - true if every data byte is zero
func (u *Unit) IsZeroed() bool {
	for _, b := range u.Data {
		if 0 != b {
			return false
		}
	}
	return true
}

// IsOwnedBy - ownership check
func (u *Unit) IsOwnedBy(program address.Address) bool {
	return u.Owner == program
}

func (u *Unit) pack() []byte {
	record := make([]byte, unitHeaderSize+len(u.Data))
	binary.BigEndian.PutUint64(record[:8], u.Lamports)
	copy(record[8:unitHeaderSize], u.Owner[:])
	copy(record[unitHeaderSize:], u.Data)
	return record
}

func unpack(a address.Address, record []byte) (*Unit, error) {
	if len(record) < unitHeaderSize {
		return nil, fault.ErrTruncatedRecord
	}
	u := &Unit{
		Address:  a,
		Lamports: binary.BigEndian.Uint64(record[:8]),
		Data:     make([]byte, len(record)-unitHeaderSize),
	}
	copy(u.Owner[:], record[8:unitHeaderSize])
	copy(u.Data, record[unitHeaderSize:])
	return u, nil
}
