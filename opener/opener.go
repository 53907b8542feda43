// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package opener - create program owned units at derived addresses
package opener

import (
	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/rent"
)

// Descriptor - what the opener needs to know about a logical type
type Descriptor interface {
	Seed() []byte
	Size() int
}

type descriptor struct {
	seed []byte
	size int
}

// NewDescriptor - a descriptor with a fixed seed and size
func NewDescriptor(seed string, size int) Descriptor {
	return &descriptor{
		seed: []byte(seed),
		size: size,
	}
}

func (d *descriptor) Seed() []byte { return d.seed }
func (d *descriptor) Size() int    { return d.size }

// Find - derived address of a descriptor's unit
func Find(program address.Address, d Descriptor, offsets ...uint64) (address.Address, uint8, error) {
	return address.Find(program, d.Seed(), offsets...)
}

// Open - create the unit for d at target
//
// target must equal the derivation from d's seed and the offsets and no
// unit may exist there yet.  The new unit is owned by program, zero
// filled, d.Size() bytes long and funded by payer with the rent exempt
// minimum.  Returns the bump of the derivation.
func Open(inv *ledger.Invocation, program address.Address, payer address.Address, target address.Address, d Descriptor, offsets ...uint64) (uint8, error) {
	bump, err := address.Verify(program, target, d.Seed(), offsets...)
	if nil != err {
		return 0, err
	}

	if inv.Exists(target) {
		return 0, fault.ErrAlreadyExists
	}

	size := d.Size()
	_, err = inv.Create(payer, target, size, program, rent.Current().MinimumBalance(size))
	if nil != err {
		return 0, err
	}

	inv.Log().Infof("opened: %q  offsets: %v  address: %s  bump: %d  size: %d", d.Seed(), offsets, target, bump, size)
	return bump, nil
}

// OpenWithoutOffset - open a single instance unit
func OpenWithoutOffset(inv *ledger.Invocation, program address.Address, payer address.Address, target address.Address, d Descriptor) (uint8, error) {
	return Open(inv, program, payer, target, d)
}

// OpenWithOffset - open one instance of a multi instance unit
func OpenWithOffset(inv *ledger.Invocation, program address.Address, payer address.Address, target address.Address, d Descriptor, offset uint64) (uint8, error) {
	return Open(inv, program, payer, target, d, offset)
}
