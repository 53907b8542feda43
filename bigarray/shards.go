// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigarray

import (
	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/opener"
)

// Descriptor - a logical array type whose shards are program opened
type Descriptor interface {
	Seed() []byte
	Layout() Layout
}

// a single shard as seen by the opener
type shard struct {
	seed []byte
	size int
}

func (s *shard) Seed() []byte { return s.seed }
func (s *shard) Size() int    { return s.size }

// shard k extends the parent offsets with k
func shardOffsets(offsets []uint64, k int) []uint64 {
	result := make([]uint64, len(offsets), len(offsets)+1)
	copy(result, offsets)
	return append(result, uint64(k))
}

// ShardAddresses - derived address of every shard
func ShardAddresses(program address.Address, d Descriptor, offsets ...uint64) ([]address.Address, error) {
	layout := d.Layout()
	if err := layout.Validate(); nil != err {
		return nil, err
	}
	count := layout.UnitCount()
	addresses := make([]address.Address, count)
	for k := 0; k < count; k += 1 {
		a, _, err := address.Find(program, d.Seed(), shardOffsets(offsets, k)...)
		if nil != err {
			return nil, err
		}
		addresses[k] = a
	}
	return addresses, nil
}

// OpenShards - open every shard of an array
//
// each shard is an independent unit at the address derived from the
// parent seed, the parent offsets and the shard index
func OpenShards(inv *ledger.Invocation, program address.Address, payer address.Address, d Descriptor, offsets ...uint64) ([]address.Address, error) {
	layout := d.Layout()
	addresses, err := ShardAddresses(program, d, offsets...)
	if nil != err {
		return nil, err
	}
	for k, a := range addresses {
		s := &shard{
			seed: d.Seed(),
			size: layout.UnitSize(k),
		}
		if _, err := opener.Open(inv, program, payer, a, s, shardOffsets(offsets, k)...); nil != err {
			return nil, err
		}
	}
	return addresses, nil
}

// Load - the array held in previously opened shards
func Load[T any](inv *ledger.Invocation, program address.Address, d Descriptor, codec Codec[T], offsets ...uint64) (*Array[T], error) {
	addresses, err := ShardAddresses(program, d, offsets...)
	if nil != err {
		return nil, err
	}

	units := make([]*ledger.Unit, len(addresses))
	for k, a := range addresses {
		u, err := inv.Load(a)
		if nil != err {
			return nil, err
		}
		if !u.IsOwnedBy(program) {
			return nil, fault.ErrOwnershipMismatch
		}
		units[k] = u
	}
	return New(d.Layout(), codec, units)
}
