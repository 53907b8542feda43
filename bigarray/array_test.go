// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigarray_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/bigarray"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
)

// units held in memory only
func makeUnits(l bigarray.Layout) []*ledger.Unit {
	units := make([]*ledger.Unit, l.UnitCount())
	for k := range units {
		units[k] = &ledger.Unit{
			Data: make([]byte, l.UnitSize(k)),
		}
	}
	return units
}

func TestNewChecksUnits(t *testing.T) {
	l := bigarray.Layout{Size: 25, Width: 8, MaxUnitSize: 80}
	units := makeUnits(l)
	require.Equal(t, 3, len(units))

	_, err := bigarray.New[uint64](l, bigarray.Uint64Codec{}, units[:2])
	assert.Equal(t, fault.ErrShardCount, err, "missing shard")

	short := makeUnits(l)
	short[2].Data = make([]byte, 8)
	_, err = bigarray.New[uint64](l, bigarray.Uint64Codec{}, short)
	assert.Equal(t, fault.ErrSizeMismatch, err, "short last shard")

	wide := bigarray.Layout{Size: 25, Width: 16, MaxUnitSize: 80}
	_, err = bigarray.New[uint64](wide, bigarray.Uint64Codec{}, makeUnits(wide))
	assert.Equal(t, fault.ErrSizeMismatch, err, "codec width")

	empty := bigarray.Layout{Size: 0, Width: 8, MaxUnitSize: 80}
	_, err = bigarray.New[uint64](empty, bigarray.Uint64Codec{}, nil)
	assert.Equal(t, fault.ErrSizeMismatch, err, "empty array")

	a, err := bigarray.New[uint64](l, bigarray.Uint64Codec{}, units)
	require.NoError(t, err)
	assert.Equal(t, 25, a.Len())
}

func TestSetGet(t *testing.T) {
	l := bigarray.Layout{Size: 25, Width: 8, MaxUnitSize: 80}
	units := makeUnits(l)
	a, err := bigarray.New[uint64](l, bigarray.Uint64Codec{}, units)
	require.NoError(t, err)

	for i := 0; i < a.Len(); i += 1 {
		a.Set(i, uint64(i*i+1))
	}
	for i := 0; i < a.Len(); i += 1 {
		assert.Equal(t, uint64(i*i+1), a.Get(i), "index: %d", i)
	}

	// element 10 is the first of shard 1
	assert.Equal(t, uint64(10*10+1), binary.LittleEndian.Uint64(units[1].Data[0:8]), "shard placement")
	// element 24 is the last of shard 2
	assert.Equal(t, uint64(24*24+1), binary.LittleEndian.Uint64(units[2].Data[32:40]), "last shard placement")
}

func TestSetWritesExactlyOneElement(t *testing.T) {
	l := bigarray.Layout{Size: 4, Width: 8, MaxUnitSize: 16}
	units := makeUnits(l)
	a, err := bigarray.New[uint64](l, bigarray.Uint64Codec{}, units)
	require.NoError(t, err)

	a.Set(2, 0xffffffffffffffff)
	assert.Equal(t, make([]byte, 16), units[0].Data, "shard 0 untouched")
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0, 0, 0, 0, 0, 0, 0, 0}, units[1].Data, "shard 1")
}

func TestOutOfRangePanics(t *testing.T) {
	l := bigarray.Layout{Size: 4, Width: 8, MaxUnitSize: 16}
	a, err := bigarray.New[uint64](l, bigarray.Uint64Codec{}, makeUnits(l))
	require.NoError(t, err)

	assert.Panics(t, func() { a.Get(4) }, "get past end")
	assert.Panics(t, func() { a.Set(-1, 0) }, "set before start")
}

func TestGetRange(t *testing.T) {
	l := bigarray.Layout{Size: 25, Width: 8, MaxUnitSize: 80}
	units := makeUnits(l)
	a, err := bigarray.New[uint64](l, bigarray.Uint64Codec{}, units)
	require.NoError(t, err)
	for i := 0; i < a.Len(); i += 1 {
		a.Set(i, uint64(1000+i))
	}

	ranges := [][2]int{
		{0, 0},
		{0, 1},
		{3, 7},
		{8, 12},  // crosses shard 0 -> 1
		{5, 25},  // crosses all shards
		{20, 25}, // last shard only
		{0, 25},
	}
	for _, r := range ranges {
		buffer, err := a.GetRange(r[0], r[1])
		require.NoError(t, err, "range: %v", r)
		require.Equal(t, (r[1]-r[0])*8, len(buffer), "range: %v", r)
		for i := r[0]; i < r[1]; i += 1 {
			offset := (i - r[0]) * 8
			assert.Equal(t, uint64(1000+i), binary.LittleEndian.Uint64(buffer[offset:offset+8]), "range: %v  index: %d", r, i)
		}
	}

	_, err = a.GetRange(5, 4)
	assert.Equal(t, fault.ErrInvalidRange, err, "reversed")
	_, err = a.GetRange(0, 26)
	assert.Equal(t, fault.ErrInvalidRange, err, "past end")
}

func TestGetRangeIsOwnedCopy(t *testing.T) {
	l := bigarray.Layout{Size: 4, Width: 8, MaxUnitSize: 32}
	units := makeUnits(l)
	a, err := bigarray.New[uint64](l, bigarray.Uint64Codec{}, units)
	require.NoError(t, err)
	a.Set(0, 7)

	buffer, err := a.GetRange(0, 4)
	require.NoError(t, err)
	buffer[0] = 0xaa

	assert.Equal(t, uint64(7), a.Get(0), "range aliases shard data")
}

func TestShardsRejectBadLayout(t *testing.T) {
	program := address.FromLabel("bigarray-test-program")
	payer := address.FromLabel("bigarray-test-payer")
	layouts := []bigarray.Layout{
		{Size: 0, Width: 8, MaxUnitSize: 1000},
		{Size: 300, Width: 0, MaxUnitSize: 1000},
		{Size: 300, Width: 2000, MaxUnitSize: 1000},
	}
	for i, l := range layouts {
		d := &arrayDescriptor{seed: []byte("bad"), layout: l}

		_, err := bigarray.ShardAddresses(program, d)
		assert.Equal(t, fault.ErrSizeMismatch, err, "addresses: %d", i)

		err = ledger.Run(func(inv *ledger.Invocation) error {
			_, err := bigarray.OpenShards(inv, program, payer, d)
			return err
		})
		assert.Equal(t, fault.ErrSizeMismatch, err, "open: %d", i)

		err = ledger.Run(func(inv *ledger.Invocation) error {
			_, err := bigarray.Load[uint64](inv, program, d, bigarray.Uint64Codec{})
			return err
		})
		assert.Equal(t, fault.ErrSizeMismatch, err, "load: %d", i)
	}
}

func TestOpenAndLoadShards(t *testing.T) {
	program := address.FromLabel("bigarray-test-program")
	payer := address.FromLabel("bigarray-test-payer")
	d := &arrayDescriptor{
		seed:   []byte("values"),
		layout: bigarray.Layout{Size: 300, Width: 8, MaxUnitSize: 1000},
	}
	require.Equal(t, 3, d.layout.UnitCount())

	err := ledger.Run(func(inv *ledger.Invocation) error {
		if err := inv.Fund(payer, 1_000_000_000); nil != err {
			return err
		}
		addresses, err := bigarray.OpenShards(inv, program, payer, d, 4)
		if nil != err {
			return err
		}
		assert.Equal(t, 3, len(addresses), "shard count")
		return nil
	})
	require.NoError(t, err)

	addresses, err := bigarray.ShardAddresses(program, d, 4)
	require.NoError(t, err)
	for k, a := range addresses {
		expected, _, err := address.Find(program, []byte("values"), 4, uint64(k))
		require.NoError(t, err)
		assert.Equal(t, expected, a, "shard: %d address", k)

		u, err := ledger.Get(a)
		require.NoError(t, err)
		assert.Equal(t, d.layout.UnitSize(k), u.Capacity(), "shard: %d size", k)
	}

	err = ledger.Run(func(inv *ledger.Invocation) error {
		a, err := bigarray.Load[uint64](inv, program, d, bigarray.Uint64Codec{}, 4)
		if nil != err {
			return err
		}
		a.Set(124, 99)
		a.Set(125, 100)
		return nil
	})
	require.NoError(t, err)

	err = ledger.Run(func(inv *ledger.Invocation) error {
		a, err := bigarray.Load[uint64](inv, program, d, bigarray.Uint64Codec{}, 4)
		if nil != err {
			return err
		}
		assert.Equal(t, uint64(99), a.Get(124), "persisted in shard 0")
		assert.Equal(t, uint64(100), a.Get(125), "persisted in shard 1")
		return nil
	})
	require.NoError(t, err)

	err = ledger.Run(func(inv *ledger.Invocation) error {
		_, err := bigarray.OpenShards(inv, program, payer, d, 4)
		return err
	})
	assert.Equal(t, fault.ErrAlreadyExists, err, "reopen")

	err = ledger.Run(func(inv *ledger.Invocation) error {
		_, err := bigarray.Load[uint64](inv, program, d, bigarray.Uint64Codec{}, 5)
		return err
	})
	assert.Equal(t, fault.ErrUnitNotFound, err, "unopened instance")
}

type arrayDescriptor struct {
	seed   []byte
	layout bigarray.Layout
}

func (d *arrayDescriptor) Seed() []byte            { return d.seed }
func (d *arrayDescriptor) Layout() bigarray.Layout { return d.layout }
