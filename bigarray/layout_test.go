// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shardstore/bigarray"
	"github.com/bitmark-inc/shardstore/constants"
	"github.com/bitmark-inc/shardstore/fault"
)

func TestLayoutSingleUnit(t *testing.T) {
	l := bigarray.Layout{Size: 20_000, Width: 32, MaxUnitSize: 10_000_000}
	assert.Equal(t, 312_500, l.ValuesPerUnit(), "values per unit")
	assert.Equal(t, 1, l.UnitCount(), "unit count")
	assert.Equal(t, 20_000*32, l.UnitSize(0), "unit size")

	d := bigarray.Layout{Size: 20_000, Width: 32}
	assert.Equal(t, constants.MaxUnitSize/32, d.ValuesPerUnit(), "default ceiling")
}

func TestLayoutTwoUnits(t *testing.T) {
	l := bigarray.Layout{Size: 20_000, Width: 32, MaxUnitSize: 400_000}
	assert.Equal(t, 12_500, l.ValuesPerUnit(), "values per unit")
	assert.Equal(t, 2, l.UnitCount(), "unit count")

	shard, local := l.Locate(12_499)
	assert.Equal(t, 0, shard, "shard of 12499")
	assert.Equal(t, 12_499, local, "local of 12499")

	shard, local = l.Locate(12_500)
	assert.Equal(t, 1, shard, "shard of 12500")
	assert.Equal(t, 0, local, "local of 12500")

	assert.Equal(t, 12_500*32, l.UnitSize(0), "first unit size")
	assert.Equal(t, 7_500*32, l.UnitSize(1), "last unit size")
	assert.Equal(t, 20_000*32, l.ByteSize(), "byte size")
}

func TestLayoutExactFit(t *testing.T) {
	l := bigarray.Layout{Size: 30, Width: 10, MaxUnitSize: 100}
	assert.Equal(t, 10, l.ValuesPerUnit())
	assert.Equal(t, 3, l.UnitCount(), "no partial unit")
	assert.Equal(t, 100, l.UnitSize(2), "last unit full")
}

func TestLayoutValidate(t *testing.T) {
	good := []bigarray.Layout{
		{Size: 1, Width: 32, MaxUnitSize: 32},
		{Size: 20_000, Width: 32},
		{Size: 25, Width: 16, MaxUnitSize: 80},
	}
	for i, l := range good {
		assert.NoError(t, l.Validate(), "good: %d", i)
	}

	bad := []bigarray.Layout{
		{},
		{Size: 0, Width: 32, MaxUnitSize: 320},
		{Size: -1, Width: 32, MaxUnitSize: 320},
		{Size: 10, Width: 0, MaxUnitSize: 320},
		{Size: 10, Width: 33, MaxUnitSize: 32},
		{Size: 10, Width: 32, MaxUnitSize: -32},
		{Size: 10, Width: constants.MaxUnitSize + 1},
	}
	for i, l := range bad {
		assert.Equal(t, fault.ErrSizeMismatch, l.Validate(), "bad: %d", i)
	}
}

func TestLocateIsTotalAndInjective(t *testing.T) {
	layouts := []bigarray.Layout{
		{Size: 1, Width: 32, MaxUnitSize: 32},
		{Size: 1000, Width: 32, MaxUnitSize: 320},
		{Size: 1001, Width: 7, MaxUnitSize: 100},
		{Size: 4096, Width: 8, MaxUnitSize: 1_000_000},
	}

	for _, l := range layouts {
		v := l.ValuesPerUnit()
		count := l.UnitCount()
		seen := make(map[[2]int]bool)
		values := make([]int, count)

		for i := 0; i < l.Size; i += 1 {
			shard, local := l.Locate(i)
			assert.Equal(t, i, shard*v+local, "layout: %+v  index: %d", l, i)
			assert.True(t, shard < count, "layout: %+v  index: %d shard: %d", l, i, shard)
			assert.True(t, local < v, "layout: %+v  index: %d local: %d", l, i, local)
			key := [2]int{shard, local}
			assert.False(t, seen[key], "layout: %+v  index: %d duplicate", l, i)
			seen[key] = true
			values[shard] += 1
		}
		for k := 0; k < count; k += 1 {
			assert.Equal(t, l.UnitValues(k), values[k], "layout: %+v  shard: %d", l, k)
			assert.True(t, l.UnitSize(k) <= l.MaxUnitSize, "layout: %+v  shard: %d too large", l, k)
		}
	}
}
