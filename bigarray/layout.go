// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigarray

import (
	"github.com/bitmark-inc/shardstore/constants"
	"github.com/bitmark-inc/shardstore/fault"
)

// Layout - how a logical array is split into units
//
// the shard layout is derived from these three values only, so changing
// any of them moves elements between shards and changes shard addresses
type Layout struct {
	Size        int // number of elements
	Width       int // bytes per serialised element
	MaxUnitSize int // zero selects constants.MaxUnitSize
}

func (l Layout) maxUnitSize() int {
	if 0 == l.MaxUnitSize {
		return constants.MaxUnitSize
	}
	return l.MaxUnitSize
}

// Validate - layout can be split into at least one shard
//
// the other methods assume a valid layout
func (l Layout) Validate() error {
	if l.Size <= 0 || l.Width <= 0 || l.MaxUnitSize < 0 || l.Width > l.maxUnitSize() {
		return fault.ErrSizeMismatch
	}
	return nil
}

// ValuesPerUnit - elements held by every shard but the last
func (l Layout) ValuesPerUnit() int {
	return l.maxUnitSize() / l.Width
}

// UnitCount - number of shards
func (l Layout) UnitCount() int {
	v := l.ValuesPerUnit()
	return (l.Size + v - 1) / v
}

// Locate - shard and index within the shard of global element i
func (l Layout) Locate(i int) (int, int) {
	v := l.ValuesPerUnit()
	shard := i / v
	return shard, i - shard*v
}

// UnitValues - elements held by a shard
func (l Layout) UnitValues(shard int) int {
	v := l.ValuesPerUnit()
	if shard == l.UnitCount()-1 {
		return l.Size - shard*v
	}
	return v
}

// UnitSize - data bytes of a shard
//
// the last shard only holds the remaining elements
func (l Layout) UnitSize(shard int) int {
	return l.UnitValues(shard) * l.Width
}

// ByteSize - total bytes of the logical array
func (l Layout) ByteSize() int {
	return l.Size * l.Width
}
