// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigarray

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
)

// Codec - fixed width serialisation of an element
type Codec[T any] interface {
	Width() int
	Encode(value T, buffer []byte)
	Decode(buffer []byte) T
}

// Array - a logical array spread over shard units
type Array[T any] struct {
	layout Layout
	codec  Codec[T]
	units  []*ledger.Unit
}

// New - view the units as one array
//
// units must be in shard order and each sized exactly as the layout
// requires
func New[T any](layout Layout, codec Codec[T], units []*ledger.Unit) (*Array[T], error) {
	if err := layout.Validate(); nil != err {
		return nil, err
	}
	if codec.Width() != layout.Width {
		return nil, fault.ErrSizeMismatch
	}
	if len(units) != layout.UnitCount() {
		return nil, fault.ErrShardCount
	}
	for k, u := range units {
		if u.Capacity() != layout.UnitSize(k) {
			return nil, fault.ErrSizeMismatch
		}
	}
	return &Array[T]{
		layout: layout,
		codec:  codec,
		units:  units,
	}, nil
}

// Len - number of elements
func (a *Array[T]) Len() int {
	return a.layout.Size
}

// Layout - the shard layout
func (a *Array[T]) Layout() Layout {
	return a.layout
}

// element bytes of index i
func (a *Array[T]) slot(i int) []byte {
	if i < 0 || i >= a.layout.Size {
		logger.Panicf("bigarray: index: %d out of range: [0, %d)", i, a.layout.Size)
	}
	shard, local := a.layout.Locate(i)
	w := a.layout.Width
	return a.units[shard].Data[local*w : (local+1)*w]
}

// Get - element i
//
// i outside [0, Len()) is a programming error and panics
func (a *Array[T]) Get(i int) T {
	return a.codec.Decode(a.slot(i))
}

// Set - overwrite element i
func (a *Array[T]) Set(i int, value T) {
	a.codec.Encode(value, a.slot(i))
}

// GetRange - serialised elements [start, end)
//
// the result is always a new buffer, shards are separate units and a
// range crossing a shard boundary has no contiguous backing bytes
func (a *Array[T]) GetRange(start int, end int) ([]byte, error) {
	if start < 0 || end < start || end > a.layout.Size {
		return nil, fault.ErrInvalidRange
	}

	w := a.layout.Width
	v := a.layout.ValuesPerUnit()
	result := make([]byte, (end-start)*w)

	for i := start; i < end; {
		shard, local := a.layout.Locate(i)
		n := v - local
		if n > end-i {
			n = end - i
		}
		copy(result[(i-start)*w:], a.units[shard].Data[local*w:(local+n)*w])
		i += n
	}
	return result, nil
}
