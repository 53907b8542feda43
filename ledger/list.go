// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/storage"
)

// List - up to count committed units in address order from start
//
// also returns the address to continue from, the zero address once
// every unit has been listed
func List(start address.Address, count int) ([]*Unit, address.Address, error) {
	cursor := storage.Pool.Units.NewFetchCursor().Seek(start[:])
	elements, err := cursor.Fetch(count)
	if nil != err {
		return nil, address.Address{}, err
	}

	units := make([]*Unit, 0, len(elements))
	for _, e := range elements {
		a, err := address.FromBytes(e.Key)
		if nil != err {
			return nil, address.Address{}, err
		}
		u, err := unpack(a, e.Value)
		if nil != err {
			return nil, address.Address{}, err
		}
		units = append(units, u)
	}

	next := address.Address{}
	if len(units) == count {
		next = units[count-1].Address
		next = successor(next)
	}
	return units, next, nil
}

// Each - call f on every committed unit owned by owner
func Each(owner address.Address, f func(u *Unit) error) error {
	return storage.Pool.Units.NewFetchCursor().Map(func(key []byte, value []byte) error {
		a, err := address.FromBytes(key)
		if nil != err {
			return err
		}
		u, err := unpack(a, value)
		if nil != err {
			return err
		}
		if !u.IsOwnedBy(owner) {
			return nil
		}
		return f(u)
	})
}

// smallest address after a, wrapping to zero
func successor(a address.Address) address.Address {
	for i := address.Length - 1; i >= 0; i -= 1 {
		a[i] += 1
		if 0 != a[i] {
			return a
		}
	}
	return a
}
