// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package container_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/bigarray"
	"github.com/bitmark-inc/shardstore/container"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/opener"
	"github.com/bitmark-inc/shardstore/rent"
)

// three children of 32, 32 and 16 bytes
var arrayLayout = bigarray.Layout{Size: 10, Width: 8, MaxUnitSize: 32}

var payer = address.FromLabel("container-test-payer")

// open a fresh parent and allocate its children as a third party would
func prepare(t *testing.T, name string, layout container.Layout) (address.Address, []address.Address) {
	d := opener.NewDescriptor(name, layout.HeaderSize())
	parent, _, err := opener.Find(program, d)
	require.NoError(t, err)

	children := make([]address.Address, layout.Count)
	err = ledger.Run(func(inv *ledger.Invocation) error {
		if err := inv.Fund(payer, 1_000_000_000); nil != err {
			return err
		}
		if _, err := opener.OpenWithoutOffset(inv, program, payer, parent, d); nil != err {
			return err
		}
		for i := range children {
			children[i] = address.FromLabel(fmt.Sprintf("%s-child-%d", name, i))
			if _, err := inv.Create(payer, children[i], layout.ChildSize(i), program, 0); nil != err {
				return err
			}
			if err := inv.Fund(children[i], rent.TestingBalance); nil != err {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err, "prepare: %s", name)
	return parent, children
}

func layoutFor(t *testing.T, array bigarray.Layout) container.Layout {
	l, err := container.LayoutFor(array, true)
	require.NoError(t, err, "layout")
	return l
}

func bind(parent address.Address, layout container.Layout, children []address.Address, reserved ...address.Address) error {
	return ledger.Run(func(inv *ledger.Invocation) error {
		u, err := inv.Load(parent)
		if nil != err {
			return err
		}
		c, err := container.New(u, program, layout)
		if nil != err {
			return err
		}
		return c.Bind(inv, children, reserved...)
	})
}

func TestLayoutFor(t *testing.T) {
	l := layoutFor(t, arrayLayout)
	assert.Equal(t, 3, l.Count, "count")
	assert.Equal(t, 32, l.IntermediarySize, "intermediary")
	assert.Equal(t, 16, l.LastSize, "last")
	assert.Equal(t, 1+3*32, l.HeaderSize(), "header")
	assert.Equal(t, 32, l.ChildSize(1), "child 1")
	assert.Equal(t, 16, l.ChildSize(2), "child 2")
}

func TestBindOnce(t *testing.T) {
	layout := layoutFor(t, arrayLayout)
	parent, children := prepare(t, "bind-once", layout)

	err := ledger.Run(func(inv *ledger.Invocation) error {
		u, err := inv.Load(parent)
		if nil != err {
			return err
		}
		c, err := container.New(u, program, layout)
		if nil != err {
			return err
		}
		assert.False(t, c.IsBound(), "bound before bind")
		_, err = c.Child(inv, 0)
		assert.Equal(t, fault.ErrNotBound, err, "child before bind")
		_, err = c.Addresses()
		assert.Equal(t, fault.ErrNotBound, err, "addresses before bind")
		return nil
	})
	require.NoError(t, err)

	err = bind(parent, layout, children)
	require.NoError(t, err, "first bind")

	err = bind(parent, layout, children)
	assert.Equal(t, fault.ErrAlreadyBound, err, "second bind")

	reversed := []address.Address{children[2], children[1], children[0]}
	err = bind(parent, layout, reversed)
	assert.Equal(t, fault.ErrAlreadyBound, err, "rebind with other order")

	err = ledger.Run(func(inv *ledger.Invocation) error {
		u, err := inv.Load(parent)
		if nil != err {
			return err
		}
		c, err := container.New(u, program, layout)
		if nil != err {
			return err
		}
		assert.True(t, c.IsBound(), "bound")
		addresses, err := c.Addresses()
		if nil != err {
			return err
		}
		assert.Equal(t, children, addresses, "recorded addresses")

		for i := range children {
			child, err := c.Child(inv, i)
			if nil != err {
				return err
			}
			assert.Equal(t, children[i], child.Address, "child: %d", i)
		}
		_, err = c.Child(inv, 3)
		assert.Equal(t, fault.ErrInvalidRange, err, "child past end")
		return nil
	})
	require.NoError(t, err)
}

func TestBindDuplicate(t *testing.T) {
	layout := container.Layout{Count: 3, IntermediarySize: 32, LastSize: 32}
	parent, children := prepare(t, "bind-duplicate", layout)

	err := bind(parent, layout, []address.Address{children[0], children[1], children[0]})
	assert.Equal(t, fault.ErrDuplicateChildAccount, err, "repeated child")

	u, err := ledger.Get(parent)
	require.NoError(t, err)
	assert.True(t, u.IsZeroed(), "header written by failed bind")

	err = bind(parent, layout, children)
	assert.NoError(t, err, "bind after failed bind")
}

func TestLayoutForRejectsBadArray(t *testing.T) {
	bad := []bigarray.Layout{
		{Size: 0, Width: 8, MaxUnitSize: 32},
		{Size: 10, Width: 0, MaxUnitSize: 32},
		{Size: 10, Width: 64, MaxUnitSize: 32},
		{Size: 10, Width: 8, MaxUnitSize: -1},
	}
	for i, array := range bad {
		_, err := container.LayoutFor(array, false)
		assert.Equal(t, fault.ErrSizeMismatch, err, "layout: %d", i)
	}
}

func TestBindReserved(t *testing.T) {
	layout := container.Layout{Count: 2, IntermediarySize: 16, LastSize: 16}
	parent, children := prepare(t, "bind-reserved", layout)

	other := address.FromLabel("bind-reserved-other")
	err := bind(parent, layout, children, other, children[1])
	assert.Equal(t, fault.ErrDuplicateChildAccount, err, "child held elsewhere")

	u, err := ledger.Get(parent)
	require.NoError(t, err)
	assert.True(t, u.IsZeroed(), "header written by failed bind")

	err = bind(parent, layout, children, other)
	assert.NoError(t, err, "bind clear of reserved")
}

func TestBindValidatesChildren(t *testing.T) {
	layout := layoutFor(t, arrayLayout)
	parent, children := prepare(t, "bind-validate", layout)

	err := bind(parent, layout, children[:2])
	assert.Equal(t, fault.ErrChildCount, err, "short list")

	// intermediary sized unit in the last position
	err = bind(parent, layout, []address.Address{children[0], children[2], children[1]})
	assert.Equal(t, fault.ErrSizeMismatch, err, "sizes out of order")

	err = ledger.Run(func(inv *ledger.Invocation) error {
		u, err := inv.Load(children[1])
		if nil != err {
			return err
		}
		u.Data[5] = 1
		return nil
	})
	require.NoError(t, err)

	err = bind(parent, layout, children)
	assert.Equal(t, fault.ErrNotZeroed, err, "dirty child")

	relaxed := layout
	relaxed.RequireZeroed = false
	err = bind(parent, relaxed, children)
	assert.NoError(t, err, "dirty child without zero check")
}

func TestBindRejectsForeignChild(t *testing.T) {
	layout := container.Layout{Count: 2, IntermediarySize: 16, LastSize: 16}
	parent, children := prepare(t, "bind-foreign", layout)

	foreign := address.FromLabel("bind-foreign-unit")
	err := ledger.Run(func(inv *ledger.Invocation) error {
		if _, err := inv.Create(payer, foreign, 16, ledger.SystemProgram, 0); nil != err {
			return err
		}
		return inv.Fund(foreign, rent.TestingBalance)
	})
	require.NoError(t, err)

	err = bind(parent, layout, []address.Address{children[0], foreign})
	assert.Equal(t, fault.ErrOwnershipMismatch, err, "foreign owner")

	err = bind(parent, layout, []address.Address{children[0], address.FromLabel("bind-missing-unit")})
	assert.Equal(t, fault.ErrUnitNotFound, err, "missing child")
}

func TestContainerArray(t *testing.T) {
	layout := layoutFor(t, arrayLayout)
	parent, children := prepare(t, "array", layout)
	require.NoError(t, bind(parent, layout, children))

	err := ledger.Run(func(inv *ledger.Invocation) error {
		u, err := inv.Load(parent)
		if nil != err {
			return err
		}
		c, err := container.New(u, program, layout)
		if nil != err {
			return err
		}
		a, err := container.Array[uint64](inv, c, arrayLayout, bigarray.Uint64Codec{})
		if nil != err {
			return err
		}
		for i := 0; i < a.Len(); i += 1 {
			a.Set(i, uint64(i)<<32)
		}
		return nil
	})
	require.NoError(t, err)

	last, err := ledger.Get(children[2])
	require.NoError(t, err)
	assert.Equal(t, byte(9), last.Data[8+4], "element 9 stored in last child")
}

func TestNewChecksParent(t *testing.T) {
	layout := container.Layout{Count: 2, IntermediarySize: 16, LastSize: 16}

	_, err := container.New(&ledger.Unit{Owner: program, Data: make([]byte, layout.HeaderSize()-1)}, program, layout)
	assert.Equal(t, fault.ErrSizeMismatch, err, "short header")

	_, err = container.New(&ledger.Unit{Data: make([]byte, layout.HeaderSize())}, program, layout)
	assert.Equal(t, fault.ErrOwnershipMismatch, err, "foreign parent")
}
