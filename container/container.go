// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package container

import (
	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/bigarray"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/rent"
)

const (
	initialisedOffset = 0
	childrenOffset    = 1
)

// Layout - shape of the children of a container
//
// every child but the last is IntermediarySize bytes, the last is
// LastSize bytes
type Layout struct {
	Count            int
	IntermediarySize int
	LastSize         int
	RequireZeroed    bool
}

// LayoutFor - children able to back a sharded array
func LayoutFor(array bigarray.Layout, requireZeroed bool) (Layout, error) {
	if err := array.Validate(); nil != err {
		return Layout{}, err
	}
	count := array.UnitCount()
	return Layout{
		Count:            count,
		IntermediarySize: array.UnitSize(0),
		LastSize:         array.UnitSize(count - 1),
		RequireZeroed:    requireZeroed,
	}, nil
}

// HeaderSize - bytes of the parent unit used by the container header
func (l Layout) HeaderSize() int {
	return childrenOffset + l.Count*address.Length
}

// ChildSize - required size of child i
func (l Layout) ChildSize(i int) int {
	if i == l.Count-1 {
		return l.LastSize
	}
	return l.IntermediarySize
}

// Container - view of a parent unit's header
type Container struct {
	parent  *ledger.Unit
	program address.Address
	layout  Layout
}

// New - container held in the parent unit
func New(parent *ledger.Unit, program address.Address, layout Layout) (*Container, error) {
	if !parent.IsOwnedBy(program) {
		return nil, fault.ErrOwnershipMismatch
	}
	if parent.Capacity() < layout.HeaderSize() {
		return nil, fault.ErrSizeMismatch
	}
	return &Container{
		parent:  parent,
		program: program,
		layout:  layout,
	}, nil
}

// Layout - shape of the children
func (c *Container) Layout() Layout {
	return c.layout
}

// IsBound - true once children have been recorded
func (c *Container) IsBound() bool {
	return 0 != c.parent.Data[initialisedOffset]
}

// Addresses - recorded child addresses
func (c *Container) Addresses() ([]address.Address, error) {
	if !c.IsBound() {
		return nil, fault.ErrNotBound
	}
	result := make([]address.Address, c.layout.Count)
	for i := range result {
		start := childrenOffset + i*address.Length
		copy(result[i][:], c.parent.Data[start:start+address.Length])
	}
	return result, nil
}

// Bind - validate and record the children
//
// fails without modifying the parent if already bound, if any child
// fails validation or if an address is repeated. children may not
// include any of the reserved addresses
func (c *Container) Bind(inv *ledger.Invocation, children []address.Address, reserved ...address.Address) error {
	if c.IsBound() {
		return fault.ErrAlreadyBound
	}
	if len(children) != c.layout.Count {
		return fault.ErrChildCount
	}

	exemption := rent.ValidationExemption()
	for i, a := range children {
		u, err := inv.Load(a)
		if nil != err {
			return err
		}
		err = Validate(u, c.program, c.layout.ChildSize(i), c.layout.RequireZeroed, exemption)
		if nil != err {
			inv.Log().Warnf("bind: child: %d  address: %s  error: %s", i, a, err)
			return err
		}
	}

	taken := make(map[address.Address]struct{}, len(children)+len(reserved))
	for _, a := range reserved {
		taken[a] = struct{}{}
	}
	for i, a := range children {
		if _, ok := taken[a]; ok {
			inv.Log().Warnf("bind: child: %d  address: %s  already in use", i, a)
			return fault.ErrDuplicateChildAccount
		}
		taken[a] = struct{}{}
	}

	for i, a := range children {
		start := childrenOffset + i*address.Length
		copy(c.parent.Data[start:start+address.Length], a[:])
	}
	c.parent.Data[initialisedOffset] = 1

	inv.Log().Infof("bound: %s  children: %d", c.parent.Address, len(children))
	return nil
}

// Child - unit recorded at position i
func (c *Container) Child(inv *ledger.Invocation, i int) (*ledger.Unit, error) {
	if !c.IsBound() {
		return nil, fault.ErrNotBound
	}
	if i < 0 || i >= c.layout.Count {
		return nil, fault.ErrInvalidRange
	}
	var a address.Address
	start := childrenOffset + i*address.Length
	copy(a[:], c.parent.Data[start:start+address.Length])
	return inv.Load(a)
}

// Children - every recorded unit in order
func (c *Container) Children(inv *ledger.Invocation) ([]*ledger.Unit, error) {
	if !c.IsBound() {
		return nil, fault.ErrNotBound
	}
	units := make([]*ledger.Unit, c.layout.Count)
	for i := range units {
		u, err := c.Child(inv, i)
		if nil != err {
			return nil, err
		}
		units[i] = u
	}
	return units, nil
}

// Array - the children viewed as one sharded array
func Array[T any](inv *ledger.Invocation, c *Container, layout bigarray.Layout, codec bigarray.Codec[T]) (*bigarray.Array[T], error) {
	units, err := c.Children(inv)
	if nil != err {
		return nil, err
	}
	return bigarray.New(layout, codec, units)
}
