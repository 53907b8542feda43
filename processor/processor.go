// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package processor - operations exposed by the program
//
// every operation runs inside a single ledger invocation and either
// completes or leaves the ledger untouched
package processor

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/bigarray"
	"github.com/bitmark-inc/shardstore/container"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/merkle"
	"github.com/bitmark-inc/shardstore/opener"
	"github.com/bitmark-inc/shardstore/state"
)

// Processor - the program identity and its type dimensions
type Processor struct {
	log     *logger.L
	program address.Address
	catalog state.Catalog
}

// New - processor for program
func New(program address.Address, catalog state.Catalog) *Processor {
	return &Processor{
		log:     logger.New("processor"),
		program: program,
		catalog: catalog,
	}
}

// Program - program identity
func (p *Processor) Program() address.Address {
	return p.program
}

// Catalog - type dimensions
func (p *Processor) Catalog() state.Catalog {
	return p.catalog
}

// Address - derived address of a kind
func (p *Processor) Address(k state.Kind, offsets ...uint64) (address.Address, error) {
	return p.catalog.Address(p.program, k, offsets...)
}

// OpenSingleInstance - open a global unit
func (p *Processor) OpenSingleInstance(inv *ledger.Invocation, k state.Kind, payer address.Address, target address.Address) error {
	if !k.IsSingleInstance() {
		return fault.ErrUnknownKind
	}
	d, err := p.catalog.Descriptor(k)
	if nil != err {
		return err
	}
	_, err = opener.OpenWithoutOffset(inv, p.program, payer, target, d)
	return err
}

// OpenMultiInstance - open one instance of a partitioned unit
func (p *Processor) OpenMultiInstance(inv *ledger.Invocation, k state.Kind, payer address.Address, target address.Address, offset uint64) error {
	if !k.IsMultiInstance() {
		return fault.ErrUnknownKind
	}
	d, err := p.catalog.Descriptor(k)
	if nil != err {
		return err
	}
	_, err = opener.OpenWithOffset(inv, p.program, payer, target, d, offset)
	return err
}

// load a program owned unit of a kind at its derived address
func (p *Processor) load(inv *ledger.Invocation, k state.Kind, offsets ...uint64) (*ledger.Unit, error) {
	a, err := p.Address(k, offsets...)
	if nil != err {
		return nil, err
	}
	u, err := inv.Load(a)
	if nil != err {
		return nil, err
	}
	if !u.IsOwnedBy(p.program) {
		return nil, fault.ErrOwnershipMismatch
	}
	return u, nil
}

func (p *Processor) containerOf(inv *ledger.Invocation, k state.Kind) (*container.Container, error) {
	layout, err := p.catalog.Container(k)
	if nil != err {
		return nil, err
	}
	u, err := p.load(inv, k)
	if nil != err {
		return nil, err
	}
	return container.New(u, p.program, layout)
}

// children already recorded by the other container kind
//
// an unopened or unbound sibling reserves nothing
func (p *Processor) siblingChildren(inv *ledger.Invocation, sibling state.Kind) ([]address.Address, error) {
	c, err := p.containerOf(inv, sibling)
	if fault.ErrUnitNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	if !c.IsBound() {
		return nil, nil
	}
	return c.Addresses()
}

func (p *Processor) setup(inv *ledger.Invocation, k state.Kind, sibling state.Kind, children []address.Address) error {
	c, err := p.containerOf(inv, k)
	if nil != err {
		return err
	}
	reserved, err := p.siblingChildren(inv, sibling)
	if nil != err {
		return err
	}
	return c.Bind(inv, children, reserved...)
}

// SetupStorage - bind the storage children
func (p *Processor) SetupStorage(inv *ledger.Invocation, children []address.Address) error {
	return p.setup(inv, state.Storage, state.Nullifier, children)
}

// SetupNullifier - bind the nullifier children
func (p *Processor) SetupNullifier(inv *ledger.Invocation, children []address.Address) error {
	return p.setup(inv, state.Nullifier, state.Storage, children)
}

// Storage - the bound storage tree
func (p *Processor) Storage(inv *ledger.Invocation) (*bigarray.Array[merkle.Digest], error) {
	c, err := p.containerOf(inv, state.Storage)
	if nil != err {
		return nil, err
	}
	return container.Array[merkle.Digest](inv, c, p.catalog.Storage, merkle.DigestCodec{})
}

// Nullifiers - the bound nullifier set
func (p *Processor) Nullifiers(inv *ledger.Invocation) (*bigarray.Array[merkle.Digest], error) {
	c, err := p.containerOf(inv, state.Nullifier)
	if nil != err {
		return nil, err
	}
	return container.Array[merkle.Digest](inv, c, p.catalog.Nullifier, merkle.DigestCodec{})
}
