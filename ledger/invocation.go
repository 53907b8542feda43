// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/chain"
	"github.com/bitmark-inc/shardstore/constants"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/mode"
	"github.com/bitmark-inc/shardstore/storage"
)

// Invocation - one serialised execution window
type Invocation struct {
	log   *logger.L
	trx   storage.Transaction
	units map[address.Address]*Unit
	order []address.Address
	done  bool
}

// Begin - open a new invocation
//
// fails with fault.ErrInvocationInUse while another is open
func Begin() (*Invocation, error) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}
	return &Invocation{
		log:   logger.New("ledger"),
		trx:   trx,
		units: make(map[address.Address]*Unit),
	}, nil
}

// Run - execute f as a single invocation
//
// all changes are committed if f succeeds, otherwise none are. a
// panic in f aborts the invocation before it propagates
func Run(f func(inv *Invocation) error) error {
	inv, err := Begin()
	if nil != err {
		return err
	}
	defer func() {
		if r := recover(); nil != r {
			inv.log.Errorf("abort: panic: %v", r)
			inv.Abort()
			panic(r)
		}
	}()

	err = f(inv)
	if nil != err {
		inv.log.Debugf("abort: %s", err)
		inv.Abort()
		return err
	}
	return inv.Commit()
}

// Log - the invocation's log channel
func (inv *Invocation) Log() *logger.L {
	return inv.log
}

// Get - read a committed unit outside of any invocation
func Get(a address.Address) (*Unit, error) {
	record := storage.Pool.Units.Get(a[:])
	if nil == record {
		return nil, fault.ErrUnitNotFound
	}
	return unpack(a, record)
}

// Load - the unit at an address
//
// repeated loads return the same unit so changes are shared
func (inv *Invocation) Load(a address.Address) (*Unit, error) {
	if u, ok := inv.units[a]; ok {
		return u, nil
	}
	record := inv.trx.Get(storage.Pool.Units, a[:])
	if nil == record {
		return nil, fault.ErrUnitNotFound
	}
	u, err := unpack(a, record)
	if nil != err {
		return nil, err
	}
	inv.track(u)
	return u, nil
}

// Exists - true if a unit lives at the address
func (inv *Invocation) Exists(a address.Address) bool {
	if _, ok := inv.units[a]; ok {
		return true
	}
	return inv.trx.Has(storage.Pool.Units, a[:])
}

// Create - allocate a zero filled unit funded by payer
func (inv *Invocation) Create(payer address.Address, a address.Address, size int, owner address.Address, lamports uint64) (*Unit, error) {
	if size < 0 || size > constants.MaxUnitSize {
		return nil, fault.ErrUnitTooLarge
	}
	if inv.Exists(a) {
		return nil, fault.ErrAlreadyExists
	}

	p, err := inv.Load(payer)
	if nil != err {
		return nil, err
	}
	if p.Lamports < lamports {
		return nil, fault.ErrInsufficientFunds
	}
	p.Lamports -= lamports

	u := &Unit{
		Address:  a,
		Lamports: lamports,
		Owner:    owner,
		Data:     make([]byte, size),
	}
	inv.track(u)

	inv.log.Debugf("create: %s  size: %d  owner: %s  lamports: %d", a, size, owner, lamports)
	return u, nil
}

// Transfer - move lamports between units
//
// the destination is created as a balance holding unit if absent
func (inv *Invocation) Transfer(from address.Address, to address.Address, lamports uint64) error {
	source, err := inv.Load(from)
	if nil != err {
		return err
	}
	if source.Lamports < lamports {
		return fault.ErrInsufficientFunds
	}

	destination, err := inv.Load(to)
	if fault.ErrUnitNotFound == err {
		destination = &Unit{
			Address: to,
			Owner:   SystemProgram,
			Data:    []byte{},
		}
		inv.track(destination)
	} else if nil != err {
		return err
	}

	source.Lamports -= lamports
	destination.Lamports += lamports
	return nil
}

// Fund - create lamports on chains that allow it
func (inv *Invocation) Fund(a address.Address, lamports uint64) error {
	if !chain.AllowsFunding(mode.ChainName()) {
		return fault.ErrInvalidChain
	}

	u, err := inv.Load(a)
	if fault.ErrUnitNotFound == err {
		u = &Unit{
			Address: a,
			Owner:   SystemProgram,
			Data:    []byte{},
		}
		inv.track(u)
	} else if nil != err {
		return err
	}
	u.Lamports += lamports
	return nil
}

// Commit - write every unit touched by the invocation
func (inv *Invocation) Commit() error {
	if inv.done {
		return fault.ErrNotInitialised
	}
	inv.done = true

	for _, a := range inv.order {
		inv.trx.Put(storage.Pool.Units, a[:], inv.units[a].pack())
	}
	err := inv.trx.Commit()
	if nil != err {
		inv.log.Errorf("commit error: %s", err)
		return err
	}
	inv.log.Debugf("committed: %d units", len(inv.order))
	return nil
}

// Abort - discard every change made by the invocation
func (inv *Invocation) Abort() {
	if inv.done {
		return
	}
	inv.done = true
	inv.trx.Abort()
}

func (inv *Invocation) track(u *Unit) {
	inv.units[u.Address] = u
	inv.order = append(inv.order, u.Address)
}
