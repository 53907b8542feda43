// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/opener"
	"github.com/bitmark-inc/shardstore/state"
)

// SetupGovernor - open the governor with default settings
func (p *Processor) SetupGovernor(inv *ledger.Invocation, payer address.Address, target address.Address) error {
	d, err := p.catalog.Descriptor(state.Governor)
	if nil != err {
		return err
	}
	if _, err := opener.OpenWithoutOffset(inv, p.program, payer, target, d); nil != err {
		return err
	}

	u, err := inv.Load(target)
	if nil != err {
		return err
	}
	g, err := state.AttachGovernor(u.Data)
	if nil != err {
		return err
	}
	g.SetCommitmentBatchingRate(state.DefaultCommitmentBatchingRate)
	return nil
}

// Governor - current governor settings
func (p *Processor) Governor(inv *ledger.Invocation) (*state.GovernorRecord, error) {
	u, err := p.load(inv, state.Governor)
	if nil != err {
		return nil, err
	}
	return state.AttachGovernor(u.Data)
}

// InitFeeVersion - open and fill the fee unit of the governor's version
func (p *Processor) InitFeeVersion(inv *ledger.Invocation, payer address.Address, target address.Address, version uint64, fees state.Fees) error {
	g, err := p.Governor(inv)
	if nil != err {
		return err
	}
	if version != g.FeeVersion() {
		return fault.ErrFeeVersion
	}

	d, err := p.catalog.Descriptor(state.Fee)
	if nil != err {
		return err
	}
	if _, err := opener.OpenWithOffset(inv, p.program, payer, target, d, version); nil != err {
		return err
	}

	u, err := inv.Load(target)
	if nil != err {
		return err
	}
	r, err := state.AttachFee(u.Data)
	if nil != err {
		return err
	}
	if err := r.Setup(fees); nil != err {
		return err
	}
	p.log.Infof("fee version: %d  fees: %+v", version, fees)
	return nil
}

// Fees - parameters of a fee version
func (p *Processor) Fees(inv *ledger.Invocation, version uint64) (state.Fees, error) {
	u, err := p.load(inv, state.Fee, version)
	if nil != err {
		return state.Fees{}, err
	}
	r, err := state.AttachFee(u.Data)
	if nil != err {
		return state.Fees{}, err
	}
	return r.Fees()
}
