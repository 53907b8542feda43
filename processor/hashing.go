// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package processor

import (
	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/bigarray"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/merkle"
	"github.com/bitmark-inc/shardstore/state"
)

// commitment hashing builds the tree of a batch of leaves in the
// hashing layer, a fixed number of parents per invocation, so that any
// number of callers can drive it to completion

// OpenHashingLayer - open every shard of the hashing layer
func (p *Processor) OpenHashingLayer(inv *ledger.Invocation, payer address.Address) ([]address.Address, error) {
	return bigarray.OpenShards(inv, p.program, payer, p.catalog.Layer())
}

func (p *Processor) hashing(inv *ledger.Invocation) (*state.HashingRecord, *bigarray.Array[merkle.Digest], error) {
	u, err := p.load(inv, state.CommitmentHashing)
	if nil != err {
		return nil, nil, err
	}
	h, err := state.AttachHashing(u.Data)
	if nil != err {
		return nil, nil, err
	}
	layer, err := bigarray.Load[merkle.Digest](inv, p.program, p.catalog.Layer(), merkle.DigestCodec{})
	if nil != err {
		return nil, nil, err
	}
	return h, layer, nil
}

// HashingStatus - progress of the current batch
type HashingStatus struct {
	Active      bool   `json:"active"`
	Round       uint64 `json:"round"`
	TotalRounds uint64 `json:"total_rounds"`
	LeafCount   uint64 `json:"leaf_count"`
	FeePayer    string `json:"fee_payer"`
}

// Hashing - status of the commitment hashing
func (p *Processor) Hashing(inv *ledger.Invocation) (*HashingStatus, error) {
	u, err := p.load(inv, state.CommitmentHashing)
	if nil != err {
		return nil, err
	}
	h, err := state.AttachHashing(u.Data)
	if nil != err {
		return nil, err
	}
	return &HashingStatus{
		Active:      h.IsActive(),
		Round:       h.Round(),
		TotalRounds: h.TotalRounds(),
		LeafCount:   h.LeafCount(),
		FeePayer:    h.FeePayer().String(),
	}, nil
}

// StartHashing - place a batch of leaves and start the computation
func (p *Processor) StartHashing(inv *ledger.Invocation, feePayer address.Address, leaves []merkle.Digest) error {
	h, layer, err := p.hashing(inv)
	if nil != err {
		return err
	}
	if 0 == len(leaves) || merkle.TreeSize(len(leaves)) > layer.Len() {
		return fault.ErrInvalidRange
	}

	rounds := merkle.Rounds(len(leaves), p.catalog.PairsPerRound)
	if err := h.Start(rounds, feePayer); nil != err {
		return err
	}
	h.SetLeafCount(uint64(len(leaves)))
	for i, d := range leaves {
		layer.Set(i, d)
	}

	p.log.Infof("hashing started: leaves: %d  rounds: %d  fee payer: %s", len(leaves), rounds, feePayer)
	return nil
}

// ComputeHashing - hash the next round, returns the rounds completed
func (p *Processor) ComputeHashing(inv *ledger.Invocation) (uint64, error) {
	h, layer, err := p.hashing(inv)
	if nil != err {
		return 0, err
	}
	if !h.IsActive() {
		return 0, fault.ErrNotActive
	}
	if h.IsComplete() {
		return 0, fault.ErrAlreadyComplete
	}

	err = merkle.HashRound(layer, int(h.LeafCount()), h.Round(), p.catalog.PairsPerRound)
	if nil != err {
		return 0, err
	}
	if err := h.Advance(); nil != err {
		return 0, err
	}
	return h.Round(), nil
}

// FinalizeHashing - reimburse the fee payer and return the root
//
// the fee payer receives the relayer hash fee of the governor's fee
// version for every round
func (p *Processor) FinalizeHashing(inv *ledger.Invocation) (merkle.Digest, error) {
	h, layer, err := p.hashing(inv)
	if nil != err {
		return merkle.Digest{}, err
	}
	if !h.IsActive() {
		return merkle.Digest{}, fault.ErrNotActive
	}
	if !h.IsComplete() {
		return merkle.Digest{}, fault.ErrNotComplete
	}

	g, err := p.Governor(inv)
	if nil != err {
		return merkle.Digest{}, err
	}
	fees, err := p.Fees(inv, g.FeeVersion())
	if nil != err {
		return merkle.Digest{}, err
	}
	pool, err := p.Address(state.Pool)
	if nil != err {
		return merkle.Digest{}, err
	}

	leafCount := int(h.LeafCount())
	root := merkle.Root(layer, leafCount)
	if err := h.Finalize(state.NewPoolReimburser(inv, pool, fees.RelayerHashTxFee)); nil != err {
		return merkle.Digest{}, err
	}
	h.SetLeafCount(0)

	p.log.Infof("hashing finalized: leaves: %d  root: %s", leafCount, root)
	return root, nil
}
