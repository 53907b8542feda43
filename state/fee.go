// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"encoding/binary"

	"github.com/bitmark-inc/shardstore/fault"
)

// FeeRecordSize - initialised flag followed by six uint64 parameters
const FeeRecordSize = 1 + 6*8

// Fees - parameters of one fee version
type Fees struct {
	LamportsPerTx      uint64 `json:"lamports_per_tx"`
	BaseCommitmentFee  uint64 `json:"base_commitment_fee"`
	ProofFee           uint64 `json:"proof_fee"`
	RelayerHashTxFee   uint64 `json:"relayer_hash_tx_fee"`
	RelayerProofTxFee  uint64 `json:"relayer_proof_tx_fee"`
	RelayerProofReward uint64 `json:"relayer_proof_reward"`
}

func (f *Fees) fields() []*uint64 {
	return []*uint64{
		&f.LamportsPerTx,
		&f.BaseCommitmentFee,
		&f.ProofFee,
		&f.RelayerHashTxFee,
		&f.RelayerProofTxFee,
		&f.RelayerProofReward,
	}
}

// FeeRecord - view of a fee unit's data
type FeeRecord struct {
	data []byte
}

// AttachFee - view of a fee unit's data
func AttachFee(data []byte) (*FeeRecord, error) {
	if len(data) < FeeRecordSize {
		return nil, fault.ErrTruncatedRecord
	}
	return &FeeRecord{data: data[:FeeRecordSize]}, nil
}

// IsInitialised - true once Setup has run
func (r *FeeRecord) IsInitialised() bool {
	return 0 != r.data[0]
}

// Setup - write the parameters once
func (r *FeeRecord) Setup(fees Fees) error {
	if r.IsInitialised() {
		return fault.ErrAlreadyInitialised
	}
	for i, p := range fees.fields() {
		binary.LittleEndian.PutUint64(r.data[1+i*8:], *p)
	}
	r.data[0] = 1
	return nil
}

// Fees - the recorded parameters
func (r *FeeRecord) Fees() (Fees, error) {
	var fees Fees
	if !r.IsInitialised() {
		return fees, fault.ErrNotInitialised
	}
	for i, p := range fees.fields() {
		*p = binary.LittleEndian.Uint64(r.data[1+i*8:])
	}
	return fees, nil
}
