// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package computation - progress record for work split over many
// invocations
//
// record layout:
//
//   active     byte    0x00 idle, 0x01 active
//   round      uint64  little endian, rounds completed
//   total      uint64  little endian, rounds required
//   fee payer  [32]byte
package computation

//go:generate mockgen -destination=mocks/reimburser.go -package=mocks github.com/bitmark-inc/shardstore/computation Reimburser

import (
	"encoding/binary"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/fault"
)

// RecordSize - bytes of the persisted record
const RecordSize = 1 + 8 + 8 + address.Length

const (
	activeOffset = 0
	roundOffset  = 1
	totalOffset  = 9
	payerOffset  = 17
)

// Reimburser - repays the fee payer of a finished computation
type Reimburser interface {
	Reimburse(feePayer address.Address, round uint64, totalRounds uint64) error
}

// Tracker - view of a record held in unit data
type Tracker struct {
	record []byte
}

// Attach - tracker over the first RecordSize bytes of region
//
// changes are written straight through to region
func Attach(region []byte) (*Tracker, error) {
	if len(region) < RecordSize {
		return nil, fault.ErrTruncatedRecord
	}
	return &Tracker{
		record: region[:RecordSize],
	}, nil
}

// IsActive - true between Start and Finalize
func (t *Tracker) IsActive() bool {
	return 0 != t.record[activeOffset]
}

// Round - rounds completed so far
func (t *Tracker) Round() uint64 {
	return binary.LittleEndian.Uint64(t.record[roundOffset:totalOffset])
}

// TotalRounds - rounds required
func (t *Tracker) TotalRounds() uint64 {
	return binary.LittleEndian.Uint64(t.record[totalOffset:payerOffset])
}

// FeePayer - who funded the computation
func (t *Tracker) FeePayer() address.Address {
	var a address.Address
	copy(a[:], t.record[payerOffset:RecordSize])
	return a
}

// IsComplete - true when every required round has been done
//
// an idle record holds zero of zero rounds so reads as complete,
// callers that need a live computation check IsActive first
func (t *Tracker) IsComplete() bool {
	return t.Round() == t.TotalRounds()
}

// Start - activate for a new computation
func (t *Tracker) Start(totalRounds uint64, feePayer address.Address) error {
	if t.IsActive() {
		return fault.ErrAlreadyActive
	}
	t.record[activeOffset] = 1
	binary.LittleEndian.PutUint64(t.record[roundOffset:totalOffset], 0)
	binary.LittleEndian.PutUint64(t.record[totalOffset:payerOffset], totalRounds)
	copy(t.record[payerOffset:RecordSize], feePayer[:])
	return nil
}

// Advance - record one more completed round
func (t *Tracker) Advance() error {
	if !t.IsActive() {
		return fault.ErrNotActive
	}
	round := t.Round()
	if round == t.TotalRounds() {
		return fault.ErrAlreadyComplete
	}
	binary.LittleEndian.PutUint64(t.record[roundOffset:totalOffset], round+1)
	return nil
}

// Finalize - reimburse the fee payer and return to idle
//
// the record is left unchanged if the reimbursement fails
func (t *Tracker) Finalize(r Reimburser) error {
	if !t.IsActive() {
		return fault.ErrNotActive
	}
	if !t.IsComplete() {
		return fault.ErrNotComplete
	}

	err := r.Reimburse(t.FeePayer(), t.Round(), t.TotalRounds())
	if nil != err {
		return err
	}

	for i := range t.record {
		t.record[i] = 0
	}
	return nil
}
