// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"encoding/binary"

	"github.com/bitmark-inc/shardstore/fault"
)

// governor record:
//
//   fee version               uint64  little endian
//   commitment batching rate  uint32  little endian
const GovernorRecordSize = 8 + 4

// DefaultCommitmentBatchingRate - batches of 2^rate commitments
const DefaultCommitmentBatchingRate = 0

// GovernorRecord - program wide settings
type GovernorRecord struct {
	data []byte
}

// AttachGovernor - view of a governor unit's data
func AttachGovernor(data []byte) (*GovernorRecord, error) {
	if len(data) < GovernorRecordSize {
		return nil, fault.ErrTruncatedRecord
	}
	return &GovernorRecord{data: data[:GovernorRecordSize]}, nil
}

// FeeVersion - the only fee version that may be initialised
func (g *GovernorRecord) FeeVersion() uint64 {
	return binary.LittleEndian.Uint64(g.data[0:8])
}

// SetFeeVersion - select a fee version
func (g *GovernorRecord) SetFeeVersion(version uint64) {
	binary.LittleEndian.PutUint64(g.data[0:8], version)
}

// CommitmentBatchingRate - log2 of commitments per batch
func (g *GovernorRecord) CommitmentBatchingRate() uint32 {
	return binary.LittleEndian.Uint32(g.data[8:12])
}

// SetCommitmentBatchingRate - change the batching rate
func (g *GovernorRecord) SetCommitmentBatchingRate(rate uint32) {
	binary.LittleEndian.PutUint32(g.data[8:12], rate)
}
