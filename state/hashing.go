// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"encoding/binary"

	"github.com/bitmark-inc/shardstore/computation"
	"github.com/bitmark-inc/shardstore/fault"
)

// HashingRecordSize - tracker followed by the leaf count
const HashingRecordSize = computation.RecordSize + 8

// HashingRecord - progress of the commitment hashing
type HashingRecord struct {
	*computation.Tracker
	data []byte
}

// AttachHashing - view of the commitment hashing unit's data
func AttachHashing(data []byte) (*HashingRecord, error) {
	if len(data) < HashingRecordSize {
		return nil, fault.ErrTruncatedRecord
	}
	tracker, err := computation.Attach(data)
	if nil != err {
		return nil, err
	}
	return &HashingRecord{
		Tracker: tracker,
		data:    data[:HashingRecordSize],
	}, nil
}

// LeafCount - leaves of the batch being hashed
func (h *HashingRecord) LeafCount() uint64 {
	return binary.LittleEndian.Uint64(h.data[computation.RecordSize:])
}

// SetLeafCount - record the batch size
func (h *HashingRecord) SetLeafCount(n uint64) {
	binary.LittleEndian.PutUint64(h.data[computation.RecordSize:], n)
}
