// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/computation"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/opener"
	"github.com/bitmark-inc/shardstore/rent"
	"github.com/bitmark-inc/shardstore/state"
)

var program = address.FromLabel("state-test-program")

func TestKindNames(t *testing.T) {
	for k := state.CommitmentHashing; k <= state.HashingLayer; k += 1 {
		parsed, err := state.ParseKind(k.String())
		require.NoError(t, err, "kind: %d", k)
		assert.Equal(t, k, parsed, "kind: %s", k)
	}
	_, err := state.ParseKind("no-such-kind")
	assert.Equal(t, fault.ErrUnknownKind, err)
	assert.Equal(t, "unknown", state.Kind(99).String())
}

func TestKindInstances(t *testing.T) {
	single := []state.Kind{state.CommitmentHashing, state.CommitmentQueue, state.Pool, state.FeeCollector, state.Storage, state.Nullifier}
	for _, k := range single {
		assert.True(t, k.IsSingleInstance(), "%s single", k)
		assert.False(t, k.IsMultiInstance(), "%s multi", k)
	}
	assert.True(t, state.BaseCommitmentQueue.IsMultiInstance(), "base commitment queue")
	for _, k := range []state.Kind{state.Governor, state.Fee, state.HashingLayer} {
		assert.False(t, k.IsSingleInstance(), "%s single", k)
		assert.False(t, k.IsMultiInstance(), "%s multi", k)
	}
}

func TestDefaultStorageLayout(t *testing.T) {
	l, err := state.Default.StorageContainer()
	require.NoError(t, err)
	assert.Equal(t, 7, l.Count, "children")
	assert.Equal(t, 10_000_000, l.IntermediarySize, "intermediary")
	assert.Equal(t, 7_108_832, l.LastSize, "last")
	assert.False(t, l.RequireZeroed, "zero check")
	assert.Equal(t, 1+7*32, l.HeaderSize(), "header")
}

func TestDefaultNullifierLayout(t *testing.T) {
	l, err := state.Default.NullifierContainer()
	require.NoError(t, err)
	assert.Equal(t, 4, l.Count, "children")
	assert.Equal(t, 10_000_000, l.IntermediarySize, "intermediary")
	assert.Equal(t, 3_554_432, l.LastSize, "last")
	assert.True(t, l.RequireZeroed, "zero check")
}

func TestDescriptors(t *testing.T) {
	sizes := map[state.Kind]int{
		state.CommitmentHashing: 57,
		state.Pool:              0,
		state.FeeCollector:      0,
		state.Storage:           225,
		state.Nullifier:         129,
		state.Governor:          12,
		state.Fee:               49,
	}
	for k, size := range sizes {
		d, err := state.Default.Descriptor(k)
		require.NoError(t, err, "kind: %s", k)
		assert.Equal(t, size, d.Size(), "kind: %s", k)
	}

	_, err := state.Default.Descriptor(state.HashingLayer)
	assert.Equal(t, fault.ErrUnknownKind, err, "layer is sharded")
	_, err = state.Default.Address(program, state.HashingLayer)
	assert.Equal(t, fault.ErrUnknownKind, err, "layer address")

	seen := make(map[address.Address]state.Kind)
	for k := state.CommitmentHashing; k < state.HashingLayer; k += 1 {
		a, err := state.Default.Address(program, k)
		require.NoError(t, err, "kind: %s", k)
		previous, ok := seen[a]
		assert.False(t, ok, "kind: %s shares address with: %s", k, previous)
		seen[a] = k
	}

	first, err := state.Default.Address(program, state.BaseCommitmentQueue, 0)
	require.NoError(t, err)
	second, err := state.Default.Address(program, state.BaseCommitmentQueue, 1)
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "offsets")
}

func TestGovernorRecord(t *testing.T) {
	_, err := state.AttachGovernor(make([]byte, 11))
	assert.Equal(t, fault.ErrTruncatedRecord, err)

	data := make([]byte, state.GovernorRecordSize)
	g, err := state.AttachGovernor(data)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), g.FeeVersion(), "initial fee version")

	g.SetFeeVersion(3)
	g.SetCommitmentBatchingRate(5)
	assert.Equal(t, uint64(3), g.FeeVersion())
	assert.Equal(t, uint32(5), g.CommitmentBatchingRate())
	assert.Equal(t, byte(3), data[0], "little endian version")
	assert.Equal(t, byte(5), data[8], "little endian rate")
}

func TestFeeRecord(t *testing.T) {
	data := make([]byte, state.FeeRecordSize)
	r, err := state.AttachFee(data)
	require.NoError(t, err)

	_, err = r.Fees()
	assert.Equal(t, fault.ErrNotInitialised, err, "before setup")

	fees := state.Fees{
		LamportsPerTx:      1,
		BaseCommitmentFee:  2,
		ProofFee:           3,
		RelayerHashTxFee:   4,
		RelayerProofTxFee:  5,
		RelayerProofReward: 6,
	}
	require.NoError(t, r.Setup(fees))
	assert.True(t, r.IsInitialised())

	got, err := r.Fees()
	require.NoError(t, err)
	assert.Equal(t, fees, got)
	assert.Equal(t, byte(4), data[1+3*8], "hash tx fee position")

	assert.Equal(t, fault.ErrAlreadyInitialised, r.Setup(state.Fees{}), "second setup")
}

func TestHashingRecord(t *testing.T) {
	data := make([]byte, state.HashingRecordSize)
	h, err := state.AttachHashing(data)
	require.NoError(t, err)

	require.NoError(t, h.Start(3, program))
	h.SetLeafCount(17)
	assert.Equal(t, uint64(17), h.LeafCount())
	assert.Equal(t, uint64(3), h.TotalRounds())
	assert.Equal(t, byte(17), data[computation.RecordSize], "leaf count follows tracker")

	_, err = state.AttachHashing(data[:state.HashingRecordSize-1])
	assert.Equal(t, fault.ErrTruncatedRecord, err)
}

func TestPoolReimburser(t *testing.T) {
	payer := address.FromLabel("reimburse-payer")
	relayer := address.FromLabel("reimburse-relayer")
	d, err := state.Default.Descriptor(state.Pool)
	require.NoError(t, err)
	pool, _, err := opener.Find(program, d)
	require.NoError(t, err)
	minimum := rent.Current().MinimumBalance(0)

	err = ledger.Run(func(inv *ledger.Invocation) error {
		if err := inv.Fund(payer, 10*minimum); nil != err {
			return err
		}
		if _, err := opener.OpenWithoutOffset(inv, program, payer, pool, d); nil != err {
			return err
		}
		return inv.Transfer(payer, pool, 1000)
	})
	require.NoError(t, err)

	err = ledger.Run(func(inv *ledger.Invocation) error {
		return state.NewPoolReimburser(inv, pool, 100).Reimburse(relayer, 10, 10)
	})
	require.NoError(t, err)

	u, err := ledger.Get(relayer)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), u.Lamports, "reimbursed")

	u, err = ledger.Get(pool)
	require.NoError(t, err)
	assert.Equal(t, minimum, u.Lamports, "pool keeps minimum")

	err = ledger.Run(func(inv *ledger.Invocation) error {
		return state.NewPoolReimburser(inv, pool, 1).Reimburse(relayer, 1, 1)
	})
	assert.Equal(t, fault.ErrInsufficientFunds, err, "pool at minimum")
}
