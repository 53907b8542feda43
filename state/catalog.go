// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/bigarray"
	"github.com/bitmark-inc/shardstore/container"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/merkle"
	"github.com/bitmark-inc/shardstore/opener"
)

// derivation seeds
const (
	commitmentHashingSeed   = "commitment_hashing"
	commitmentQueueSeed     = "commitment_queue"
	poolSeed                = "pool"
	feeCollectorSeed        = "fee_collector"
	storageSeed             = "storage"
	nullifierSeed           = "nullifier"
	governorSeed            = "governor"
	baseCommitmentQueueSeed = "base_commitment_queue"
	feeSeed                 = "fee"
	hashingLayerSeed        = "hashing_layer"
)

// tree and queue dimensions
const (
	MerkleTreeHeight      = 20
	StorageValues         = 1<<(MerkleTreeHeight+1) - 1
	NullifierValues       = 1 << MerkleTreeHeight
	HashingBatchLeaves    = 1 << 16
	DefaultPairsPerRound  = 256
	queueHeaderSize       = 16
	CommitmentQueueSize   = queueHeaderSize + 256*merkle.DigestLength
	BaseCommitmentEntries = 64
	baseCommitmentSize    = merkle.DigestLength + 8
	BaseCommitmentSize    = queueHeaderSize + BaseCommitmentEntries*baseCommitmentSize
)

// Catalog - dimensions of every logical type
type Catalog struct {
	Storage       bigarray.Layout
	Nullifier     bigarray.Layout
	HashingLayer  bigarray.Layout
	PairsPerRound int
}

// Default - production dimensions
var Default = Catalog{
	Storage: bigarray.Layout{
		Size:  StorageValues,
		Width: merkle.DigestLength,
	},
	Nullifier: bigarray.Layout{
		Size:  NullifierValues,
		Width: merkle.DigestLength,
	},
	HashingLayer: bigarray.Layout{
		Size:  merkle.TreeSize(HashingBatchLeaves),
		Width: merkle.DigestLength,
	},
	PairsPerRound: DefaultPairsPerRound,
}

// StorageContainer - children of the storage unit
//
// children are written only by the program before they are read, so
// their previous content is not checked
func (c Catalog) StorageContainer() (container.Layout, error) {
	return container.LayoutFor(c.Storage, false)
}

// NullifierContainer - children of the nullifier unit
func (c Catalog) NullifierContainer() (container.Layout, error) {
	return container.LayoutFor(c.Nullifier, true)
}

// Container - child layout of a container kind
func (c Catalog) Container(k Kind) (container.Layout, error) {
	switch k {
	case Storage:
		return c.StorageContainer()
	case Nullifier:
		return c.NullifierContainer()
	default:
		return container.Layout{}, fault.ErrUnknownKind
	}
}

// Descriptor - opener view of a kind
func (c Catalog) Descriptor(k Kind) (opener.Descriptor, error) {
	switch k {
	case CommitmentHashing:
		return opener.NewDescriptor(commitmentHashingSeed, HashingRecordSize), nil
	case CommitmentQueue:
		return opener.NewDescriptor(commitmentQueueSeed, CommitmentQueueSize), nil
	case Pool:
		return opener.NewDescriptor(poolSeed, 0), nil
	case FeeCollector:
		return opener.NewDescriptor(feeCollectorSeed, 0), nil
	case Storage:
		l, err := c.StorageContainer()
		if nil != err {
			return nil, err
		}
		return opener.NewDescriptor(storageSeed, l.HeaderSize()), nil
	case Nullifier:
		l, err := c.NullifierContainer()
		if nil != err {
			return nil, err
		}
		return opener.NewDescriptor(nullifierSeed, l.HeaderSize()), nil
	case Governor:
		return opener.NewDescriptor(governorSeed, GovernorRecordSize), nil
	case BaseCommitmentQueue:
		return opener.NewDescriptor(baseCommitmentQueueSeed, BaseCommitmentSize), nil
	case Fee:
		return opener.NewDescriptor(feeSeed, FeeRecordSize), nil
	default:
		return nil, fault.ErrUnknownKind
	}
}

// Address - derived address of a kind, offsets only for multi instance
// kinds
func (c Catalog) Address(program address.Address, k Kind, offsets ...uint64) (address.Address, error) {
	if HashingLayer == k {
		return address.Address{}, fault.ErrUnknownKind
	}
	d, err := c.Descriptor(k)
	if nil != err {
		return address.Address{}, err
	}
	a, _, err := opener.Find(program, d, offsets...)
	return a, err
}

type layerDescriptor struct {
	layout bigarray.Layout
}

func (d *layerDescriptor) Seed() []byte            { return []byte(hashingLayerSeed) }
func (d *layerDescriptor) Layout() bigarray.Layout { return d.layout }

// Layer - sharded array holding the tree being hashed
func (c Catalog) Layer() bigarray.Descriptor {
	return &layerDescriptor{
		layout: c.HashingLayer,
	}
}
