// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package state - logical unit types of the program
package state

import (
	"github.com/bitmark-inc/shardstore/fault"
)

// Kind - a logical unit type
type Kind int

// all kinds
const (
	CommitmentHashing Kind = iota
	CommitmentQueue
	Pool
	FeeCollector
	Storage
	Nullifier
	Governor
	BaseCommitmentQueue
	Fee
	HashingLayer
)

var kindNames = map[Kind]string{
	CommitmentHashing:   "commitment-hashing",
	CommitmentQueue:     "commitment-queue",
	Pool:                "pool",
	FeeCollector:        "fee-collector",
	Storage:             "storage",
	Nullifier:           "nullifier",
	Governor:            "governor",
	BaseCommitmentQueue: "base-commitment-queue",
	Fee:                 "fee",
	HashingLayer:        "hashing-layer",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind - kind from its name
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fault.ErrUnknownKind
}

// IsSingleInstance - kinds opened once at an address derived without
// an offset
func (k Kind) IsSingleInstance() bool {
	switch k {
	case CommitmentHashing, CommitmentQueue, Pool, FeeCollector, Storage, Nullifier:
		return true
	default:
		return false
	}
}

// IsMultiInstance - kinds opened once per offset
func (k Kind) IsMultiInstance() bool {
	return BaseCommitmentQueue == k
}
