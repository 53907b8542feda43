// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/bigarray"
	"github.com/bitmark-inc/shardstore/opener"
	"github.com/bitmark-inc/shardstore/state"
)

type derivedInfo struct {
	Kind    string            `json:"kind"`
	Offset  *uint64           `json:"offset,omitempty"`
	Address *address.Address  `json:"address,omitempty"`
	Bump    *uint8            `json:"bump,omitempty"`
	Shards  []address.Address `json:"shards,omitempty"`
	Size    int               `json:"size"`
}

// kinds partitioned by an offset
func hasOffset(k state.Kind) bool {
	return k.IsMultiInstance() || state.Fee == k
}

func runDerive(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	k, err := kindFlag(c)
	if nil != err {
		return err
	}

	program := m.processor.Program()
	catalog := m.processor.Catalog()
	info := derivedInfo{
		Kind: k.String(),
	}

	if state.HashingLayer == k {
		shards, err := bigarray.ShardAddresses(program, catalog.Layer())
		if nil != err {
			return err
		}
		info.Shards = shards
		info.Size = catalog.HashingLayer.ByteSize()
		return printJson(m.w, info)
	}

	d, err := catalog.Descriptor(k)
	if nil != err {
		return err
	}

	offsets := []uint64{}
	if hasOffset(k) {
		offset := c.Uint64("offset")
		offsets = append(offsets, offset)
		info.Offset = &offset
	}

	a, bump, err := opener.Find(program, d, offsets...)
	if nil != err {
		return err
	}
	info.Address = &a
	info.Bump = &bump
	info.Size = d.Size()

	return printJson(m.w, info)
}
