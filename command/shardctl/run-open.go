// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
)

func runOpen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	k, err := kindFlag(c)
	if nil != err {
		return err
	}
	payer, err := addressFlag(c, "payer", ErrMissingPayer)
	if nil != err {
		return err
	}
	offset := c.Uint64("offset")

	var target address.Address
	switch {
	case k.IsSingleInstance():
		target, err = m.processor.Address(k)
	case k.IsMultiInstance():
		target, err = m.processor.Address(k, offset)
	default:
		return fault.ErrUnknownKind
	}
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "open: %s  address: %s  payer: %s\n", k, target, payer)
	}

	err = ledger.Run(func(inv *ledger.Invocation) error {
		if k.IsSingleInstance() {
			return m.processor.OpenSingleInstance(inv, k, payer, target)
		}
		return m.processor.OpenMultiInstance(inv, k, payer, target, offset)
	})
	if nil != err {
		return err
	}

	u, err := ledger.Get(target)
	if nil != err {
		return err
	}
	return printJson(m.w, describe(u, 0))
}

func runOpenLayer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := addressFlag(c, "payer", ErrMissingPayer)
	if nil != err {
		return err
	}

	var shards []address.Address
	err = ledger.Run(func(inv *ledger.Invocation) error {
		var err error
		shards, err = m.processor.OpenHashingLayer(inv, payer)
		return err
	})
	if nil != err {
		return err
	}

	return printJson(m.w, shards)
}
