// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/mode"
	"github.com/bitmark-inc/shardstore/rent"
)

func runFund(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := addressFlag(c, "address", ErrMissingAddress)
	if nil != err {
		return err
	}

	lamports := c.Uint64("lamports")
	if 0 == lamports {
		return ErrZeroLamports
	}

	if m.verbose {
		fmt.Fprintf(m.e, "fund: %s  lamports: %d\n", a, lamports)
	}

	err = ledger.Run(func(inv *ledger.Invocation) error {
		return inv.Fund(a, lamports)
	})
	if nil != err {
		return err
	}

	u, err := ledger.Get(a)
	if nil != err {
		return err
	}
	return printJson(m.w, describe(u, 0))
}

// create a program owned unit that can later be bound as a container child
func runAllocate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := addressFlag(c, "payer", ErrMissingPayer)
	if nil != err {
		return err
	}
	label := c.String("label")
	if "" == label {
		return ErrMissingLabel
	}
	size := c.Int("size")
	if size <= 0 {
		return ErrInvalidSize
	}

	a := address.FromLabel(label)
	if m.verbose {
		fmt.Fprintf(m.e, "allocate: %s  label: %q  size: %d\n", a, label, size)
	}

	err = ledger.Run(func(inv *ledger.Invocation) error {
		_, err := inv.Create(payer, a, size, m.processor.Program(), rent.Current().MinimumBalance(size))
		if nil != err {
			return err
		}

		// test chains validate children against a fixed balance
		if mode.IsTesting() {
			return inv.Fund(a, rent.TestingBalance)
		}
		return nil
	})
	if nil != err {
		return err
	}

	u, err := ledger.Get(a)
	if nil != err {
		return err
	}
	return printJson(m.w, describe(u, 0))
}
