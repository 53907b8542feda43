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
	"github.com/bitmark-inc/shardstore/processor"
)

type bindFunc func(p *processor.Processor, inv *ledger.Invocation, children []address.Address) error

func runSetupStorage(c *cli.Context) error {
	return bindChildren(c, "storage", (*processor.Processor).SetupStorage)
}

func runSetupNullifier(c *cli.Context) error {
	return bindChildren(c, "nullifier", (*processor.Processor).SetupNullifier)
}

func bindChildren(c *cli.Context, name string, bind bindFunc) error {

	m := c.App.Metadata["config"].(*metadata)

	children, err := parseAddresses(c.Args())
	if nil != err {
		return err
	}

	if m.verbose {
		for i, a := range children {
			fmt.Fprintf(m.e, "%s child[%d]: %s\n", name, i, a)
		}
	}

	err = ledger.Run(func(inv *ledger.Invocation) error {
		return bind(m.processor, inv, children)
	})
	if nil != err {
		return err
	}
	return printJson(m.w, children)
}
