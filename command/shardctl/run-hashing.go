// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/merkle"
	"github.com/bitmark-inc/shardstore/processor"
)

type roundInfo struct {
	Computed int                      `json:"computed"`
	Status   *processor.HashingStatus `json:"status"`
}

type rootInfo struct {
	Root merkle.Digest `json:"root"`
}

func runHashStart(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	feePayer, err := addressFlag(c, "fee-payer", ErrMissingPayer)
	if nil != err {
		return err
	}
	leaves, err := parseDigests(c.Args())
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "leaves: %d  fee payer: %s\n", len(leaves), feePayer)
	}

	err = ledger.Run(func(inv *ledger.Invocation) error {
		return m.processor.StartHashing(inv, feePayer, leaves)
	})
	if nil != err {
		return err
	}
	return runHashStatus(c)
}

// each round is a separate invocation
func runHashRound(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return ErrInvalidCount
	}

	info := roundInfo{}
	for info.Computed < count {
		var round uint64
		err := ledger.Run(func(inv *ledger.Invocation) error {
			var err error
			round, err = m.processor.ComputeHashing(inv)
			return err
		})
		if nil != err {
			if 0 == info.Computed {
				return err
			}
			m.log.Debugf("stopped after: %d rounds  error: %s", info.Computed, err)
			break
		}
		info.Computed += 1
		if m.verbose {
			fmt.Fprintf(m.e, "round: %d\n", round)
		}
	}

	err := ledger.Run(func(inv *ledger.Invocation) error {
		var err error
		info.Status, err = m.processor.Hashing(inv)
		return err
	})
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

func runHashFinalize(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info := rootInfo{}
	err := ledger.Run(func(inv *ledger.Invocation) error {
		var err error
		info.Root, err = m.processor.FinalizeHashing(inv)
		return err
	})
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

func runHashStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var status *processor.HashingStatus
	err := ledger.Run(func(inv *ledger.Invocation) error {
		var err error
		status, err = m.processor.Hashing(inv)
		return err
	})
	if nil != err {
		return err
	}
	return printJson(m.w, status)
}
