// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/state"
)

type governorInfo struct {
	FeeVersion             uint64 `json:"fee_version"`
	CommitmentBatchingRate uint32 `json:"commitment_batching_rate"`
}

func runSetupGovernor(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := addressFlag(c, "payer", ErrMissingPayer)
	if nil != err {
		return err
	}
	target, err := m.processor.Address(state.Governor)
	if nil != err {
		return err
	}

	err = ledger.Run(func(inv *ledger.Invocation) error {
		return m.processor.SetupGovernor(inv, payer, target)
	})
	if nil != err {
		return err
	}
	return runGovernor(c)
}

func runGovernor(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info := governorInfo{}
	err := ledger.Run(func(inv *ledger.Invocation) error {
		g, err := m.processor.Governor(inv)
		if nil != err {
			return err
		}
		info.FeeVersion = g.FeeVersion()
		info.CommitmentBatchingRate = g.CommitmentBatchingRate()
		return nil
	})
	if nil != err {
		return err
	}
	return printJson(m.w, info)
}

func runInitFee(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payer, err := addressFlag(c, "payer", ErrMissingPayer)
	if nil != err {
		return err
	}
	version := c.Uint64("version")
	target, err := m.processor.Address(state.Fee, version)
	if nil != err {
		return err
	}

	fees := state.Fees{
		LamportsPerTx:      c.Uint64("lamports-per-tx"),
		BaseCommitmentFee:  c.Uint64("base-commitment-fee"),
		ProofFee:           c.Uint64("proof-fee"),
		RelayerHashTxFee:   c.Uint64("relayer-hash-tx-fee"),
		RelayerProofTxFee:  c.Uint64("relayer-proof-tx-fee"),
		RelayerProofReward: c.Uint64("relayer-proof-reward"),
	}
	if m.verbose {
		fmt.Fprintf(m.e, "fee version: %d  address: %s\n", version, target)
	}

	err = ledger.Run(func(inv *ledger.Invocation) error {
		return m.processor.InitFeeVersion(inv, payer, target, version, fees)
	})
	if nil != err {
		return err
	}
	return printJson(m.w, fees)
}

func runFees(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var fees state.Fees
	err := ledger.Run(func(inv *ledger.Invocation) error {
		var err error
		fees, err = m.processor.Fees(inv, c.Uint64("version"))
		return err
	})
	if nil != err {
		return err
	}
	return printJson(m.w, fees)
}
