// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "derive",
			Usage:     "show the derived address of a unit kind",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "",
					Usage: "*unit `KIND`",
				},
				cli.Uint64Flag{
					Name:  "offset, o",
					Value: 0,
					Usage: " instance `NUMBER` of a multi-instance kind",
				},
			},
			Action: runDerive,
		},
		{
			Name:      "fund",
			Usage:     "create lamports at an address (testing and local chains)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*base58 `ADDRESS` to fund",
				},
				cli.Uint64Flag{
					Name:  "lamports, l",
					Value: 0,
					Usage: "*`AMOUNT` to add",
				},
			},
			Action: runFund,
		},
		{
			Name:      "allocate",
			Usage:     "create a program owned unit at a labelled address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*base58 `ADDRESS` paying for the unit",
				},
				cli.StringFlag{
					Name:  "label, l",
					Value: "",
					Usage: "*`STRING` hashed to give the unit address",
				},
				cli.IntFlag{
					Name:  "size, s",
					Value: 0,
					Usage: "*data `BYTES`",
				},
			},
			Action: runAllocate,
		},
		{
			Name:      "open",
			Usage:     "open a single or multi-instance unit at its derived address",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "kind, k",
					Value: "",
					Usage: "*unit `KIND`",
				},
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*base58 `ADDRESS` paying for the unit",
				},
				cli.Uint64Flag{
					Name:  "offset, o",
					Value: 0,
					Usage: " instance `NUMBER` of a multi-instance kind",
				},
			},
			Action: runOpen,
		},
		{
			Name:      "open-layer",
			Usage:     "open every shard of the hashing layer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*base58 `ADDRESS` paying for the shards",
				},
			},
			Action: runOpenLayer,
		},
		{
			Name:      "setup-governor",
			Usage:     "open the governor with default settings",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*base58 `ADDRESS` paying for the unit",
				},
			},
			Action: runSetupGovernor,
		},
		{
			Name:   "governor",
			Usage:  "display governor settings",
			Action: runGovernor,
		},
		{
			Name:      "init-fee",
			Usage:     "open and fill the fee unit of the current version",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "payer, p",
					Value: "",
					Usage: "*base58 `ADDRESS` paying for the unit",
				},
				cli.Uint64Flag{
					Name:  "version, V",
					Value: 0,
					Usage: " fee `VERSION`",
				},
				cli.Uint64Flag{
					Name:  "lamports-per-tx",
					Usage: " `LAMPORTS` per transaction",
				},
				cli.Uint64Flag{
					Name:  "base-commitment-fee",
					Usage: " `LAMPORTS` per base commitment",
				},
				cli.Uint64Flag{
					Name:  "proof-fee",
					Usage: " `LAMPORTS` per proof",
				},
				cli.Uint64Flag{
					Name:  "relayer-hash-tx-fee",
					Usage: " `LAMPORTS` paid to a relayer per hashing round",
				},
				cli.Uint64Flag{
					Name:  "relayer-proof-tx-fee",
					Usage: " `LAMPORTS` paid to a relayer per proof transaction",
				},
				cli.Uint64Flag{
					Name:  "relayer-proof-reward",
					Usage: " `LAMPORTS` rewarded to a relayer per proof",
				},
			},
			Action: runInitFee,
		},
		{
			Name:      "fees",
			Usage:     "display the fees of a version",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "version, V",
					Value: 0,
					Usage: " fee `VERSION`",
				},
			},
			Action: runFees,
		},
		{
			Name:      "setup-storage",
			Usage:     "bind the children of the storage container",
			ArgsUsage: "CHILD...\n   base58 child addresses in shard order",
			Action:    runSetupStorage,
		},
		{
			Name:      "setup-nullifier",
			Usage:     "bind the children of the nullifier container",
			ArgsUsage: "CHILD...\n   base58 child addresses in shard order",
			Action:    runSetupNullifier,
		},
		{
			Name:      "hash-start",
			Usage:     "place a batch of leaves and start hashing",
			ArgsUsage: "DIGEST...\n   hex leaf digests (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "fee-payer, f",
					Value: "",
					Usage: "*base58 `ADDRESS` reimbursed on completion",
				},
			},
			Action: runHashStart,
		},
		{
			Name:      "hash-round",
			Usage:     "compute hashing rounds",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, c",
					Value: 1,
					Usage: " maximum rounds to compute `COUNT`",
				},
			},
			Action: runHashRound,
		},
		{
			Name:   "hash-finalize",
			Usage:  "finish a completed batch and reimburse its fee payer",
			Action: runHashFinalize,
		},
		{
			Name:   "hash-status",
			Usage:  "display progress of the current batch",
			Action: runHashStatus,
		},
		{
			Name:      "show",
			Usage:     "display a unit",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "address, a",
					Value: "",
					Usage: "*base58 `ADDRESS` of the unit",
				},
				cli.IntFlag{
					Name:  "bytes, b",
					Value: 64,
					Usage: " maximum data `BYTES` to display",
				},
			},
			Action: runShow,
		},
		{
			Name:      "list",
			Usage:     "list units in address order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " base58 `ADDRESS` to start from",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
				cli.BoolFlag{
					Name:  "program, P",
					Usage: " only units owned by the program",
				},
			},
			Action: runList,
		},
		{
			Name:  "version",
			Usage: "display shardctl version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
}
