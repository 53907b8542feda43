// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/merkle"
	"github.com/bitmark-inc/shardstore/state"
)

// required base58 address flag
func addressFlag(c *cli.Context, name string, missing error) (address.Address, error) {
	s := c.String(name)
	if "" == s {
		return address.Address{}, missing
	}
	a, err := address.FromBase58(s)
	if nil != err {
		return address.Address{}, fmt.Errorf("%s: %q: %s", name, s, err)
	}
	return a, nil
}

func kindFlag(c *cli.Context) (state.Kind, error) {
	s := c.String("kind")
	if "" == s {
		return 0, ErrMissingKind
	}
	return state.ParseKind(s)
}

func parseAddresses(args []string) ([]address.Address, error) {
	addresses := make([]address.Address, len(args))
	for i, s := range args {
		a, err := address.FromBase58(s)
		if nil != err {
			return nil, fmt.Errorf("address[%d]: %q: %s", i, s, err)
		}
		addresses[i] = a
	}
	return addresses, nil
}

func parseDigests(args []string) ([]merkle.Digest, error) {
	if 0 == len(args) {
		return nil, ErrMissingDigests
	}
	digests := make([]merkle.Digest, len(args))
	for i, s := range args {
		if err := digests[i].UnmarshalText([]byte(s)); nil != err {
			return nil, fmt.Errorf("digest[%d]: %q: %s", i, s, err)
		}
	}
	return digests, nil
}

// unitInfo - printable unit
type unitInfo struct {
	Address  address.Address `json:"address"`
	Lamports uint64          `json:"lamports"`
	Owner    address.Address `json:"owner"`
	Size     int             `json:"size"`
	Data     string          `json:"data,omitempty"`
}

// describe a unit showing at most limit bytes of its data
func describe(u *ledger.Unit, limit int) unitInfo {
	info := unitInfo{
		Address:  u.Address,
		Lamports: u.Lamports,
		Owner:    u.Owner,
		Size:     u.Capacity(),
	}
	if limit > len(u.Data) {
		limit = len(u.Data)
	}
	if limit > 0 {
		info.Data = hex.EncodeToString(u.Data[:limit])
	}
	return info
}
