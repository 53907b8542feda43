// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/ledger"
)

type listInfo struct {
	Units []unitInfo       `json:"units"`
	Next  *address.Address `json:"next,omitempty"`
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	a, err := addressFlag(c, "address", ErrMissingAddress)
	if nil != err {
		return err
	}

	u, err := ledger.Get(a)
	if nil != err {
		return err
	}
	return printJson(m.w, describe(u, c.Int("bytes")))
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return ErrInvalidCount
	}

	start := address.Address{}
	if "" != c.String("start") {
		var err error
		start, err = addressFlag(c, "start", ErrMissingAddress)
		if nil != err {
			return err
		}
	}

	info := listInfo{
		Units: make([]unitInfo, 0, count),
	}

	if c.Bool("program") {
		err := ledger.Each(m.processor.Program(), func(u *ledger.Unit) error {
			if len(info.Units) < count && u.Address.Compare(start) >= 0 {
				info.Units = append(info.Units, describe(u, 0))
			}
			return nil
		})
		if nil != err {
			return err
		}
		return printJson(m.w, info)
	}

	units, next, err := ledger.List(start, count)
	if nil != err {
		return err
	}
	for _, u := range units {
		info.Units = append(info.Units, describe(u, 0))
	}
	if !next.IsZero() {
		info.Next = &next
	}
	return printJson(m.w, info)
}
