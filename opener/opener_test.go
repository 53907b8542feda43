// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package opener_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/opener"
	"github.com/bitmark-inc/shardstore/rent"
)

var (
	program = address.FromLabel("opener-test-program")
	payer   = address.FromLabel("opener-test-payer")
)

func fundPayer(t *testing.T) {
	err := ledger.Run(func(inv *ledger.Invocation) error {
		return inv.Fund(payer, 1_000_000_000)
	})
	require.NoError(t, err)
}

func TestOpenSingleInstance(t *testing.T) {
	fundPayer(t)
	d := opener.NewDescriptor("single", 40)

	target, bump, err := opener.Find(program, d)
	require.NoError(t, err)

	err = ledger.Run(func(inv *ledger.Invocation) error {
		b, err := opener.OpenWithoutOffset(inv, program, payer, target, d)
		assert.Equal(t, bump, b, "bump")
		return err
	})
	require.NoError(t, err)

	u, err := ledger.Get(target)
	require.NoError(t, err)
	assert.Equal(t, 40, u.Capacity(), "capacity")
	assert.True(t, u.IsOwnedBy(program), "owner")
	assert.True(t, u.IsZeroed(), "zeroed")
	assert.Equal(t, rent.Current().MinimumBalance(40), u.Lamports, "rent exempt")

	err = ledger.Run(func(inv *ledger.Invocation) error {
		_, err := opener.OpenWithoutOffset(inv, program, payer, target, d)
		return err
	})
	assert.Equal(t, fault.ErrAlreadyExists, err, "second open")
}

func TestOpenAddressMismatch(t *testing.T) {
	fundPayer(t)
	d := opener.NewDescriptor("mismatch", 8)
	wrong := address.FromLabel("not-derived")

	err := ledger.Run(func(inv *ledger.Invocation) error {
		_, err := opener.OpenWithoutOffset(inv, program, payer, wrong, d)
		return err
	})
	assert.Equal(t, fault.ErrAddressMismatch, err)
	assert.True(t, fault.IsErrDerivation(err), "class")

	_, err = ledger.Get(wrong)
	assert.Equal(t, fault.ErrUnitNotFound, err, "unit created on mismatch")

	// right seed, other program
	other, _, err := opener.Find(address.FromLabel("other"), d)
	require.NoError(t, err)
	err = ledger.Run(func(inv *ledger.Invocation) error {
		_, err := opener.OpenWithoutOffset(inv, program, payer, other, d)
		return err
	})
	assert.Equal(t, fault.ErrAddressMismatch, err, "program scope")
}

func TestOpenMultiInstance(t *testing.T) {
	fundPayer(t)
	d := opener.NewDescriptor("multi", 16)

	targets := make([]address.Address, 3)
	for i := range targets {
		a, _, err := opener.Find(program, d, uint64(i))
		require.NoError(t, err)
		targets[i] = a

		err = ledger.Run(func(inv *ledger.Invocation) error {
			_, err := opener.OpenWithOffset(inv, program, payer, a, d, uint64(i))
			return err
		})
		require.NoError(t, err, "offset: %d", i)
	}

	assert.NotEqual(t, targets[0], targets[1], "distinct instances")
	assert.NotEqual(t, targets[1], targets[2], "distinct instances")

	err := ledger.Run(func(inv *ledger.Invocation) error {
		_, err := opener.OpenWithOffset(inv, program, payer, targets[0], d, 5)
		return err
	})
	assert.Equal(t, fault.ErrAddressMismatch, err, "wrong offset")

	single, _, err := opener.Find(program, d)
	require.NoError(t, err)
	assert.NotContains(t, targets, single, "offset changes address")
}
