// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package state

import (
	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/rent"
)

// PoolReimburser - repays hashing fees out of the pool
type PoolReimburser struct {
	inv  *ledger.Invocation
	pool address.Address
	fee  uint64
}

// NewPoolReimburser - reimburse perRound lamports for every round
func NewPoolReimburser(inv *ledger.Invocation, pool address.Address, perRound uint64) *PoolReimburser {
	return &PoolReimburser{
		inv:  inv,
		pool: pool,
		fee:  perRound,
	}
}

// Reimburse - transfer the fee for every completed round
//
// the pool keeps its rent exempt minimum
func (r *PoolReimburser) Reimburse(feePayer address.Address, round uint64, totalRounds uint64) error {
	amount := round * r.fee
	r.inv.Log().Infof("reimburse: %s  rounds: %d/%d  lamports: %d", feePayer, round, totalRounds, amount)
	if 0 == amount {
		return nil
	}

	pool, err := r.inv.Load(r.pool)
	if nil != err {
		return err
	}
	if pool.Lamports < amount || pool.Lamports-amount < rent.Current().MinimumBalance(pool.Capacity()) {
		return fault.ErrInsufficientFunds
	}
	return r.inv.Transfer(r.pool, feePayer, amount)
}
