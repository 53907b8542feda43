// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package container

import (
	"github.com/bitmark-inc/shardstore/address"
	"github.com/bitmark-inc/shardstore/fault"
	"github.com/bitmark-inc/shardstore/ledger"
	"github.com/bitmark-inc/shardstore/rent"
)

// Validate - check an externally supplied unit before first use
//
// checks are applied in order: size, zero content (if required), rent
// exemption and then ownership.  The unit is not modified.
func Validate(u *ledger.Unit, program address.Address, expectedSize int, requireZeroed bool, exemption rent.Exemption) error {
	if u.Capacity() != expectedSize {
		return fault.ErrSizeMismatch
	}
	if requireZeroed && !u.IsZeroed() {
		return fault.ErrNotZeroed
	}
	if u.Lamports < exemption.MinimumBalance(expectedSize) {
		return fault.ErrNotRentExempt
	}
	if !u.IsOwnedBy(program) {
		return fault.ErrOwnershipMismatch
	}
	return nil
}
