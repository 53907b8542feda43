// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/bitmark-inc/shardstore/ledger/ledgertest"
)

func TestMain(m *testing.M) {
	ledgertest.Main(m)
}
