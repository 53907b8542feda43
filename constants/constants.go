// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package constants

// the largest data size of any single storage unit
const (
	MaxUnitSize = 10_000_000
)

// label hashed to give the default program identity
const (
	DefaultProgramLabel = "shardstore-program"
)
