// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package container - a parent unit recording a fixed set of externally
// supplied child units
//
// the parent's data starts with a header:
//
//   initialised  byte       0x00 until bound, then 0x01
//   children     [K][32]byte child addresses in shard order
//
// binding happens once; after that the addresses never change, while the
// children's own data remains writable
package container
