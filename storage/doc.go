// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk ledger
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes go through the single Transaction: the host ledger runs one
// invocation at a time, so only one batch may be open and its contents
// are either written completely by Commit or discarded by Abort.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. address  = 32 byte derived or external unit address
// 4. lamports = big endian uint64 (8 bytes)
// 5. owner    = 32 byte program address
//
// Units:
//
//   U ++ address               - storage unit
//                                data: lamports ++ owner ++ unit data
//
// Testing:
//   Z ++ key                   - testing data
package storage
