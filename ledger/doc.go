// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - storage units and the invocations that change them
//
// A unit is a fixed capacity byte buffer at an address, holding a
// balance and recording the program that owns it.  Units are only
// changed inside an Invocation: everything loaded or created is written
// back together on Commit, or dropped on Abort, so a failed invocation
// leaves the ledger exactly as it was.
//
// Only one invocation can be open at a time; this is the serialisation
// the rest of the system relies on instead of locks.
package ledger
