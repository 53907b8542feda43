// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/shardstore/fault"
)

// command errors - keep in alphabetic order
const (
	ErrInvalidCount   = fault.InvalidError("count must be positive")
	ErrInvalidSize    = fault.InvalidError("size must be positive")
	ErrMissingAddress = fault.InvalidError("address is required")
	ErrMissingDigests = fault.InvalidError("at least one digest is required")
	ErrMissingKind    = fault.InvalidError("kind is required")
	ErrMissingLabel   = fault.InvalidError("label is required")
	ErrMissingPayer   = fault.InvalidError("payer is required")
	ErrZeroLamports   = fault.InvalidError("lamports must be positive")
)
