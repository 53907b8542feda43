// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AliasError GenericError
type DerivationError GenericError
type ExistsError GenericError
type InitialisedError GenericError
type InvalidError GenericError
type LayoutError GenericError
type NotFoundError GenericError
type NotInitialisedError GenericError
type OwnershipError GenericError
type ProcessError GenericError
type RentError GenericError
type StateError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressMismatch       = DerivationError("address does not match derivation")
	ErrAlreadyActive         = StateError("computation already active")
	ErrAlreadyBound          = InitialisedError("container already bound")
	ErrAlreadyComplete       = StateError("computation already complete")
	ErrAlreadyExists         = ExistsError("unit already exists")
	ErrAlreadyInitialised    = InitialisedError("already initialised")
	ErrChildCount            = LayoutError("wrong number of child units")
	ErrDuplicateChildAccount = AliasError("duplicate child unit")
	ErrFeeVersion            = ProcessError("fee version does not match governor")
	ErrInsufficientFunds     = ProcessError("insufficient funds")
	ErrInvalidAddress        = InvalidError("invalid address")
	ErrInvalidChain          = ProcessError("invalid chain")
	ErrInvalidConfiguration  = InvalidError("configuration must return a table")
	ErrInvalidCount          = InvalidError("invalid count")
	ErrInvalidCursor         = InvalidError("invalid cursor")
	ErrInvalidDigest         = InvalidError("invalid digest")
	ErrInvalidRange          = LayoutError("invalid index range")
	ErrInvocationInUse       = ProcessError("invocation already in progress")
	ErrNoViableBump          = DerivationError("no viable bump seed")
	ErrNotActive             = StateError("computation not active")
	ErrNotBound              = NotInitialisedError("container not bound")
	ErrNotComplete           = StateError("computation not complete")
	ErrNotInitialised        = NotInitialisedError("not initialised")
	ErrNotRentExempt         = RentError("unit is not rent exempt")
	ErrNotZeroed             = LayoutError("unit data is not zeroed")
	ErrOnCurve               = DerivationError("derived address is on curve")
	ErrOwnershipMismatch     = OwnershipError("unit is not owned by program")
	ErrSeedTooLong           = DerivationError("seed is too long")
	ErrShardCount            = LayoutError("wrong number of shard units")
	ErrSizeMismatch          = LayoutError("unit size mismatch")
	ErrTooManySeeds          = DerivationError("too many seeds")
	ErrTruncatedRecord       = LayoutError("truncated record")
	ErrUnitNotFound          = NotFoundError("unit not found")
	ErrUnitTooLarge          = LayoutError("unit exceeds maximum size")
	ErrUnknownKind           = NotFoundError("unknown account kind")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AliasError) Error() string          { return string(e) }
func (e DerivationError) Error() string     { return string(e) }
func (e ExistsError) Error() string         { return string(e) }
func (e InitialisedError) Error() string    { return string(e) }
func (e InvalidError) Error() string        { return string(e) }
func (e LayoutError) Error() string         { return string(e) }
func (e NotFoundError) Error() string       { return string(e) }
func (e NotInitialisedError) Error() string { return string(e) }
func (e OwnershipError) Error() string      { return string(e) }
func (e ProcessError) Error() string        { return string(e) }
func (e RentError) Error() string           { return string(e) }
func (e StateError) Error() string          { return string(e) }

// determine the class of an error
func IsErrAlias(e error) bool          { _, ok := e.(AliasError); return ok }
func IsErrDerivation(e error) bool     { _, ok := e.(DerivationError); return ok }
func IsErrExists(e error) bool         { _, ok := e.(ExistsError); return ok }
func IsErrInitialised(e error) bool    { _, ok := e.(InitialisedError); return ok }
func IsErrInvalid(e error) bool        { _, ok := e.(InvalidError); return ok }
func IsErrLayout(e error) bool         { _, ok := e.(LayoutError); return ok }
func IsErrNotFound(e error) bool       { _, ok := e.(NotFoundError); return ok }
func IsErrNotInitialised(e error) bool { _, ok := e.(NotInitialisedError); return ok }
func IsErrOwnership(e error) bool      { _, ok := e.(OwnershipError); return ok }
func IsErrProcess(e error) bool        { _, ok := e.(ProcessError); return ok }
func IsErrRent(e error) bool           { _, ok := e.(RentError); return ok }
func IsErrState(e error) bool          { _, ok := e.(StateError); return ok }
