// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// kitty ledger errors - keep in alphabetic order
var (
	AlreadyListed            = ExistsError("kitty is already listed for sale")
	IdentifierSpaceExhausted = LengthError("kitty identifier space exhausted")
	InsufficientFunds        = ProcessError("insufficient funds")
	NotListed                = NotFoundError("kitty is not listed for sale")
	NotOwner                 = InvalidError("not the owner of the kitty")
	SameEntity               = InvalidError("cannot breed a kitty with itself")
	SelfPurchase             = InvalidError("cannot purchase own kitty")
	UnknownEntity            = NotFoundError("kitty does not exist")
)

// common errors - keep in alphabetic order
var (
	AlreadyInitialised        = ExistsError("already initialised")
	BelowMinimumBalance       = ProcessError("balance would be below the minimum")
	BalanceOverflow           = ProcessError("balance overflow")
	CannotDecodeAccount       = RecordError("cannot decode account")
	CannotDecodeSeed          = RecordError("cannot decode seed")
	CertificateFileExists     = ExistsError("certificate file already exists")
	ChecksumMismatch          = ProcessError("checksum mismatch")
	ConfigurationFileNotFound = NotFoundError("configuration file not found")
	CryptoFailed              = ProcessError("crypto failed")
	ConfigurationNotTable     = InvalidError("configuration did not return a table")
	DatabaseInconsistent      = RecordError("database is inconsistent")
	DatabaseVersionTooNew     = InvalidError("database version is newer than this program supports")
	IdentityNameExists        = ExistsError("identity name already exists")
	IdentityNameNotFound      = NotFoundError("identity name not found")
	InvalidAccount            = InvalidError("invalid account")
	InvalidChain              = InvalidError("invalid chain")
	InvalidCount              = InvalidError("invalid count")
	InvalidCursor             = InvalidError("invalid cursor")
	InvalidDNA                = InvalidError("invalid dna")
	InvalidIpAddress          = InvalidError("invalid IP address")
	InvalidLabel              = InvalidError("invalid label")
	InvalidPrice              = InvalidError("price is below the minimum balance")
	InvalidPrivateKey         = InvalidError("invalid private key")
	InvalidSalt               = InvalidError("invalid salt")
	InvalidSeedHeader         = InvalidError("invalid seed header")
	InvalidSeedLength         = LengthError("invalid seed length")
	InvalidSignature          = InvalidError("invalid signature")
	KeyFileExists             = ExistsError("key file already exists")
	MissingParameters         = InvalidError("missing parameters")
	NotAvailableDuringUpgrade = ProcessError("not available during upgrade")
	NotInitialised            = NotFoundError("not initialised")
	NotPrivateKey             = InvalidError("identity has no private key")
	PasswordMismatch          = InvalidError("passwords do not match")
	PasswordTooShort          = LengthError("password is too short")
	RateLimiting              = ProcessError("rate limiting")
	TransactionInUse          = ProcessError("database transaction already in use")
	TransactionNotInUse       = ProcessError("database transaction not in use")
	WrongPassword             = InvalidError("wrong password")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - is an invalid error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - is a length error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - is a not found error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - is a process error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - is a record error
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }
