// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/fault"
)

// miscellaneous constants
const (
	Length         = ed25519.PublicKeySize
	checksumLength = 4
)

// Account - an ed25519 public key identifying a participant
type Account [Length]byte

// identifier of the account that receives kitty fees
var protocolIdentifier = [8]byte{'p', 'y', '/', 'k', 'i', 't', 't', 'y'}

// module prefix for derived accounts
var protocolPrefix = []byte{'m', 'o', 'd', 'l'}

// Protocol - the account that collects creation, breeding and
// listing fees
//
// derived from a fixed identifier so there is no private key for it
func Protocol() Account {
	a := Account{}
	copy(a[:], protocolPrefix)
	copy(a[len(protocolPrefix):], protocolIdentifier[:])
	return a
}

// FromBytes - convert a 32 byte public key into an account
func FromBytes(buffer []byte) (Account, error) {
	a := Account{}
	if Length != len(buffer) {
		return a, fault.InvalidAccount
	}
	copy(a[:], buffer)
	return a, nil
}

// FromBase58 - decode the text form of an account
func FromBase58(s string) (Account, error) {
	a := Account{}

	decoded, err := base58.Decode(s)
	if nil != err || 0 == len(decoded) {
		return a, fault.CannotDecodeAccount
	}
	if Length+checksumLength != len(decoded) {
		return a, fault.InvalidAccount
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return a, fault.ChecksumMismatch
	}

	copy(a[:], decoded[:checksumStart])
	return a, nil
}

// Bytes - the raw public key
func (a Account) Bytes() []byte {
	return a[:]
}

// IsZero - true for the unset account
func (a Account) IsZero() bool {
	return a == Account{}
}

// String - base58 encoding of key ++ checksum
func (a Account) String() string {
	checksum := sha3.Sum256(a[:])
	buffer := make([]byte, 0, Length+checksumLength)
	buffer = append(buffer, a[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (a Account) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert Base58 JSON form to an account
func (a *Account) UnmarshalText(s []byte) error {
	decoded, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*a = decoded
	return nil
}

// CheckSignature - verify that this account signed the message
func (a Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(a[:]), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}
