// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/kittyd/fault"
)

// Signature - an ed25519 signature, hex in JSON
type Signature []byte

// String - hex form for the fmt package
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// MarshalText - convert signature to text
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - convert text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(sig, s)
	if nil != err {
		return err
	}
	if ed25519.SignatureSize != byteCount {
		return fault.InvalidSignature
	}
	*signature = sig[:byteCount]
	return nil
}
