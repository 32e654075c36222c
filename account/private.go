// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/fault"
)

// PrivateKey - ed25519 signing key of an account
type PrivateKey struct {
	seed       [seedKeyLength]byte
	privateKey ed25519.PrivateKey
}

// seed parameters
var (
	seedHeader = []byte{0x5a, 0xfe, 0x02}
	seedNonce  = [24]byte{}
	seedCount  = [16]byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03, 0xe7,
	}
)

const (
	seedKeyLength      = 32
	seedChecksumLength = 4
)

// NewPrivateKey - create a key from a random seed
func NewPrivateKey() (*PrivateKey, error) {
	var secretKey [seedKeyLength]byte
	_, err := rand.Read(secretKey[:])
	if nil != err {
		return nil, err
	}
	return privateKeyFromSecret(secretKey)
}

// PrivateKeyFromBase58Seed - converts a Base58 encoded seed string
// and returns a private key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {

	seed, err := base58.Decode(seedBase58Encoded)
	if nil != err || 0 == len(seed) {
		return nil, fault.CannotDecodeSeed
	}

	if len(seedHeader)+seedKeyLength+seedChecksumLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}

	if !bytes.Equal(seedHeader, seed[:len(seedHeader)]) {
		return nil, fault.InvalidSeedHeader
	}

	checksumStart := len(seed) - seedChecksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	var secretKey [seedKeyLength]byte
	copy(secretKey[:], seed[len(seedHeader):checksumStart])

	return privateKeyFromSecret(secretKey)
}

// expand the secret into the signing key
func privateKeyFromSecret(secretKey [seedKeyLength]byte) (*PrivateKey, error) {
	encrypted := secretbox.Seal([]byte{}, seedCount[:], &seedNonce, &secretKey)

	_, priv, err := ed25519.GenerateKey(bytes.NewBuffer(encrypted))
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		seed:       secretKey,
		privateKey: priv,
	}, nil
}

// Account - the public side of the key
func (p *PrivateKey) Account() Account {
	a := Account{}
	copy(a[:], p.privateKey.Public().(ed25519.PublicKey))
	return a
}

// Sign - sign a message
func (p *PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(p.privateKey, message))
}

// Seed - Base58 form of the secret, suitable for PrivateKeyFromBase58Seed
func (p *PrivateKey) Seed() string {
	buffer := make([]byte, 0, len(seedHeader)+seedKeyLength+seedChecksumLength)
	buffer = append(buffer, seedHeader...)
	buffer = append(buffer, p.seed[:]...)
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:seedChecksumLength]...)
	return base58.Encode(buffer)
}
