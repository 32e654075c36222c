// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/mr-tron/base58"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

func TestSeedRestoresKey(t *testing.T) {
	key, err := account.NewPrivateKey()
	assert.Nil(t, err, "new key")

	restored, err := account.PrivateKeyFromBase58Seed(key.Seed())
	assert.Nil(t, err, "restore")
	assert.Equal(t, key.Account(), restored.Account(), "account")

	message := []byte("message")
	assert.Equal(t, key.Sign(message), restored.Sign(message), "signature")
}

func TestSeedErrors(t *testing.T) {
	key, err := account.NewPrivateKey()
	assert.Nil(t, err, "new key")

	seed, err := base58.Decode(key.Seed())
	assert.Nil(t, err, "decode")

	bad := make([]byte, len(seed))
	copy(bad, seed)
	bad[0] = 0x00
	_, err = account.PrivateKeyFromBase58Seed(base58.Encode(bad))
	assert.Equal(t, fault.InvalidSeedHeader, err, "header")

	copy(bad, seed)
	bad[len(bad)-1] ^= 0x01
	_, err = account.PrivateKeyFromBase58Seed(base58.Encode(bad))
	assert.Equal(t, fault.ChecksumMismatch, err, "checksum")

	_, err = account.PrivateKeyFromBase58Seed(base58.Encode(seed[:20]))
	assert.Equal(t, fault.InvalidSeedLength, err, "length")

	_, err = account.PrivateKeyFromBase58Seed("")
	assert.Equal(t, fault.CannotDecodeSeed, err, "empty")
}
