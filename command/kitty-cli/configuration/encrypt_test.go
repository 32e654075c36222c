// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
)

// test encrypt and decrypt one string with various passwords
func TestEncryptDecrypt(t *testing.T) {

	plainText := "The Quick Brown Fox Jumps Over The Lazy Dog"

	passwords := []string{"test", "123", "444", "m,erRGhtk%$33ug62sd al/fajfb.adv"}

	for _, password := range passwords {
		salt, key, err := hashPassword(password)
		assert.Nil(t, err, "hash: %q", password)

		encrypted, err := encryptData(plainText, key)
		assert.Nil(t, err, "encrypt: %q", password)

		key2, err := generateKey(password, salt)
		assert.Nil(t, err, "generate key: %q", password)
		assert.Equal(t, key, key2, "same key from same salt: %q", password)

		decrypted, err := decryptData(encrypted, key2)
		assert.Nil(t, err, "decrypt: %q", password)
		assert.Equal(t, plainText, decrypted, "round trip: %q", password)
	}
}

func TestEncryptRejectsShortData(t *testing.T) {
	_, key, err := hashPassword("password")
	assert.Nil(t, err, "hash")

	_, err = encryptData("short", key)
	assert.Equal(t, fault.CryptoFailed, err, "too short")
}

func TestDecryptWithWrongKey(t *testing.T) {
	_, key, err := hashPassword("right password")
	assert.Nil(t, err, "hash")
	_, other, err := hashPassword("wrong password")
	assert.Nil(t, err, "hash")

	encrypted, err := encryptData("This is some text for testing 1234567890", key)
	assert.Nil(t, err, "encrypt")

	_, err = decryptData(encrypted, other)
	assert.Equal(t, fault.CryptoFailed, err, "wrong key")
}

func TestSalt(t *testing.T) {
	salt, err := MakeSalt()
	assert.Nil(t, err, "make salt")

	text, err := salt.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, salt.String(), string(text), "text form")

	var decoded Salt
	assert.Nil(t, decoded.UnmarshalText(text), "unmarshal")
	assert.Equal(t, *salt, decoded, "round trip")

	assert.Equal(t, fault.InvalidSalt, decoded.UnmarshalText([]byte("0102")), "short salt")
}

func TestIdentities(t *testing.T) {
	config := &Configuration{
		DefaultIdentity: "first",
		Identities:      make(map[string]Identity),
	}

	key, err := account.NewPrivateKey()
	assert.Nil(t, err, "new key")

	err = config.AddIdentity("first", "the first", key.Seed(), "password1")
	assert.Nil(t, err, "add identity")

	err = config.AddIdentity("first", "again", key.Seed(), "password1")
	assert.Equal(t, fault.IdentityNameExists, err, "duplicate name")

	a, err := config.Account("first")
	assert.Nil(t, err, "account")
	assert.Equal(t, key.Account(), a, "account matches key")

	private, err := config.Private("password1", "first")
	assert.Nil(t, err, "private")
	assert.Equal(t, key.Seed(), private.Seed, "seed")
	assert.Equal(t, key.Account(), private.Account, "private account")
	assert.Equal(t, "the first", private.Description, "description")

	_, err = config.Private("password2", "first")
	assert.Equal(t, fault.WrongPassword, err, "wrong password")

	_, err = config.Private("password1", "second")
	assert.Equal(t, fault.IdentityNameNotFound, err, "unknown name")

	other, err := account.NewPrivateKey()
	assert.Nil(t, err, "new key")
	err = config.AddReceiveOnlyIdentity("watch", "receive only", other.Account().String())
	assert.Nil(t, err, "receive only")

	_, err = config.Private("password1", "watch")
	assert.Equal(t, fault.NotPrivateKey, err, "no private key")

	err = config.AddReceiveOnlyIdentity("bad", "bad", "not-an-account")
	assert.NotNil(t, err, "bad account")
}
