// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/request"
)

func TestPackList(t *testing.T) {
	caller := account.Account{}
	for i := range caller {
		caller[i] = byte(i)
	}

	expected := []byte{request.ListTag, 32}
	expected = append(expected, caller.Bytes()...)
	expected = append(expected, 0x80, 0x01)

	assert.Equal(t, request.Packed(expected), request.List{Id: 128}.Pack(caller), "packed list")
}

func TestPackingsDiffer(t *testing.T) {
	caller := account.Account{1}

	packed := []request.Packed{
		request.Create{}.Pack(caller),
		request.Breed{}.Pack(caller),
		request.Transfer{}.Pack(caller),
		request.List{}.Pack(caller),
		request.Purchase{}.Pack(caller),
	}
	for i := range packed {
		for j := i + 1; j < len(packed); j += 1 {
			assert.NotEqual(t, packed[i], packed[j], "%d and %d", i, j)
		}
	}
}

func TestSignAndVerify(t *testing.T) {
	key, err := account.NewPrivateKey()
	assert.Nil(t, err, "new key")

	label, _ := entity.LabelFromString("tom")
	r := request.Breed{First: 3, Second: 7, Label: label}
	signature := request.Sign(key, r)

	assert.Nil(t, request.Verify(key.Account(), r, signature), "own signature")

	altered := r
	altered.Second = 8
	assert.Equal(t, fault.InvalidSignature, request.Verify(key.Account(), altered, signature), "altered request")

	other, _ := account.NewPrivateKey()
	assert.Equal(t, fault.InvalidSignature, request.Verify(other.Account(), r, signature), "wrong caller")
}
