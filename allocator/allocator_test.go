// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package allocator

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func setup(t *testing.T) {
	err := fixtures.SetupTestDatabase(entity.CurrentLayoutVersion)
	assert.Nil(t, err, "database")
}

func TestSequentialIdentifiers(t *testing.T) {
	setup(t)
	defer fixtures.TeardownTestDatabase()

	assert.Equal(t, entity.Id(0), Peek(), "initial")

	for expected := entity.Id(0); expected < 5; expected += 1 {
		trx, err := storage.NewDBTransaction()
		assert.Nil(t, err, "begin")

		id, err := Allocate(trx)
		assert.Nil(t, err, "allocate")
		assert.Equal(t, expected, id, "identifier")

		assert.Nil(t, trx.Commit(), "commit")
		assert.Equal(t, expected+1, Peek(), "next")
	}
}

func TestAllocationsWithinOneTransaction(t *testing.T) {
	setup(t)
	defer fixtures.TeardownTestDatabase()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	first, err := Allocate(trx)
	assert.Nil(t, err, "first")
	second, err := Allocate(trx)
	assert.Nil(t, err, "second")
	assert.Equal(t, first+1, second, "strictly increasing")

	trx.Abort()
	assert.Equal(t, entity.Id(0), Peek(), "abort leaves counter")
}

func TestExhausted(t *testing.T) {
	setup(t)
	defer fixtures.TeardownTestDatabase()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	trx.Put(storage.Pool.Globals, nextIdKey, []byte{0xff, 0xff, 0xff, 0xfe})
	assert.Nil(t, trx.Commit(), "commit")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	id, err := Allocate(trx)
	assert.Nil(t, err, "last identifier")
	assert.Equal(t, entity.Id(0xfffffffe), id, "last")

	_, err = Allocate(trx)
	assert.Equal(t, fault.IdentifierSpaceExhausted, err, "exhausted")
	assert.Nil(t, trx.Commit(), "commit")

	assert.Equal(t, entity.Id(0xffffffff), Peek(), "counter unchanged by failure")
}
