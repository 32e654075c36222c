// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/fault"
)

func key32(n uint32) []byte {
	k := make([]byte, 4)
	binary.BigEndian.PutUint32(k, n)
	return k
}

func fillTestData(t *testing.T, keys ...uint32) {
	trx, err := NewDBTransaction()
	assert.Nil(t, err, "begin")
	for _, k := range keys {
		trx.Put(Pool.TestData, key32(k), key32(k*10))
	}
	assert.Nil(t, trx.Commit(), "commit")
}

func TestFetchPages(t *testing.T) {
	setupDatabase(t)
	defer teardownDatabase()

	fillTestData(t, 0, 1, 2, 255, 256, 257, 65536, 0xfffffffe, 0xffffffff)

	cursor := Pool.TestData.NewFetchCursor()

	expected := [][]uint32{
		{0, 1, 2, 255},
		{256, 257, 65536, 0xfffffffe},
		{0xffffffff},
		{},
	}
	for i, page := range expected {
		elements, err := cursor.Fetch(4)
		assert.Nil(t, err, "fetch: %d", i)
		assert.Equal(t, len(page), len(elements), "page length: %d", i)
		for j, e := range elements {
			assert.Equal(t, key32(page[j]), e.Key, "key: %d.%d", i, j)
			assert.Equal(t, key32(page[j]*10), e.Value, "value: %d.%d", i, j)
		}
	}
}

func TestFetchSeek(t *testing.T) {
	setupDatabase(t)
	defer teardownDatabase()

	fillTestData(t, 3, 5, 9)

	elements, err := Pool.TestData.NewFetchCursor().Seek(key32(4)).Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 2, len(elements), "count")
	assert.Equal(t, key32(5), elements[0].Key, "first key")
}

func TestFetchInvalid(t *testing.T) {
	setupDatabase(t)
	defer teardownDatabase()

	var cursor *FetchCursor
	_, err := cursor.Fetch(1)
	assert.Equal(t, fault.InvalidCursor, err, "nil cursor")

	_, err = Pool.TestData.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")
}

func TestMap(t *testing.T) {
	setupDatabase(t)
	defer teardownDatabase()

	fillTestData(t, 1, 2, 3)

	sum := uint32(0)
	err := Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		sum += binary.BigEndian.Uint32(value)
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, uint32(60), sum, "sum of values")

	stop := fault.InvalidCount
	calls := 0
	err = Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		calls += 1
		return stop
	})
	assert.Equal(t, stop, err, "map error")
	assert.Equal(t, 1, calls, "stopped after error")
}

func TestLastElement(t *testing.T) {
	setupDatabase(t)
	defer teardownDatabase()

	_, found := Pool.TestData.LastElement()
	assert.False(t, found, "empty pool")

	fillTestData(t, 7, 2, 11)

	e, found := Pool.TestData.LastElement()
	assert.True(t, found, "found")
	assert.Equal(t, key32(11), e.Key, "last key")
}
