// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allocator - issue kitty identifiers
//
// identifiers start at zero and are never reused, the next value is
// kept in the globals pool and only advances inside a transaction
package allocator

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

var nextIdKey = []byte("next-id")

// Allocate - return the next identifier and advance the counter
//
// the counter is unchanged if it cannot advance
func Allocate(trx storage.Transaction) (entity.Id, error) {
	current := decode(trx.Get(storage.Pool.Globals, nextIdKey))
	if math.MaxUint32 == current {
		return 0, fault.IdentifierSpaceExhausted
	}

	next := make([]byte, 4)
	binary.BigEndian.PutUint32(next, current+1)
	trx.Put(storage.Pool.Globals, nextIdKey, next)

	return entity.Id(current), nil
}

// Peek - the identifier the next allocation would return
func Peek() entity.Id {
	return entity.Id(decode(storage.Pool.Globals.Get(nextIdKey)))
}

// absent means nothing allocated yet
func decode(buffer []byte) uint32 {
	if nil == buffer {
		return 0
	}
	if 4 != len(buffer) {
		logger.Panicf("allocator: corrupt next id: %x", buffer)
	}
	return binary.BigEndian.Uint32(buffer)
}
