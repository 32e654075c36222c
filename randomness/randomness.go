// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package randomness - the rolling seed used to derive DNA selectors
//
// the seed is a pure function of the genesis seed and the committed
// requests, anyone with the same history can predict it
package randomness

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// SeedLength - bytes in a seed
const SeedLength = 32

// Seed - current environment seed
type Seed [SeedLength]byte

var seedKey = []byte("seed")

// SeedFromHex - decode a configured genesis seed
//
// an empty string is the zero seed
func SeedFromHex(s string) (Seed, error) {
	seed := Seed{}
	if "" == s {
		return seed, nil
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return seed, err
	}
	if SeedLength != len(buffer) {
		return seed, hex.ErrLength
	}
	copy(seed[:], buffer)
	return seed, nil
}

// Current - the seed as seen by the transaction
func Current(trx storage.Transaction) Seed {
	return decode(trx.Get(storage.Pool.Globals, seedKey))
}

// Committed - the seed outside any transaction
func Committed() Seed {
	return decode(storage.Pool.Globals.Get(seedKey))
}

// HasGenesis - true once a seed has been committed
func HasGenesis() bool {
	return storage.Pool.Globals.Has(seedKey)
}

// SetGenesis - store the initial seed if none exists
func SetGenesis(trx storage.Transaction, seed Seed) {
	if trx.Has(storage.Pool.Globals, seedKey) {
		return
	}
	trx.Put(storage.Pool.Globals, seedKey, seed[:])
}

// Mix - replace the seed with SHA3-256(seed ++ material)
func Mix(trx storage.Transaction, material []byte) Seed {
	current := Current(trx)

	h := sha3.New256()
	h.Write(current[:])
	h.Write(material)

	next := Seed{}
	copy(next[:], h.Sum(nil))
	trx.Put(storage.Pool.Globals, seedKey, next[:])
	return next
}

func decode(buffer []byte) Seed {
	seed := Seed{}
	if nil == buffer {
		return seed
	}
	if SeedLength != len(buffer) {
		logger.Panicf("randomness: corrupt seed: %x", buffer)
	}
	copy(seed[:], buffer)
	return seed
}
