// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package combination - derive kitty DNA
//
// the selector is derived from public inputs and is predictable,
// it is not a secure source of randomness
package combination

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/randomness"
)

// Selector - per bit choice between two parents, a set bit takes
// the first parent
type Selector [entity.DNALength]byte

// DeriveSelector - hash of seed ++ caller ++ sequence
func DeriveSelector(seed randomness.Seed, caller account.Account, sequence uint32) Selector {
	h, err := blake2b.New(entity.DNALength, nil)
	if nil != err {
		// only fails for an invalid size or key
		panic(err)
	}

	s := make([]byte, 4)
	binary.BigEndian.PutUint32(s, sequence)

	h.Write(seed[:])
	h.Write(caller[:])
	h.Write(s)

	selector := Selector{}
	copy(selector[:], h.Sum(nil))
	return selector
}

// Combine - take each bit from parent1 where the selector bit is
// set and from parent2 where it is clear
func Combine(parent1 entity.DNA, parent2 entity.DNA, selector Selector) entity.DNA {
	result := entity.DNA{}
	for i := range result {
		result[i] = (parent1[i] & selector[i]) | (parent2[i] &^ selector[i])
	}
	return result
}

// Genesis - DNA of a kitty with no parents
//
// the selector applied to itself and an all zero second parent
func Genesis(selector Selector) entity.DNA {
	return Combine(entity.DNA(selector), entity.DNA{}, selector)
}
