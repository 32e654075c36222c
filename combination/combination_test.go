// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package combination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/combination"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/randomness"
)

func TestCombineByteRule(t *testing.T) {
	p1 := entity.DNA{0xff, 0x00, 0xf0, 0xaa}
	p2 := entity.DNA{0x00, 0xff, 0x0f, 0x55}
	selector := combination.Selector{0xff, 0xff, 0xcc, 0x0f}

	dna := combination.Combine(p1, p2, selector)

	assert.Equal(t, byte(0xff), dna[0], "all first parent")
	assert.Equal(t, byte(0x00), dna[1], "selector set but first parent zero")
	assert.Equal(t, byte(0xc3), dna[2], "mixed")
	assert.Equal(t, byte(0x5a), dna[3], "low nibble first parent")
	for i := 4; i < entity.DNALength; i += 1 {
		assert.Equal(t, byte(0), dna[i], "zero byte %d", i)
	}
}

func TestCombineExtremes(t *testing.T) {
	p1 := entity.DNA{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	p2 := entity.DNA{16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}

	all := combination.Selector{}
	for i := range all {
		all[i] = 0xff
	}

	assert.Equal(t, p1, combination.Combine(p1, p2, all), "all ones selects parent1")
	assert.Equal(t, p2, combination.Combine(p1, p2, combination.Selector{}), "all zeros selects parent2")
}

func TestGenesisIsSelector(t *testing.T) {
	selector := combination.Selector{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 0xff, 0xfe, 0x80, 0x7f, 0x01, 0x10}
	assert.Equal(t, entity.DNA(selector), combination.Genesis(selector), "genesis")
}

func TestDeriveSelector(t *testing.T) {
	seed := randomness.Seed{1}
	caller := account.Account{2}

	s1 := combination.DeriveSelector(seed, caller, 0)
	assert.Equal(t, s1, combination.DeriveSelector(seed, caller, 0), "deterministic")

	assert.NotEqual(t, s1, combination.DeriveSelector(seed, caller, 1), "sequence")
	assert.NotEqual(t, s1, combination.DeriveSelector(seed, account.Account{3}, 0), "caller")
	assert.NotEqual(t, s1, combination.DeriveSelector(randomness.Seed{4}, caller, 0), "seed")
}
