// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/storage"
)

const minimum = 10

var (
	alice = account.Account{'a'}
	bob   = account.Account{'b'}
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

// ledger with alice holding amount
func setup(t *testing.T, amount uint64) ledger.Ledger {
	err := fixtures.SetupTestDatabase(entity.CurrentLayoutVersion)
	assert.Nil(t, err, "database")

	l := ledger.New(minimum)
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	assert.Nil(t, l.Deposit(trx, alice, amount), "deposit")
	assert.Nil(t, trx.Commit(), "commit")
	return l
}

func transfer(t *testing.T, l ledger.Ledger, from account.Account, to account.Account, amount uint64, policy ledger.Policy) error {
	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	err = l.Transfer(trx, from, to, amount, policy)
	if nil != err {
		trx.Abort()
		return err
	}
	assert.Nil(t, trx.Commit(), "commit")
	return nil
}

func TestTransfer(t *testing.T) {
	l := setup(t, 100)
	defer fixtures.TeardownTestDatabase()

	assert.Nil(t, transfer(t, l, alice, bob, 30, ledger.KeepAlive), "transfer")
	assert.Equal(t, uint64(70), l.Balance(alice), "payer")
	assert.Equal(t, uint64(30), l.Balance(bob), "payee")
}

func TestKeepAlive(t *testing.T) {
	l := setup(t, 100)
	defer fixtures.TeardownTestDatabase()

	err := transfer(t, l, alice, bob, 95, ledger.KeepAlive)
	assert.Equal(t, fault.InsufficientFunds, err, "would go below minimum")
	assert.Equal(t, uint64(100), l.Balance(alice), "payer unchanged")
	assert.Equal(t, uint64(0), l.Balance(bob), "payee unchanged")

	assert.Nil(t, transfer(t, l, alice, bob, 90, ledger.KeepAlive), "exactly minimum left")
	assert.Equal(t, uint64(minimum), l.Balance(alice), "minimum left")
}

func TestAllowDeath(t *testing.T) {
	l := setup(t, 100)
	defer fixtures.TeardownTestDatabase()

	assert.Nil(t, transfer(t, l, alice, bob, 95, ledger.AllowDeath), "transfer")
	assert.Equal(t, uint64(0), l.Balance(alice), "payer removed")
	assert.Equal(t, uint64(95), l.Balance(bob), "payee")
}

func TestInsufficient(t *testing.T) {
	l := setup(t, 100)
	defer fixtures.TeardownTestDatabase()

	assert.Equal(t, fault.InsufficientFunds, transfer(t, l, alice, bob, 101, ledger.AllowDeath), "more than balance")
	assert.Equal(t, fault.InsufficientFunds, transfer(t, l, bob, alice, 1, ledger.KeepAlive), "unknown payer")
}

func TestPayeeBelowMinimum(t *testing.T) {
	l := setup(t, 100)
	defer fixtures.TeardownTestDatabase()

	err := transfer(t, l, alice, bob, minimum-1, ledger.KeepAlive)
	assert.Equal(t, fault.BelowMinimumBalance, err, "dust")
	assert.Equal(t, uint64(100), l.Balance(alice), "payer unchanged")
}

func TestDepositOverflow(t *testing.T) {
	l := setup(t, math.MaxUint64)
	defer fixtures.TeardownTestDatabase()

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")
	assert.Equal(t, fault.BalanceOverflow, l.Deposit(trx, alice, 1), "overflow")
	trx.Abort()

	assert.Equal(t, uint64(math.MaxUint64), l.Balance(alice), "unchanged")
}
