// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - account balances used to pay kitty fees
package ledger

import (
	"math"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// Policy - whether a transfer may leave the payer below the minimum
type Policy int

// transfer policies
const (
	KeepAlive Policy = iota
	AllowDeath
)

// Ledger - balance operations, writes go through the caller's transaction
type Ledger interface {
	Balance(account.Account) uint64
	Deposit(storage.Transaction, account.Account, uint64) error
	Transfer(storage.Transaction, account.Account, account.Account, uint64, Policy) error
	MinimumBalance() uint64
}

type balances struct {
	log     *logger.L
	pool    *storage.PoolHandle
	minimum uint64
}

// New - ledger over the balances pool
func New(minimumBalance uint64) Ledger {
	return &balances{
		log:     logger.New("ledger"),
		pool:    storage.Pool.Balances,
		minimum: minimumBalance,
	}
}

// MinimumBalance - smallest balance an account may hold
func (b *balances) MinimumBalance() uint64 {
	return b.minimum
}

// Balance - committed balance
func (b *balances) Balance(a account.Account) uint64 {
	n, _ := b.pool.GetN(a.Bytes())
	return n
}

// Deposit - create funds, only used for endowments
func (b *balances) Deposit(trx storage.Transaction, to account.Account, amount uint64) error {
	current, _ := trx.GetN(b.pool, to.Bytes())
	if current > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}
	if current+amount < b.minimum {
		return fault.BelowMinimumBalance
	}
	trx.PutN(b.pool, to.Bytes(), current+amount)

	b.log.Debugf("deposit: %d to: %s", amount, to)
	return nil
}

// Transfer - move amount from payer to payee
//
// with KeepAlive the payer must keep at least the minimum balance
func (b *balances) Transfer(trx storage.Transaction, from account.Account, to account.Account, amount uint64, policy Policy) error {
	payer, _ := trx.GetN(b.pool, from.Bytes())
	if payer < amount {
		return fault.InsufficientFunds
	}

	remaining := payer - amount
	if KeepAlive == policy && remaining < b.minimum {
		return fault.InsufficientFunds
	}

	if from == to || 0 == amount {
		return nil
	}

	payee, _ := trx.GetN(b.pool, to.Bytes())
	if payee > math.MaxUint64-amount {
		return fault.BalanceOverflow
	}
	if payee+amount < b.minimum {
		return fault.BelowMinimumBalance
	}

	// accounts below the minimum are removed
	if remaining < b.minimum {
		trx.Delete(b.pool, from.Bytes())
	} else {
		trx.PutN(b.pool, from.Bytes(), remaining)
	}
	trx.PutN(b.pool, to.Bytes(), payee+amount)

	b.log.Debugf("transfer: %d from: %s to: %s", amount, from, to)
	return nil
}
