// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package balance - RPC service reporting account balances
package balance

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

const (
	rateLimitAccount = 200
	rateBurstAccount = 100
)

// Account - type for the RPC
type Account struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Ledger  ledger.Ledger
}

// New - create the account service
func New(log *logger.L, balances ledger.Ledger) *Account {
	return &Account{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAccount, rateBurstAccount),
		Ledger:  balances,
	}
}

// BalanceArguments - arguments for Balance
type BalanceArguments struct {
	Account account.Account `json:"account"`
}

// BalanceReply - result of Balance
type BalanceReply struct {
	Balance        uint64 `json:"balance,string"`
	MinimumBalance uint64 `json:"minimumBalance,string"`
}

// Balance - current balance of an account
func (a *Account) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}
	if nil == arguments || arguments.Account.IsZero() {
		return fault.InvalidAccount
	}

	reply.Balance = a.Ledger.Balance(arguments.Account)
	reply.MinimumBalance = a.Ledger.MinimumBalance()
	return nil
}
