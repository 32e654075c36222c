// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package balance_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/ledger/mocks"
	"github.com/bitmark-inc/kittyd/rpc/balance"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/logger"
)

func TestBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	l := mocks.NewMockLedger(ctl)
	a := balance.New(logger.New(fixtures.LogCategory), l)

	acc := account.Account{3, 4}
	l.EXPECT().Balance(acc).Return(uint64(1234)).Times(1)
	l.EXPECT().MinimumBalance().Return(uint64(10)).Times(1)

	var reply balance.BalanceReply
	err := a.Balance(&balance.BalanceArguments{Account: acc}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, uint64(1234), reply.Balance, "wrong balance")
	assert.Equal(t, uint64(10), reply.MinimumBalance, "wrong minimum")
}

func TestBalanceZeroAccount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := balance.New(logger.New(fixtures.LogCategory), mocks.NewMockLedger(ctl))

	err := a.Balance(&balance.BalanceArguments{}, &balance.BalanceReply{})
	assert.Equal(t, fault.InvalidAccount, err, "wrong error")
}
