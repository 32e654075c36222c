// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/rpc/balance"
)

// Balance - current balance of an account
func (c *Client) Balance(a account.Account) (*balance.BalanceReply, error) {
	reply := &balance.BalanceReply{}
	err := c.call("Balance", "Account.Balance", balance.BalanceArguments{Account: a}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
