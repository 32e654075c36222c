// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
)

type balanceReply struct {
	Account        account.Account `json:"account"`
	Balance        uint64          `json:"balance"`
	MinimumBalance uint64          `json:"minimumBalance"`
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkAccount(c.String("owner"), m.config)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Balance(owner)
	if err != nil {
		return err
	}

	printJson(m.w, balanceReply{
		Account:        owner,
		Balance:        response.Balance,
		MinimumBalance: response.MinimumBalance,
	})
	return nil
}
