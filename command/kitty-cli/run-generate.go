// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
)

type generated struct {
	Account account.Account `json:"account"`
	Seed    string          `json:"seed"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	printJson(m.w, generated{
		Account: key.Account(),
		Seed:    key.Seed(),
	})
	return nil
}
