// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/entity"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkKittyId("kitty", c.String("kitty"))
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Show(id)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runOwned(c *cli.Context) error {

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

	response, err := client.Owned(owner, entity.Id(c.Uint64("start")), c.Int("count"))
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runMarket(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Market(entity.Id(c.Uint64("start")), c.Int("count"))
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
