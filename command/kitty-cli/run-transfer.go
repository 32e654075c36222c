// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/entity"
)

type doneReply struct {
	Id     entity.Id `json:"id"`
	Status string    `json:"status"`
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkKittyId("kitty", c.String("kitty"))
	if err != nil {
		return err
	}

	recipient, err := checkRecipient(c, "receiver", m.config)
	if err != nil {
		return err
	}

	owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "kitty: %d\n", id)
		fmt.Fprintf(m.e, "receiver: %s\n", recipient)
		fmt.Fprintf(m.e, "sender: %s\n", owner.Account())
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	err = client.Transfer(owner, recipient, id)
	if err != nil {
		return err
	}

	printJson(m.w, doneReply{Id: id, Status: "transferred"})
	return nil
}

func runSell(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkKittyId("kitty", c.String("kitty"))
	if err != nil {
		return err
	}

	owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	err = client.Sell(owner, id)
	if err != nil {
		return err
	}

	printJson(m.w, doneReply{Id: id, Status: "listed"})
	return nil
}

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkKittyId("kitty", c.String("kitty"))
	if err != nil {
		return err
	}

	buyer, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if err != nil {
		return err
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	err = client.Buy(buyer, id)
	if err != nil {
		return err
	}

	printJson(m.w, doneReply{Id: id, Status: "purchased"})
	return nil
}
