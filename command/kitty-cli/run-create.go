// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	label := c.String("label")

	owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner.Account())
		fmt.Fprintf(m.e, "label: %q\n", label)
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Create(owner, label)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}

func runBreed(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	first, err := checkKittyId("first", c.String("first"))
	if err != nil {
		return err
	}

	second, err := checkKittyId("second", c.String("second"))
	if err != nil {
		return err
	}

	label := c.String("label")

	owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner.Account())
		fmt.Fprintf(m.e, "parents: %d, %d\n", first, second)
		fmt.Fprintf(m.e, "label: %q\n", label)
	}

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.Breed(owner, first, second, label)
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
