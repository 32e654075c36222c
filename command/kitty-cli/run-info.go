// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type identityInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Account     string `json:"account"`
	ReceiveOnly bool   `json:"receiveOnly"`
}

type infoReply struct {
	File            string         `json:"file"`
	Chain           string         `json:"chain"`
	DefaultIdentity string         `json:"default_identity"`
	Connections     []string       `json:"connections"`
	Identities      []identityInfo `json:"identities"`
}

// runInfo - display the configuration without any secrets
func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info := infoReply{
		File:            m.file,
		Chain:           m.config.Chain,
		DefaultIdentity: m.config.DefaultIdentity,
		Connections:     m.config.Connections,
		Identities:      make([]identityInfo, 0, len(m.config.Identities)),
	}
	for _, name := range sortedNames(m.config.Identities) {
		id := m.config.Identities[name]
		info.Identities = append(info.Identities, identityInfo{
			Name:        name,
			Description: id.Description,
			Account:     id.Account,
			ReceiveOnly: "" == id.Data,
		})
	}

	printJson(m.w, info)
	return nil
}

func runKittydInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if err != nil {
		return err
	}
	defer client.Close()

	response, err := client.GetKittydInfo()
	if err != nil {
		return err
	}

	printJson(m.w, response)
	return nil
}
