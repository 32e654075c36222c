// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/configuration"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/rpccalls"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
)

// returns true if the name is a directory
func checkFileExists(name string) (bool, error) {
	info, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return info.IsDir(), nil
}

func checkName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if "" == name {
		return "", fmt.Errorf("identity name is required")
	}
	return name, nil
}

// one or more comma separated HOST:PORT
func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", fmt.Errorf("connect is required")
	}
	for _, c := range strings.Split(connect, ",") {
		if _, _, err := net.SplitHostPort(c); nil != err {
			return "", fmt.Errorf("connect: %q  error: %s", c, err)
		}
	}
	return connect, nil
}

func checkDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if "" == description {
		return "", fmt.Errorf("description is required")
	}
	return description, nil
}

// an empty seed generates a new key
func checkSeed(seed string) (string, error) {
	if "" == seed {
		key, err := account.NewPrivateKey()
		if nil != err {
			return "", err
		}
		return key.Seed(), nil
	}
	if _, err := account.PrivateKeyFromBase58Seed(seed); nil != err {
		return "", err
	}
	return seed, nil
}

func checkKittyId(name string, s string) (entity.Id, error) {
	if "" == s {
		return 0, fmt.Errorf("%s is required", name)
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if nil != err {
		return 0, fmt.Errorf("%s: %q  error: %s", name, s, err)
	}
	return entity.Id(n), nil
}

// an identity name from the configuration or a Base58 account
func checkAccount(name string, config *configuration.Configuration) (account.Account, error) {
	if "" == name {
		name = config.DefaultIdentity
	}
	if a, err := config.Account(name); nil == err {
		return a, nil
	}
	return account.FromBase58(name)
}

func checkRecipient(c *cli.Context, flag string, config *configuration.Configuration) (account.Account, error) {
	name := strings.TrimSpace(c.String(flag))
	if "" == name {
		return account.Account{}, fmt.Errorf("%s is required", flag)
	}
	return checkAccount(name, config)
}

// decrypt the key of the selected identity
func checkOwnerWithPasswordPrompt(name string, config *configuration.Configuration, c *cli.Context) (*account.PrivateKey, error) {
	if "" == name {
		name = config.DefaultIdentity
	}

	password := c.GlobalString("password")
	if "" == password {
		var err error
		password, err = promptCheckPassword()
		if nil != err {
			return nil, err
		}
	}

	private, err := config.Private(password, name)
	if nil != err {
		return nil, err
	}
	return private.PrivateKey, nil
}

// connect to the first reachable kittyd
func newClient(m *metadata) (*rpccalls.Client, error) {
	if nil == m.config || 0 == len(m.config.Connections) {
		return nil, fault.MissingParameters
	}

	var err error
	for _, connect := range m.config.Connections {
		var client *rpccalls.Client
		client, err = rpccalls.NewClient(connect, m.verbose, m.e)
		if nil == err {
			return client, nil
		}
		if m.verbose {
			fmt.Fprintf(m.e, "connect: %s  error: %s\n", connect, err)
		}
	}
	return nil, err
}

func printJson(w io.Writer, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(w, "JSON error: %s\n", err)
		return
	}
	fmt.Fprintf(w, "%s\n", b)
}

func sortedNames(identities map[string]configuration.Identity) []string {
	names := make([]string, 0, len(identities))
	for name := range identities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
