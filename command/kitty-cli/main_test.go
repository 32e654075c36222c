// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/command/kitty-cli/configuration"
	"github.com/bitmark-inc/kittyd/entity"
)

// run the app with XDG_CONFIG_HOME set to dir
func run(t *testing.T, dir string, arguments ...string) (string, error) {
	previous := os.Getenv("XDG_CONFIG_HOME")
	assert.Nil(t, os.Setenv("XDG_CONFIG_HOME", dir), "set environment")
	defer os.Setenv("XDG_CONFIG_HOME", previous)

	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"kitty-cli"}, arguments...))
	return w.String(), err
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "", "generate")
	assert.Nil(t, err, "generate")

	var g generated
	assert.Nil(t, json.Unmarshal([]byte(out), &g), "decode output")

	key, err := account.PrivateKeyFromBase58Seed(g.Seed)
	assert.Nil(t, err, "seed decodes")
	assert.Equal(t, key.Account(), g.Account, "account matches seed")
}

func TestSetupAddInfo(t *testing.T) {
	dir, err := ioutil.TempDir("", "kitty-cli")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	_, err = run(t, dir, "-n", "local", "-i", "first", "-p", "password1",
		"setup", "-c", "127.0.0.1:2130", "-d", "first identity")
	assert.Nil(t, err, "setup")

	file := filepath.Join(dir, "kitty-cli", "local-kitty-cli.json")
	config, err := configuration.Load(file)
	assert.Nil(t, err, "load")
	assert.Equal(t, "first", config.DefaultIdentity, "default identity")
	assert.Equal(t, "local", config.Chain, "chain")
	assert.Equal(t, []string{"127.0.0.1:2130"}, config.Connections, "connections")

	_, err = run(t, dir, "-n", "local", "-i", "first", "-p", "password1",
		"setup", "-c", "127.0.0.1:2130", "-d", "again")
	assert.NotNil(t, err, "setup does not overwrite")

	other, err := account.NewPrivateKey()
	assert.Nil(t, err, "key")
	_, err = run(t, dir, "-n", "local", "-i", "friend", "add", "-d", "a friend", "-a", other.Account().String())
	assert.Nil(t, err, "add receive only")

	out, err := run(t, dir, "-n", "local", "info")
	assert.Nil(t, err, "info")

	var info infoReply
	assert.Nil(t, json.Unmarshal([]byte(out), &info), "decode info")
	assert.Equal(t, "first", info.DefaultIdentity, "default unchanged by receive only add")
	assert.Equal(t, 2, len(info.Identities), "identities")
	assert.Equal(t, "first", info.Identities[0].Name, "sorted")
	assert.False(t, info.Identities[0].ReceiveOnly, "first has a key")
	assert.Equal(t, "friend", info.Identities[1].Name, "sorted")
	assert.True(t, info.Identities[1].ReceiveOnly, "friend is receive only")

	a, err := checkAccount("friend", config)
	assert.NotNil(t, err, "old configuration does not know friend")
	config, err = configuration.Load(file)
	assert.Nil(t, err, "reload")
	a, err = checkAccount("friend", config)
	assert.Nil(t, err, "friend by name")
	assert.Equal(t, other.Account(), a, "friend account")
	a, err = checkAccount(other.Account().String(), config)
	assert.Nil(t, err, "friend by account")
	assert.Equal(t, other.Account(), a, "friend account")
}

func TestUnknownNetwork(t *testing.T) {
	_, err := run(t, "/tmp", "-n", "bitcoin", "info")
	assert.NotNil(t, err, "bad network")
}

func TestChecks(t *testing.T) {
	_, err := checkConnect("127.0.0.1:2130,[::1]:2130")
	assert.Nil(t, err, "two connections")
	_, err = checkConnect("127.0.0.1")
	assert.NotNil(t, err, "missing port")
	_, err = checkConnect("")
	assert.NotNil(t, err, "empty")

	id, err := checkKittyId("kitty", "42")
	assert.Nil(t, err, "id")
	assert.Equal(t, entity.Id(42), id, "id value")
	_, err = checkKittyId("kitty", "-1")
	assert.NotNil(t, err, "negative")
	_, err = checkKittyId("kitty", "4294967296")
	assert.NotNil(t, err, "too large")

	seed, err := checkSeed("")
	assert.Nil(t, err, "new seed")
	same, err := checkSeed(seed)
	assert.Nil(t, err, "existing seed")
	assert.Equal(t, seed, same, "kept")
	_, err = checkSeed("not a seed")
	assert.NotNil(t, err, "bad seed")
}
