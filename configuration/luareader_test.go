// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/configuration"
	"github.com/bitmark-inc/kittyd/fault"
)

type database struct {
	Directory string `gluamapper:"directory"`
	Name      string `gluamapper:"name"`
}

type sample struct {
	Chain    string            `gluamapper:"chain"`
	Price    uint64            `gluamapper:"price"`
	Listen   []string          `gluamapper:"listen"`
	Database database          `gluamapper:"database"`
	Amounts  map[string]uint64 `gluamapper:"amounts"`
	Unset    string            `gluamapper:"unset"`
}

const sampleFile = `
local port = 2130
return {
    chain = "testing",
    price = 100,
    listen = { "127.0.0.1:" .. port, "[::1]:" .. port },
    database = {
        name = "kitty.leveldb",
    },
    amounts = {
        first = 5,
    },
}
`

func write(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "kittyd-configuration")
	assert.Nil(t, err, "temp dir")
	fileName := filepath.Join(dir, "kittyd.conf")
	assert.Nil(t, ioutil.WriteFile(fileName, []byte(content), 0600), "write")
	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParse(t *testing.T) {
	fileName, cleanup := write(t, sampleFile)
	defer cleanup()

	s := sample{
		Unset: "default",
		Database: database{
			Directory: "data",
		},
	}
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Nil(t, err, "parse")

	assert.Equal(t, "testing", s.Chain, "chain")
	assert.Equal(t, uint64(100), s.Price, "price")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, s.Listen, "listen")
	assert.Equal(t, "kitty.leveldb", s.Database.Name, "database name")
	assert.Equal(t, "data", s.Database.Directory, "default kept")
	assert.Equal(t, uint64(5), s.Amounts["first"], "map")
	assert.Equal(t, "default", s.Unset, "untouched")
}

func TestArgIsFileName(t *testing.T) {
	fileName, cleanup := write(t, `return { chain = arg[0] }`)
	defer cleanup()

	s := sample{}
	err := configuration.ParseConfigurationFile(fileName, &s)
	assert.Nil(t, err, "parse")
	assert.Equal(t, fileName, s.Chain, "arg[0]")
}

func TestErrors(t *testing.T) {
	err := configuration.ParseConfigurationFile("/no/such/kittyd.conf", &sample{})
	assert.Equal(t, fault.ConfigurationFileNotFound, err, "missing file")

	fileName, cleanup := write(t, `return 42`)
	defer cleanup()
	err = configuration.ParseConfigurationFile(fileName, &sample{})
	assert.Equal(t, fault.ConfigurationNotTable, err, "not a table")

	broken, cleanup2 := write(t, `return {`)
	defer cleanup2()
	err = configuration.ParseConfigurationFile(broken, &sample{})
	assert.NotNil(t, err, "syntax error")
}
