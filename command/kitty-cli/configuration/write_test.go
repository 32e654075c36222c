// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSaveAndLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "kitty-cli-configuration")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "local-kitty-cli.json")

	config := &Configuration{
		DefaultIdentity: "first",
		Chain:           "local",
		Connections:     []string{"127.0.0.1:2130"},
		Identities: map[string]Identity{
			"first": {Description: "one", Account: "acct"},
		},
	}

	assert.Nil(t, Save(fileName, config), "first save")

	loaded, err := Load(fileName)
	assert.Nil(t, err, "load")
	assert.Equal(t, config, loaded, "same configuration")

	config.DefaultIdentity = "second"
	assert.Nil(t, Save(fileName, config), "second save")

	previous, err := Load(fileName + ".bk")
	assert.Nil(t, err, "load backup")
	assert.Equal(t, "first", previous.DefaultIdentity, "backup holds previous")

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.NotNil(t, err, "missing file")
}
