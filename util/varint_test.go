// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/util"
)

var varint64Tests = []struct {
	value   uint64
	encoded []byte
}{
	{0, []byte{0x00}},
	{1, []byte{0x01}},
	{127, []byte{0x7f}},
	{128, []byte{0x80, 0x01}},
	{255, []byte{0xff, 0x01}},
	{16384, []byte{0x80, 0x80, 0x01}},
	{0xffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	{0xffffffffffffffff, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
}

func TestVarint64(t *testing.T) {
	for i, item := range varint64Tests {
		assert.Equal(t, item.encoded, util.ToVarint64(item.value), "%d: encode", i)

		value, count := util.FromVarint64(append(item.encoded, 0xff, 0x23))
		assert.Equal(t, item.value, value, "%d: decode", i)
		assert.Equal(t, len(item.encoded), count, "%d: count", i)
	}
}

func TestTruncatedVarint64(t *testing.T) {
	for i, buffer := range [][]byte{{}, {0x80}, {0xff, 0xff}} {
		value, count := util.FromVarint64(buffer)
		assert.Equal(t, uint64(0), value, "%d: value", i)
		assert.Equal(t, 0, count, "%d: count", i)
	}
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/kittyd/data", util.EnsureAbsolute("/var/lib/kittyd", "data"), "relative")
	assert.Equal(t, "/tmp/data", util.EnsureAbsolute("/var/lib/kittyd", "/tmp/./data"), "absolute")
}

func TestEnsureFileExists(t *testing.T) {
	wd, _ := os.Getwd()
	assert.True(t, util.EnsureFileExists(filepath.Join(wd, "paths.go")), "present")
	assert.False(t, util.EnsureFileExists(filepath.Join(wd, "no-such-file")), "absent")
}
