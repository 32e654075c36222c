// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared setup for the RPC tests
package fixtures

import (
	"sync"
	"time"

	"github.com/bitmark-inc/certgen"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fixtures"
)

// LogCategory - logger tag used by the tests
const LogCategory = fixtures.LogCategory

// SetupTestLogger - logging into a local testing directory
func SetupTestLogger() {
	fixtures.SetupTestLogger()
}

// TeardownTestLogger - stop logging
func TeardownTestLogger() {
	fixtures.TeardownTestLogger()
}

var pair struct {
	sync.Once
	certificate string
	key         string
}

func generate() {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("kittyd test certificate", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		panic(err)
	}
	pair.certificate = string(cert)
	pair.key = string(key)
}

// Certificate - PEM self signed certificate
func Certificate() string {
	pair.Do(generate)
	return pair.certificate
}

// Key - PEM private key matching Certificate
func Key() string {
	pair.Do(generate)
	return pair.key
}

// NewKey - a fresh signing key, panics on failure
func NewKey() *account.PrivateKey {
	key, err := account.NewPrivateKey()
	if nil != err {
		panic(err)
	}
	return key
}
