// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"sort"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/storage"
)

// store the genesis seed and the initial balances
//
// runs once: a database that already holds a seed is left alone
func applyGenesis(log *logger.L, options *Configuration, balances ledger.Ledger) error {
	if randomness.HasGenesis() {
		log.Debug("genesis already applied")
		return nil
	}

	seed, err := randomness.SeedFromHex(options.GenesisSeed)
	if nil != err {
		log.Errorf("genesis seed: %q  error: %s", options.GenesisSeed, err)
		return err
	}

	names := make([]string, 0, len(options.Endowments))
	for name := range options.Endowments {
		names = append(names, name)
	}
	sort.Strings(names)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	randomness.SetGenesis(trx, seed)

	for _, name := range names {
		a, err := account.FromBase58(name)
		if nil != err {
			trx.Abort()
			log.Errorf("endowment account: %q  error: %s", name, err)
			return err
		}
		amount := options.Endowments[name]
		err = balances.Deposit(trx, a, amount)
		if nil != err {
			trx.Abort()
			log.Errorf("endowment account: %s  amount: %d  error: %s", a, amount, err)
			return err
		}
		log.Infof("endowment account: %s  amount: %d", a, amount)
	}

	return trx.Commit()
}
