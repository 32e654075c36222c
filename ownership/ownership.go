// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - the authoritative record of kitties, their
// owners, parents and sale status
//
// every mutating operation runs under a single lock inside a single
// storage transaction; all checks precede any write and a failure
// aborts the transaction so a failed operation changes nothing
package ownership

import (
	"sync"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/logger"
)

// Origin - the authorised caller of an operation
//
// Sequence distinguishes requests from the same caller against the
// same seed
type Origin struct {
	Caller   account.Account
	Sequence uint32
}

// Parents - the two kitties a bred kitty came from
type Parents struct {
	First  entity.Id `json:"first"`
	Second entity.Id `json:"second"`
}

// Record - everything known about one kitty
type Record struct {
	Id      entity.Id       `json:"id"`
	Kitty   entity.Entity   `json:"kitty"`
	Owner   account.Account `json:"owner"`
	Parents *Parents        `json:"parents,omitempty"`
	Listed  bool            `json:"listed"`
}

// Ownership - interface for the kitty store
type Ownership interface {
	Create(Origin, entity.Label) (entity.Id, entity.Entity, error)
	Breed(Origin, entity.Id, entity.Id, entity.Label) (entity.Id, entity.Entity, error)
	Transfer(Origin, account.Account, entity.Id) error
	List(Origin, entity.Id) error
	Purchase(Origin, entity.Id) error

	Get(entity.Id) (entity.Entity, bool)
	Owner(entity.Id) (account.Account, bool)
	Parents(entity.Id) (Parents, bool)
	IsListed(entity.Id) bool
	Kitty(entity.Id) (Record, bool)
	OwnedBy(account.Account, entity.Id, int) ([]entity.Id, error)
	Listed(entity.Id, int) ([]entity.Id, error)
	NextId() entity.Id
	Price() uint64
}

type ownership struct {
	log      *logger.L
	ledger   ledger.Ledger
	price    uint64
	protocol account.Account
	events   *messagebus.BroadcastQueue
}

// to ensure synchronised kitty updates
var toLock sync.Mutex

var globalData struct {
	sync.RWMutex
	data        *ownership
	initialised bool
}

// Initialise - set up the store
//
// price is charged for every operation and must not be below the
// ledger's minimum balance
func Initialise(price uint64, balances ledger.Ledger) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("ownership")

	if price < balances.MinimumBalance() {
		log.Criticalf("price: %d below minimum balance: %d", price, balances.MinimumBalance())
		return fault.InvalidPrice
	}

	globalData.data = &ownership{
		log:      log,
		ledger:   balances,
		price:    price,
		protocol: account.Protocol(),
		events:   messagebus.Bus.Events,
	}
	globalData.initialised = true

	log.Infof("price: %d  protocol account: %s", price, globalData.data.protocol)
	return nil
}

// Finalise - stop using the store
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.data.log.Info("finished")
	globalData.data.log.Flush()

	globalData.data = nil
	globalData.initialised = false
	return nil
}

// Get - return the Ownership interface, nil if not initialised
func Get() Ownership {
	globalData.RLock()
	defer globalData.RUnlock()
	if nil == globalData.data {
		return nil
	}
	return globalData.data
}

// Price - fee charged per operation
func (o *ownership) Price() uint64 {
	return o.price
}
