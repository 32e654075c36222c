// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/storage"
)

// Transfer - give a kitty to another account
//
// a sale listing stays with the kitty
func (o *ownership) Transfer(origin Origin, recipient account.Account, id entity.Id) error {

	return o.run(func(trx storage.Transaction) (pending, error) {

		owner, err := getOwner(trx, id)
		if nil != err {
			return pending{}, err
		}
		if owner != origin.Caller {
			return pending{}, fault.NotOwner
		}

		err = o.ledger.Transfer(trx, origin.Caller, o.protocol, o.price, ledger.KeepAlive)
		if nil != err {
			return pending{}, err
		}

		trx.Put(storage.Pool.Owners, id.Bytes(), recipient.Bytes())

		return pending{
			command: TransferredCommand,
			item: TransferredEvent{
				From: origin.Caller,
				To:   recipient,
				Id:   id,
			},
		}, nil
	})
}

// List - offer a kitty for sale at the fixed price
func (o *ownership) List(origin Origin, id entity.Id) error {

	return o.run(func(trx storage.Transaction) (pending, error) {

		owner, err := getOwner(trx, id)
		if nil != err {
			return pending{}, err
		}
		if owner != origin.Caller {
			return pending{}, fault.NotOwner
		}
		if trx.Has(storage.Pool.Listings, id.Bytes()) {
			return pending{}, fault.AlreadyListed
		}

		err = o.ledger.Transfer(trx, origin.Caller, o.protocol, o.price, ledger.KeepAlive)
		if nil != err {
			return pending{}, err
		}

		trx.Put(storage.Pool.Listings, id.Bytes(), []byte{})

		return pending{
			command: ListedCommand,
			item: ListedEvent{
				Owner: origin.Caller,
				Id:    id,
			},
		}, nil
	})
}

// Purchase - buy a listed kitty, the price goes to its owner
func (o *ownership) Purchase(origin Origin, id entity.Id) error {

	return o.run(func(trx storage.Transaction) (pending, error) {

		owner, err := getOwner(trx, id)
		if nil != err {
			return pending{}, err
		}
		if owner == origin.Caller {
			return pending{}, fault.SelfPurchase
		}
		if !trx.Has(storage.Pool.Listings, id.Bytes()) {
			return pending{}, fault.NotListed
		}

		err = o.ledger.Transfer(trx, origin.Caller, owner, o.price, ledger.KeepAlive)
		if nil != err {
			return pending{}, err
		}

		trx.Put(storage.Pool.Owners, id.Bytes(), origin.Caller.Bytes())
		trx.Delete(storage.Pool.Listings, id.Bytes())

		return pending{
			command: PurchasedCommand,
			item: PurchasedEvent{
				Seller: owner,
				Buyer:  origin.Caller,
				Id:     id,
				Price:  o.price,
			},
		}, nil
	})
}
