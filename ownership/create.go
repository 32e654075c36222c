// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/allocator"
	"github.com/bitmark-inc/kittyd/combination"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/storage"
)

// Create - a new kitty with no parents owned by the caller
func (o *ownership) Create(origin Origin, label entity.Label) (entity.Id, entity.Entity, error) {

	var id entity.Id
	var kitty entity.Entity

	err := o.run(func(trx storage.Transaction) (pending, error) {

		var err error
		id, err = allocator.Allocate(trx)
		if nil != err {
			return pending{}, err
		}

		selector := combination.DeriveSelector(randomness.Current(trx), origin.Caller, origin.Sequence)
		kitty = entity.Entity{
			DNA:   combination.Genesis(selector),
			Label: label,
		}

		err = o.ledger.Transfer(trx, origin.Caller, o.protocol, o.price, ledger.KeepAlive)
		if nil != err {
			return pending{}, err
		}

		key := id.Bytes()
		trx.Put(storage.Pool.Entities, key, kitty.Pack())
		trx.Put(storage.Pool.Owners, key, origin.Caller.Bytes())

		return pending{
			command: CreatedCommand,
			item: CreatedEvent{
				Owner: origin.Caller,
				Id:    id,
				Kitty: kitty,
			},
		}, nil
	})
	if nil != err {
		return 0, entity.Entity{}, err
	}

	return id, kitty, nil
}

// Breed - a new kitty combined from two existing ones
//
// the caller need not own either parent
func (o *ownership) Breed(origin Origin, first entity.Id, second entity.Id, label entity.Label) (entity.Id, entity.Entity, error) {

	if first == second {
		return 0, entity.Entity{}, fault.SameEntity
	}

	var id entity.Id
	var kitty entity.Entity

	err := o.run(func(trx storage.Transaction) (pending, error) {

		parent1, err := getKitty(trx, first)
		if nil != err {
			return pending{}, err
		}
		parent2, err := getKitty(trx, second)
		if nil != err {
			return pending{}, err
		}

		id, err = allocator.Allocate(trx)
		if nil != err {
			return pending{}, err
		}

		selector := combination.DeriveSelector(randomness.Current(trx), origin.Caller, origin.Sequence)
		kitty = entity.Entity{
			DNA:   combination.Combine(parent1.DNA, parent2.DNA, selector),
			Label: label,
		}

		err = o.ledger.Transfer(trx, origin.Caller, o.protocol, o.price, ledger.KeepAlive)
		if nil != err {
			return pending{}, err
		}

		key := id.Bytes()
		trx.Put(storage.Pool.Entities, key, kitty.Pack())
		trx.Put(storage.Pool.Owners, key, origin.Caller.Bytes())
		trx.Put(storage.Pool.Parents, key, packParents(first, second))

		return pending{
			command: BredCommand,
			item: BredEvent{
				Owner: origin.Caller,
				Id:    id,
				Kitty: kitty,
				Parents: Parents{
					First:  first,
					Second: second,
				},
			},
		}, nil
	})
	if nil != err {
		return 0, entity.Entity{}, err
	}

	return id, kitty, nil
}
