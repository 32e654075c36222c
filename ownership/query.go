// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/allocator"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/storage"
)

// queries read committed data only

// Get - the kitty record
func (o *ownership) Get(id entity.Id) (entity.Entity, bool) {
	kitty, err := getKitty(nil, id)
	return kitty, nil == err
}

// Owner - current owner of a kitty
func (o *ownership) Owner(id entity.Id) (account.Account, bool) {
	owner, err := getOwner(nil, id)
	return owner, nil == err
}

// Parents - false for a created kitty or an unknown one
func (o *ownership) Parents(id entity.Id) (Parents, bool) {
	buffer := storage.Pool.Parents.Get(id.Bytes())
	if nil == buffer {
		return Parents{}, false
	}
	return unpackParents(id, buffer), true
}

// IsListed - true if the kitty can be purchased
func (o *ownership) IsListed(id entity.Id) bool {
	return storage.Pool.Listings.Has(id.Bytes())
}

// Kitty - the combined view of one kitty
func (o *ownership) Kitty(id entity.Id) (Record, bool) {
	kitty, ok := o.Get(id)
	if !ok {
		return Record{}, false
	}
	owner, ok := o.Owner(id)
	if !ok {
		return Record{}, false
	}
	r := Record{
		Id:     id,
		Kitty:  kitty,
		Owner:  owner,
		Listed: o.IsListed(id),
	}
	if parents, ok := o.Parents(id); ok {
		r.Parents = &parents
	}
	return r, true
}

// NextId - the identifier the next creation will receive
func (o *ownership) NextId() entity.Id {
	return allocator.Peek()
}

// OwnedBy - up to count kitties of owner with id >= start
//
// there is no per-owner index so this scans the owner pool
func (o *ownership) OwnedBy(owner account.Account, start entity.Id, count int) ([]entity.Id, error) {
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	cursor := storage.Pool.Owners.NewFetchCursor().Seek(start.Bytes())
	result := make([]entity.Id, 0, count)

scanning:
	for len(result) < count {
		elements, err := cursor.Fetch(scanBatch)
		if nil != err {
			return nil, err
		}
		if 0 == len(elements) {
			break scanning
		}
		for _, e := range elements {
			if string(owner.Bytes()) != string(e.Value) {
				continue
			}
			id, ok := entity.IdFromBytes(e.Key)
			if !ok {
				return nil, fault.DatabaseInconsistent
			}
			result = append(result, id)
			if len(result) >= count {
				break scanning
			}
		}
	}
	return result, nil
}

// Listed - up to count listed kitties with id >= start
func (o *ownership) Listed(start entity.Id, count int) ([]entity.Id, error) {
	elements, err := storage.Pool.Listings.NewFetchCursor().Seek(start.Bytes()).Fetch(count)
	if nil != err {
		return nil, err
	}

	result := make([]entity.Id, 0, len(elements))
	for _, e := range elements {
		id, ok := entity.IdFromBytes(e.Key)
		if !ok {
			return nil, fault.DatabaseInconsistent
		}
		result = append(result, id)
	}
	return result, nil
}

// owner records read per cursor fetch
const scanBatch = 256
