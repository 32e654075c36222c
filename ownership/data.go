// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/randomness"
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// from storage/doc.go:
//
//   Entities  id → dna ++ label
//   Owners    id → account
//   Parents   id → id ++ id
//   Listings  id → (empty)

// run one operation as a single transaction
//
// f performs all checks before writing anything, on error nothing is
// committed; on success the seed is advanced, the batch committed and
// only then the event sent
func (o *ownership) run(f func(trx storage.Transaction) (pending, error)) error {

	// ensure single threaded
	toLock.Lock()
	defer toLock.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	event, err := f(trx)
	if nil != err {
		trx.Abort()
		o.log.Debugf("rejected: %s", err)
		return err
	}

	randomness.Mix(trx, event.pack())

	err = trx.Commit()
	if nil != err {
		o.log.Errorf("commit: %s  error: %s", event.command, err)
		return err
	}

	o.log.Infof("%s: %+v", event.command, event.item)
	o.events.Send(event.command, event.item)
	return nil
}

// read a kitty record, UnknownEntity if absent
func getKitty(trx storage.Transaction, id entity.Id) (entity.Entity, error) {
	var record []byte
	if nil == trx {
		record = storage.Pool.Entities.Get(id.Bytes())
	} else {
		record = trx.Get(storage.Pool.Entities, id.Bytes())
	}
	if nil == record {
		return entity.Entity{}, fault.UnknownEntity
	}

	kitty, err := entity.Unpack(record)
	if nil != err {
		logger.Criticalf("ownership: kitty: %d  record: %x  error: %s", id, record, err)
		logger.Panic("ownership: Entities database corrupt")
	}
	return kitty, nil
}

// read the owner of a kitty, UnknownEntity if absent
func getOwner(trx storage.Transaction, id entity.Id) (account.Account, error) {
	var buffer []byte
	if nil == trx {
		buffer = storage.Pool.Owners.Get(id.Bytes())
	} else {
		buffer = trx.Get(storage.Pool.Owners, id.Bytes())
	}
	if nil == buffer {
		return account.Account{}, fault.UnknownEntity
	}

	owner, err := account.FromBytes(buffer)
	if nil != err {
		logger.Criticalf("ownership: kitty: %d  owner: %x  error: %s", id, buffer, err)
		logger.Panic("ownership: Owners database corrupt")
	}
	return owner, nil
}

func packParents(first entity.Id, second entity.Id) []byte {
	buffer := make([]byte, 2*entity.IdLength)
	binary.BigEndian.PutUint32(buffer, uint32(first))
	binary.BigEndian.PutUint32(buffer[entity.IdLength:], uint32(second))
	return buffer
}

func unpackParents(id entity.Id, buffer []byte) Parents {
	if 2*entity.IdLength != len(buffer) {
		logger.Criticalf("ownership: kitty: %d  parents: %x", id, buffer)
		logger.Panic("ownership: Parents database corrupt")
	}
	return Parents{
		First:  entity.Id(binary.BigEndian.Uint32(buffer)),
		Second: entity.Id(binary.BigEndian.Uint32(buffer[entity.IdLength:])),
	}
}
