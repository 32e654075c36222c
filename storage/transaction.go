// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// Transaction - a batch of writes applied atomically on Commit
//
// reads through a transaction see its own uncommitted writes
type Transaction interface {
	Begin() error
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	InUse() bool
	Commit() error
	Abort()
}

type transaction struct {
	sync.Mutex
	inUse bool
	batch *leveldb.Batch
	cache *writeCache
}

func newTransaction() *transaction {
	return &transaction{
		inUse: false,
		batch: new(leveldb.Batch),
		cache: newCache(),
	}
}

// Begin - start a new batch
func (t *transaction) Begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.TransactionInUse
	}
	t.inUse = true
	return nil
}

// InUse - true between Begin and Commit/Abort
func (t *transaction) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}

// Put - store a key/value bytes pair
func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	t.Lock()
	defer t.Unlock()

	k := p.prefixKey(key)
	v := make([]byte, len(value))
	copy(v, value)

	t.batch.Put(k, v)
	t.cache.set(dbPut, k, v)
}

// PutN - store a big endian uint64 value
func (t *transaction) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(p, key, buffer)
}

// Delete - remove a key
func (t *transaction) Delete(p *PoolHandle, key []byte) {
	t.Lock()
	defer t.Unlock()

	k := p.prefixKey(key)
	t.batch.Delete(k)
	t.cache.set(dbDelete, k, nil)
}

// Get - read a value, uncommitted writes take precedence
func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	t.Lock()
	data, found := t.cache.get(p.prefixKey(key))
	t.Unlock()

	if found {
		if dbDelete == data.op {
			return nil
		}
		return data.value
	}
	return p.Get(key)
}

// GetN - read a big endian uint64 value
func (t *transaction) GetN(p *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(p, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		logger.Panicf("transaction.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

// Has - check if a key exists
func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	t.Lock()
	data, found := t.cache.get(p.prefixKey(key))
	t.Unlock()

	if found {
		return dbPut == data.op
	}
	return p.Has(key)
}

// Commit - write the whole batch
func (t *transaction) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.TransactionNotInUse
	}

	poolData.RLock()
	db := poolData.database
	var err error
	if nil == db {
		err = fault.NotInitialised
	} else {
		err = db.Write(t.batch, nil)
	}
	poolData.RUnlock()

	t.reset()
	return err
}

// Abort - discard the batch
func (t *transaction) Abort() {
	t.Lock()
	defer t.Unlock()
	t.reset()
}

func (t *transaction) reset() {
	t.batch.Reset()
	t.cache.clear()
	t.inUse = false
}
