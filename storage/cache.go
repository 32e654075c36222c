// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	cache "github.com/patrickmn/go-cache"
)

// pending operations of an open transaction
type cacheOperation int

const (
	dbPut cacheOperation = iota
	dbDelete
)

type cacheData struct {
	op    cacheOperation
	value []byte
}

// holds the uncommitted writes so that reads inside the
// transaction see them
type writeCache struct {
	cache *cache.Cache
}

func newCache() *writeCache {
	return &writeCache{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// second result is false if the key has no pending operation
func (c *writeCache) get(key []byte) (cacheData, bool) {
	obj, found := c.cache.Get(string(key))
	if !found {
		return cacheData{}, false
	}
	return obj.(cacheData), true
}

func (c *writeCache) set(op cacheOperation, key []byte, value []byte) {
	c.cache.Set(string(key), cacheData{
		op:    op,
		value: value,
	}, cache.NoExpiration)
}

func (c *writeCache) clear() {
	c.cache.Flush()
}
