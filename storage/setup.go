// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/logger"
)

// exported storage pools
//
// note all must be exported (i.e. initial capital) or initialisation will panic
type pools struct {
	Entities *PoolHandle `prefix:"K"`
	Owners   *PoolHandle `prefix:"O"`
	Parents  *PoolHandle `prefix:"P"`
	Listings *PoolHandle `prefix:"S"`
	Balances *PoolHandle `prefix:"B"`
	Globals  *PoolHandle `prefix:"G"`
	TestData *PoolHandle `prefix:"Z"`
}

// Pool - the set of exported pools
var Pool pools

// for database version
var versionKey = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}

// holds the database handle
var poolData struct {
	sync.RWMutex
	log      *logger.L
	database *leveldb.DB
	trx      *transaction
	version  int
}

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Initialise - open up the database connection
//
// this must be called before any pool is accessed
//
// currentVersion is the kitty record layout of the running program,
// an empty database is tagged with it; the returned flag is true if
// the records on disk use an older layout
func Initialise(database string, readOnly bool, currentVersion int) (bool, error) {
	poolData.Lock()
	defer poolData.Unlock()

	ok := false
	mustMigrate := false

	if nil != poolData.database {
		return mustMigrate, fault.AlreadyInitialised
	}

	poolData.log = logger.New("storage")

	defer func() {
		if !ok {
			dbClose()
		}
	}()

	db, version, err := getDB(database, readOnly)
	if nil != err {
		return mustMigrate, err
	}
	poolData.database = db

	if err := setupPools(); nil != err {
		return mustMigrate, err
	}

	// an absent tag on a database holding kitties is the original layout
	empty := false
	if version < 0 {
		empty = Pool.Entities.isEmpty()
		version = 0
	}

	// ensure no database downgrade
	if version > currentVersion {
		poolData.log.Criticalf("database version: %d > current version: %d", version, currentVersion)
		return mustMigrate, fault.DatabaseVersionTooNew
	}

	switch {
	case empty && readOnly:
		version = currentVersion

	case empty:
		// database was empty so tag as current version
		err = putVersion(poolData.database, currentVersion)
		if err != nil {
			return mustMigrate, err
		}
		version = currentVersion

	case readOnly && version != currentVersion:
		// prevent readOnly from modifying the database
		poolData.log.Criticalf("database is inconsistent: version: %d  current: %d", version, currentVersion)
		return mustMigrate, fault.DatabaseInconsistent

	case version < currentVersion:
		mustMigrate = true
		poolData.log.Warnf("database version: %d < current version: %d", version, currentVersion)
	}

	poolData.version = version
	poolData.trx = newTransaction()

	poolData.log.Infof("opened: %q  version: %d", database, version)

	ok = true // prevent db close
	return mustMigrate, nil
}

// scan each field of the pool struct and assign a handle
func setupPools() error {

	// this will be a struct type
	poolType := reflect.TypeOf(Pool)

	// get write access by using pointer + Elem()
	poolValue := reflect.ValueOf(&Pool).Elem()

	for i := 0; i < poolType.NumField(); i += 1 {

		fieldInfo := poolType.Field(i)

		prefixTag := fieldInfo.Tag.Get("prefix")
		if 1 != len(prefixTag) {
			return fmt.Errorf("pool: %v has invalid prefix: %q", fieldInfo, prefixTag)
		}

		prefix := prefixTag[0]
		limit := []byte(nil)
		if prefix < 255 {
			limit = []byte{prefix + 1}
		}

		p := &PoolHandle{
			prefix: prefix,
			limit:  limit,
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
	}
	return nil
}

func dbClose() {
	if nil != poolData.database {
		poolData.database.Close()
		poolData.database = nil
	}
	poolData.trx = nil
}

// Finalise - close the database connection
func Finalise() {
	poolData.Lock()
	dbClose()
	poolData.Unlock()
}

// SchemaVersion - the layout version of the persisted kitty records
func SchemaVersion() int {
	poolData.RLock()
	defer poolData.RUnlock()
	return poolData.version
}

// SetSchemaVersion - record that all kitty records now use a newer layout
//
// the version only ever moves forward
func SetSchemaVersion(version int) error {
	poolData.Lock()
	defer poolData.Unlock()

	if nil == poolData.database {
		return fault.NotInitialised
	}
	if version < poolData.version {
		return fmt.Errorf("schema version cannot move backwards from: %d to: %d", poolData.version, version)
	}

	err := putVersion(poolData.database, version)
	if nil != err {
		return err
	}
	poolData.version = version
	return nil
}

// return:
//   database handle
//   version number, -1 if no version tag was found
func getDB(name string, readOnly bool) (*leveldb.DB, int, error) {
	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(name, opt)
	if nil != err {
		return nil, 0, err
	}

	versionValue, err := db.Get(versionKey, nil)
	if leveldb.ErrNotFound == err {
		return db, -1, nil
	} else if nil != err {
		db.Close()
		return nil, 0, err
	}

	if 4 != len(versionValue) {
		db.Close()
		return nil, 0, fmt.Errorf("incompatible database version length: expected: %d  actual: %d", 4, len(versionValue))
	}

	version := int(binary.BigEndian.Uint32(versionValue))
	return db, version, nil
}

func putVersion(db *leveldb.DB, version int) error {
	currentVersion := make([]byte, 4)
	binary.BigEndian.PutUint32(currentVersion, uint32(version))

	return db.Put(versionKey, currentVersion, nil)
}

// NewDBTransaction - start a batch of writes
//
// only one transaction may be open at a time
func NewDBTransaction() (Transaction, error) {
	poolData.RLock()
	trx := poolData.trx
	poolData.RUnlock()

	if nil == trx {
		return nil, fault.NotInitialised
	}
	err := trx.Begin()
	if nil != err {
		return nil, err
	}
	return trx, nil
}
