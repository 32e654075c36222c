// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

const (
	dir          = "testing"
	LogCategory  = "testing"
	DatabaseName = dir + "/test.leveldb"
)

// SetupTestLogger - logging into a local testing directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the testing directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

// SetupTestDatabase - open an empty database tagged with version
func SetupTestDatabase(version int) error {
	_ = os.RemoveAll(DatabaseName)
	_, err := storage.Initialise(DatabaseName, storage.ReadWrite, version)
	return err
}

// TeardownTestDatabase - close and remove the database
func TeardownTestDatabase() {
	storage.Finalise()
	_ = os.RemoveAll(DatabaseName)
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
