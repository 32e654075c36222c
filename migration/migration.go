// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package migration - rewrite kitty records into the current layout
//
// runs once at start up before any request is accepted; each
// supported (from, to) pair has its own transition and a database
// at any other version is left alone
package migration

import (
	"github.com/bitmark-inc/kittyd/storage"
	"github.com/bitmark-inc/logger"
)

// BatchSize - records rewritten per committed transaction
const BatchSize = 256

// Report - outcome of a run
type Report struct {
	From           int  `json:"from"`
	To             int  `json:"to"`
	Ran            bool `json:"ran"`
	Migrated       int  `json:"migrated"`
	AlreadyCurrent int  `json:"alreadyCurrent"`
	Skipped        int  `json:"skipped"`
}

type transition struct {
	from         int
	to           int
	targetLength int

	// false if the record is not in the from layout
	convert func([]byte) ([]byte, bool)
}

var transitions = []transition{
	{
		from:         0,
		to:           1,
		targetLength: lengthV1,
		convert: func(buffer []byte) ([]byte, bool) {
			r, ok := decodeV0(buffer)
			if !ok {
				return nil, false
			}
			return v0ToV1(r).pack(), true
		},
	},
	{
		from:         0,
		to:           2,
		targetLength: lengthV2,
		convert: func(buffer []byte) ([]byte, bool) {
			r, ok := decodeV0(buffer)
			if !ok {
				return nil, false
			}
			return v0ToV2(r).pack(), true
		},
	},
	{
		from:         1,
		to:           2,
		targetLength: lengthV2,
		convert: func(buffer []byte) ([]byte, bool) {
			r, ok := decodeV1(buffer)
			if !ok {
				return nil, false
			}
			return v1ToV2(r).pack(), true
		},
	},
}

// find the transition for exactly this pair
func lookup(from int, to int) (transition, bool) {
	for _, t := range transitions {
		if t.from == from && t.to == to {
			return t, true
		}
	}
	return transition{}, false
}

// Run - migrate all kitty records to the current layout
//
// a database already at current, or at a version with no
// transition, is not touched; only storage failures are errors
func Run(current int) (Report, error) {
	log := logger.New("migration")

	onDisk := storage.SchemaVersion()
	report := Report{
		From: onDisk,
		To:   current,
	}

	t, ok := lookup(onDisk, current)
	if !ok {
		if onDisk != current {
			log.Warnf("no migration from version: %d to: %d", onDisk, current)
		}
		return report, nil
	}

	log.Infof("migrate from version: %d to: %d", onDisk, current)
	report.Ran = true

	cursor := storage.Pool.Entities.NewFetchCursor()
	for {
		elements, err := cursor.Fetch(BatchSize)
		if nil != err {
			return report, err
		}
		if 0 == len(elements) {
			break
		}

		err = rewrite(log, t, elements, &report)
		if nil != err {
			return report, err
		}
	}

	err := storage.SetSchemaVersion(current)
	if nil != err {
		return report, err
	}

	log.Infof("migrated: %d  already current: %d  skipped: %d", report.Migrated, report.AlreadyCurrent, report.Skipped)
	return report, nil
}

// one batch as a single transaction
func rewrite(log *logger.L, t transition, elements []storage.Element, report *Report) error {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	for _, e := range elements {

		// written by an earlier interrupted run
		if t.targetLength == len(e.Value) {
			report.AlreadyCurrent += 1
			continue
		}

		record, ok := t.convert(e.Value)
		if !ok {
			log.Warnf("skip key: %x  undecodable value: %x", e.Key, e.Value)
			report.Skipped += 1
			continue
		}

		trx.Put(storage.Pool.Entities, e.Key, record)
		report.Migrated += 1
	}

	return trx.Commit()
}
