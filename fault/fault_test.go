// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/kittyd/fault"
)

// test that the ledger errors fall into the expected classes
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
		record   bool
	}{
		{fault.AlreadyListed, true, false, false, false, false, false},
		{fault.SameEntity, false, true, false, false, false, false},
		{fault.NotOwner, false, true, false, false, false, false},
		{fault.SelfPurchase, false, true, false, false, false, false},
		{fault.IdentifierSpaceExhausted, false, false, true, false, false, false},
		{fault.UnknownEntity, false, false, false, true, false, false},
		{fault.NotListed, false, false, false, true, false, false},
		{fault.InsufficientFunds, false, false, false, false, true, false},
		{fault.DatabaseInconsistent, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRecord(err) != e.record {
			t.Errorf("%d: expected 'record' == %v for err = %v", i, e.record, err)
		}
	}
}

// errors must be comparable by identity
func TestIdentity(t *testing.T) {
	var err error = fault.NotOwner
	if err != fault.NotOwner {
		t.Errorf("error lost identity: %v", err)
	}
	if err == fault.SelfPurchase {
		t.Errorf("distinct errors compare equal: %v", err)
	}
}
