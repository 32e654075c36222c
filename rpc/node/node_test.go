// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/entity"
	ledgermocks "github.com/bitmark-inc/kittyd/ledger/mocks"
	"github.com/bitmark-inc/kittyd/mode"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/logger"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise(chain.Testing)
	assert.Nil(t, err, "mode")
	defer mode.Finalise()
	mode.Set(mode.Normal)

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	os := mocks.NewMockOwnership(ctl)
	l := ledgermocks.NewMockLedger(ctl)

	now := time.Now()
	ctr := counter.Counter(3)
	n := node.New(
		logger.New(fixtures.LogCategory),
		now,
		"1.0",
		&ctr,
		os,
		l,
		func() int { return entity.CurrentLayoutVersion },
	)

	os.EXPECT().NextId().Return(entity.Id(42)).Times(1)
	os.EXPECT().Price().Return(uint64(500)).Times(1)
	l.EXPECT().MinimumBalance().Return(uint64(100)).Times(1)

	var reply node.InfoReply
	err = n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.Normal.String(), reply.Mode, "wrong mode")
	assert.Equal(t, uint64(3), reply.RPCs, "wrong rpc count")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, entity.CurrentLayoutVersion, reply.SchemaVersion, "wrong schema version")
	assert.Equal(t, entity.Id(42), reply.NextId, "wrong next id")
	assert.Equal(t, uint64(500), reply.Price, "wrong price")
	assert.Equal(t, uint64(100), reply.MinimumBalance, "wrong minimum")
	assert.Equal(t, account.Protocol(), reply.ProtocolAccount, "wrong protocol account")
}
