// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/mode"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/rpc/balance"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/rpc/node"
	"github.com/bitmark-inc/kittyd/storage"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, rpcCount *counter.Counter, sequence *counter.Counter, store ownership.Ownership, balances ledger.Ledger) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(kitty.New(log, mode.Is, store, sequence))
	_ = server.Register(balance.New(log, balances))
	_ = server.Register(node.New(log, start, version, rpcCount, store, balances, storage.SchemaVersion))

	return server
}
