// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/ledger"
	"github.com/bitmark-inc/kittyd/mode"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log           *logger.L
	Limiter       *rate.Limiter
	Start         time.Time
	Version       string
	Store         ownership.Ownership
	Ledger        ledger.Ledger
	SchemaVersion func() int
	counter       *counter.Counter
}

// New - create the node service
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, store ownership.Ownership, balances ledger.Ledger, schemaVersion func() int) *Node {
	return &Node{
		Log:           log,
		Limiter:       rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:         start,
		Version:       version,
		Store:         store,
		Ledger:        balances,
		SchemaVersion: schemaVersion,
		counter:       counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain           string          `json:"chain"`
	Mode            string          `json:"mode"`
	RPCs            uint64          `json:"rpcs"`
	Version         string          `json:"version"`
	Uptime          string          `json:"uptime"`
	SchemaVersion   int             `json:"schemaVersion"`
	NextId          entity.Id       `json:"nextId"`
	Price           uint64          `json:"price,string"`
	MinimumBalance  uint64          `json:"minimumBalance,string"`
	ProtocolAccount account.Account `json:"protocolAccount"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); err != nil {
		return err
	}

	if nil == node.Store {
		return fault.NotInitialised
	}

	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.SchemaVersion = node.SchemaVersion()
	reply.NextId = node.Store.NextId()
	reply.Price = node.Store.Price()
	reply.MinimumBalance = node.Ledger.MinimumBalance()
	reply.ProtocolAccount = account.Protocol()
	return nil
}
