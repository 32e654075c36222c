// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC over TLS for kitty clients
//
// services:
//
//   Kitty.Create     Kitty.Breed     Kitty.Transfer
//   Kitty.List       Kitty.Purchase
//   Kitty.Get        Kitty.Owned     Kitty.Listed
//   Account.Balance
//   Node.Info
//
// mutating calls carry the caller's account and an ed25519 signature
// over the request packing from package request; they are refused
// unless the node is in Normal mode
package rpc
