// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package request - canonical byte form of the signed client requests
//
// each packed request is:
//
//   tag ++ Varint64(len(caller)) ++ caller ++ fields…
//
// ids are Varint64 values, labels and accounts are length prefixed
// byte strings; the client signs this packing with the caller's key
// and the RPC layer verifies it before the request reaches the store
package request

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/util"
)

// Packed - packed request bytes
type Packed []byte

// request type codes
const (
	CreateTag   = 1
	BreedTag    = 2
	TransferTag = 3
	ListTag     = 4
	PurchaseTag = 5
)

// Request - anything that can be signed
type Request interface {
	Pack(caller account.Account) Packed
}

// Create - a new root kitty
type Create struct {
	Label entity.Label
}

// Breed - combine two existing kitties
type Breed struct {
	First  entity.Id
	Second entity.Id
	Label  entity.Label
}

// Transfer - give a kitty away
type Transfer struct {
	Recipient account.Account
	Id        entity.Id
}

// List - offer a kitty for sale
type List struct {
	Id entity.Id
}

// Purchase - buy a listed kitty
type Purchase struct {
	Id entity.Id
}

// Pack - canonical form of create
func (r Create) Pack(caller account.Account) Packed {
	buffer := start(CreateTag, caller)
	return appendBytes(buffer, r.Label[:])
}

// Pack - canonical form of breed
func (r Breed) Pack(caller account.Account) Packed {
	buffer := start(BreedTag, caller)
	buffer = appendId(buffer, r.First)
	buffer = appendId(buffer, r.Second)
	return appendBytes(buffer, r.Label[:])
}

// Pack - canonical form of transfer
func (r Transfer) Pack(caller account.Account) Packed {
	buffer := start(TransferTag, caller)
	buffer = appendBytes(buffer, r.Recipient.Bytes())
	return appendId(buffer, r.Id)
}

// Pack - canonical form of list
func (r List) Pack(caller account.Account) Packed {
	return appendId(start(ListTag, caller), r.Id)
}

// Pack - canonical form of purchase
func (r Purchase) Pack(caller account.Account) Packed {
	return appendId(start(PurchaseTag, caller), r.Id)
}

// Sign - sign a request as the owner of key
func Sign(key *account.PrivateKey, r Request) account.Signature {
	return key.Sign(r.Pack(key.Account()))
}

// Verify - check that caller signed the request
func Verify(caller account.Account, r Request, signature account.Signature) error {
	return caller.CheckSignature(r.Pack(caller), signature)
}

func start(tag uint64, caller account.Account) Packed {
	buffer := Packed(util.ToVarint64(tag))
	return appendBytes(buffer, caller.Bytes())
}

// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

func appendId(buffer Packed, id entity.Id) Packed {
	return append(buffer, util.ToVarint64(uint64(id))...)
}
