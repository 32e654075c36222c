// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kitty - RPC service for creating, breeding and trading kitties
package kitty

import (
	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/mode"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/request"
	"github.com/bitmark-inc/kittyd/rpc/ratelimit"
)

const (
	rateLimitKitty = 200
	rateBurstKitty = 100

	// limit for count
	maximumIdList = 100
)

// Kitty - type for the RPC
type Kitty struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Store        ownership.Ownership
	sequence     *counter.Counter
}

// New - create the kitty service
//
// sequence numbers every accepted mutating request
func New(log *logger.L, isNormalMode func(mode.Mode) bool, store ownership.Ownership, sequence *counter.Counter) *Kitty {
	return &Kitty{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitKitty, rateBurstKitty),
		IsNormalMode: isNormalMode,
		Store:        store,
		sequence:     sequence,
	}
}

// ---

// CreateArguments - arguments for Create
type CreateArguments struct {
	Caller    account.Account   `json:"caller"`
	Label     string            `json:"label"`
	Signature account.Signature `json:"signature"`
}

// NewKittyReply - result of Create and Breed
type NewKittyReply struct {
	Id    entity.Id     `json:"id"`
	Kitty entity.Entity `json:"kitty"`
}

// Create - a new root kitty owned by the caller
func (k *Kitty) Create(arguments *CreateArguments, reply *NewKittyReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	label, err := k.prepare(arguments.Label)
	if nil != err {
		return err
	}

	r := request.Create{Label: label}
	origin, err := k.authorise(arguments.Caller, r, arguments.Signature)
	if nil != err {
		return err
	}

	k.Log.Infof("Kitty.Create: %s  label: %q", origin.Caller, label)

	id, kitty, err := k.Store.Create(origin, label)
	if nil != err {
		return err
	}

	reply.Id = id
	reply.Kitty = kitty
	return nil
}

// BreedArguments - arguments for Breed
type BreedArguments struct {
	Caller    account.Account   `json:"caller"`
	First     entity.Id         `json:"first"`
	Second    entity.Id         `json:"second"`
	Label     string            `json:"label"`
	Signature account.Signature `json:"signature"`
}

// Breed - a new kitty from two existing ones, owned by the caller
func (k *Kitty) Breed(arguments *BreedArguments, reply *NewKittyReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	label, err := k.prepare(arguments.Label)
	if nil != err {
		return err
	}

	r := request.Breed{
		First:  arguments.First,
		Second: arguments.Second,
		Label:  label,
	}
	origin, err := k.authorise(arguments.Caller, r, arguments.Signature)
	if nil != err {
		return err
	}

	k.Log.Infof("Kitty.Breed: %s  parents: %d, %d  label: %q", origin.Caller, r.First, r.Second, label)

	id, kitty, err := k.Store.Breed(origin, r.First, r.Second, label)
	if nil != err {
		return err
	}

	reply.Id = id
	reply.Kitty = kitty
	return nil
}

// TransferArguments - arguments for Transfer
type TransferArguments struct {
	Caller    account.Account   `json:"caller"`
	Recipient account.Account   `json:"recipient"`
	Id        entity.Id         `json:"id"`
	Signature account.Signature `json:"signature"`
}

// EmptyReply - result of calls that return nothing
type EmptyReply struct{}

// Transfer - give one of the caller's kitties to another account
func (k *Kitty) Transfer(arguments *TransferArguments, reply *EmptyReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	if _, err := k.prepare(""); nil != err {
		return err
	}

	r := request.Transfer{
		Recipient: arguments.Recipient,
		Id:        arguments.Id,
	}
	origin, err := k.authorise(arguments.Caller, r, arguments.Signature)
	if nil != err {
		return err
	}

	k.Log.Infof("Kitty.Transfer: %s  to: %s  id: %d", origin.Caller, r.Recipient, r.Id)

	return k.Store.Transfer(origin, r.Recipient, r.Id)
}

// IdArguments - arguments for List and Purchase
type IdArguments struct {
	Caller    account.Account   `json:"caller"`
	Id        entity.Id         `json:"id"`
	Signature account.Signature `json:"signature"`
}

// List - offer one of the caller's kitties for sale
func (k *Kitty) List(arguments *IdArguments, reply *EmptyReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	if _, err := k.prepare(""); nil != err {
		return err
	}

	r := request.List{Id: arguments.Id}
	origin, err := k.authorise(arguments.Caller, r, arguments.Signature)
	if nil != err {
		return err
	}

	k.Log.Infof("Kitty.List: %s  id: %d", origin.Caller, r.Id)

	return k.Store.List(origin, r.Id)
}

// Purchase - buy a listed kitty
func (k *Kitty) Purchase(arguments *IdArguments, reply *EmptyReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}

	if _, err := k.prepare(""); nil != err {
		return err
	}

	r := request.Purchase{Id: arguments.Id}
	origin, err := k.authorise(arguments.Caller, r, arguments.Signature)
	if nil != err {
		return err
	}

	k.Log.Infof("Kitty.Purchase: %s  id: %d", origin.Caller, r.Id)

	return k.Store.Purchase(origin, r.Id)
}

// ---

// GetArguments - arguments for Get
type GetArguments struct {
	Id entity.Id `json:"id"`
}

// GetReply - result of Get
type GetReply struct {
	ownership.Record
}

// Get - everything known about one kitty
func (k *Kitty) Get(arguments *GetArguments, reply *GetReply) error {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.MissingParameters
	}

	r, ok := k.Store.Kitty(arguments.Id)
	if !ok {
		return fault.UnknownEntity
	}
	reply.Record = r
	return nil
}

// OwnedArguments - arguments for Owned
type OwnedArguments struct {
	Owner account.Account `json:"owner"`
	Start entity.Id       `json:"start"`
	Count int             `json:"count"`
}

// IdsReply - a page of kitty ids
//
// Next is the start for the following page, zero when there is none
type IdsReply struct {
	Ids  []entity.Id `json:"ids"`
	Next entity.Id   `json:"next"`
}

// Owned - the kitties of one account
func (k *Kitty) Owned(arguments *OwnedArguments, reply *IdsReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(k.Limiter, arguments.Count, maximumIdList); nil != err {
		return err
	}

	ids, err := k.Store.OwnedBy(arguments.Owner, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	page(reply, ids, arguments.Count)
	return nil
}

// ListedArguments - arguments for Listed
type ListedArguments struct {
	Start entity.Id `json:"start"`
	Count int       `json:"count"`
}

// Listed - kitties currently for sale
func (k *Kitty) Listed(arguments *ListedArguments, reply *IdsReply) error {
	if nil == arguments {
		return fault.MissingParameters
	}
	if err := ratelimit.LimitN(k.Limiter, arguments.Count, maximumIdList); nil != err {
		return err
	}

	ids, err := k.Store.Listed(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	page(reply, ids, arguments.Count)
	return nil
}

// ---

// common checks ahead of a mutating request
func (k *Kitty) prepare(s string) (entity.Label, error) {
	if err := ratelimit.Limit(k.Limiter); nil != err {
		return entity.Label{}, err
	}
	if !k.IsNormalMode(mode.Normal) {
		return entity.Label{}, fault.NotAvailableDuringUpgrade
	}
	return entity.LabelFromString(s)
}

// verify the caller signed the request and number it
func (k *Kitty) authorise(caller account.Account, r request.Request, signature account.Signature) (ownership.Origin, error) {
	if caller.IsZero() {
		return ownership.Origin{}, fault.InvalidAccount
	}
	if err := request.Verify(caller, r, signature); nil != err {
		k.Log.Warnf("rejected signature from: %s", caller)
		return ownership.Origin{}, err
	}
	return ownership.Origin{
		Caller:   caller,
		Sequence: uint32(k.sequence.Increment()),
	}, nil
}

func page(reply *IdsReply, ids []entity.Id, count int) {
	reply.Ids = ids
	reply.Next = 0
	if len(ids) == count && count > 0 {
		reply.Next = ids[len(ids)-1] + 1
	}
}
