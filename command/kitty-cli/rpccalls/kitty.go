// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/request"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
)

// Create - a new kitty owned by key
func (c *Client) Create(key *account.PrivateKey, name string) (*kitty.NewKittyReply, error) {
	label, err := entity.LabelFromString(name)
	if nil != err {
		return nil, err
	}

	arguments := kitty.CreateArguments{
		Caller:    key.Account(),
		Label:     name,
		Signature: request.Sign(key, request.Create{Label: label}),
	}

	reply := &kitty.NewKittyReply{}
	err = c.call("Create", "Kitty.Create", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Breed - a new kitty from two owned by key
func (c *Client) Breed(key *account.PrivateKey, first entity.Id, second entity.Id, name string) (*kitty.NewKittyReply, error) {
	label, err := entity.LabelFromString(name)
	if nil != err {
		return nil, err
	}

	r := request.Breed{
		First:  first,
		Second: second,
		Label:  label,
	}
	arguments := kitty.BreedArguments{
		Caller:    key.Account(),
		First:     first,
		Second:    second,
		Label:     name,
		Signature: request.Sign(key, r),
	}

	reply := &kitty.NewKittyReply{}
	err = c.call("Breed", "Kitty.Breed", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Transfer - give a kitty owned by key to recipient
func (c *Client) Transfer(key *account.PrivateKey, recipient account.Account, id entity.Id) error {
	r := request.Transfer{
		Recipient: recipient,
		Id:        id,
	}
	arguments := kitty.TransferArguments{
		Caller:    key.Account(),
		Recipient: recipient,
		Id:        id,
		Signature: request.Sign(key, r),
	}

	return c.call("Transfer", "Kitty.Transfer", arguments, &kitty.EmptyReply{})
}

// Sell - list a kitty owned by key
func (c *Client) Sell(key *account.PrivateKey, id entity.Id) error {
	arguments := kitty.IdArguments{
		Caller:    key.Account(),
		Id:        id,
		Signature: request.Sign(key, request.List{Id: id}),
	}

	return c.call("Sell", "Kitty.List", arguments, &kitty.EmptyReply{})
}

// Buy - purchase a listed kitty for key
func (c *Client) Buy(key *account.PrivateKey, id entity.Id) error {
	arguments := kitty.IdArguments{
		Caller:    key.Account(),
		Id:        id,
		Signature: request.Sign(key, request.Purchase{Id: id}),
	}

	return c.call("Buy", "Kitty.Purchase", arguments, &kitty.EmptyReply{})
}

// Show - everything known about one kitty
func (c *Client) Show(id entity.Id) (*kitty.GetReply, error) {
	reply := &kitty.GetReply{}
	err := c.call("Show", "Kitty.Get", kitty.GetArguments{Id: id}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Owned - a page of kitties owned by an account
func (c *Client) Owned(owner account.Account, start entity.Id, count int) (*kitty.IdsReply, error) {
	arguments := kitty.OwnedArguments{
		Owner: owner,
		Start: start,
		Count: count,
	}

	reply := &kitty.IdsReply{}
	err := c.call("Owned", "Kitty.Owned", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// Market - a page of listed kitties
func (c *Client) Market(start entity.Id, count int) (*kitty.IdsReply, error) {
	arguments := kitty.ListedArguments{
		Start: start,
		Count: count,
	}

	reply := &kitty.IdsReply{}
	err := c.call("Market", "Kitty.Listed", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
