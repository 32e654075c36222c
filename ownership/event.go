// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/json"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/logger"
)

// event commands on the message bus
const (
	CreatedCommand     = "created"
	BredCommand        = "bred"
	TransferredCommand = "transferred"
	ListedCommand      = "listed"
	PurchasedCommand   = "purchased"
)

// CreatedEvent - a kitty was created
type CreatedEvent struct {
	Owner account.Account `json:"owner"`
	Id    entity.Id       `json:"id"`
	Kitty entity.Entity   `json:"kitty"`
}

// BredEvent - a kitty was bred from two others
type BredEvent struct {
	Owner   account.Account `json:"owner"`
	Id      entity.Id       `json:"id"`
	Kitty   entity.Entity   `json:"kitty"`
	Parents Parents         `json:"parents"`
}

// TransferredEvent - a kitty changed owner without payment
type TransferredEvent struct {
	From account.Account `json:"from"`
	To   account.Account `json:"to"`
	Id   entity.Id       `json:"id"`
}

// ListedEvent - a kitty was offered for sale
type ListedEvent struct {
	Owner account.Account `json:"owner"`
	Id    entity.Id       `json:"id"`
}

// PurchasedEvent - a listed kitty was bought
type PurchasedEvent struct {
	Seller account.Account `json:"seller"`
	Buyer  account.Account `json:"buyer"`
	Id     entity.Id       `json:"id"`
	Price  uint64          `json:"price,string"`
}

// an event ready to be mixed into the seed and sent
type pending struct {
	command string
	item    interface{}
}

// the bytes mixed into the seed after a successful operation
func (p pending) pack() []byte {
	buffer, err := json.Marshal(p.item)
	logger.PanicIfError("ownership: pack event", err)
	return append([]byte(p.command+":"), buffer...)
}
