// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kitty_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/chain"
	"github.com/bitmark-inc/kittyd/counter"
	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/mode"
	"github.com/bitmark-inc/kittyd/ownership"
	"github.com/bitmark-inc/kittyd/request"
	"github.com/bitmark-inc/kittyd/rpc/fixtures"
	"github.com/bitmark-inc/kittyd/rpc/kitty"
	"github.com/bitmark-inc/kittyd/rpc/mocks"
	"github.com/bitmark-inc/logger"
)

func alwaysNormal(mode.Mode) bool { return true }

func setup(t *testing.T) (*kitty.Kitty, *mocks.MockOwnership, *gomock.Controller) {
	ctl := gomock.NewController(t)
	os := mocks.NewMockOwnership(ctl)
	sequence := counter.Counter(0)
	return kitty.New(logger.New(fixtures.LogCategory), alwaysNormal, os, &sequence), os, ctl
}

func TestCreate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	k, os, ctl := setup(t)
	defer ctl.Finish()

	key := fixtures.NewKey()
	label, _ := entity.LabelFromString("tom")

	arg := kitty.CreateArguments{
		Caller:    key.Account(),
		Label:     "tom",
		Signature: request.Sign(key, request.Create{Label: label}),
	}

	created := entity.Entity{DNA: entity.DNA{1, 2, 3}, Label: label}
	origin := ownership.Origin{Caller: key.Account(), Sequence: 1}
	os.EXPECT().Create(origin, label).Return(entity.Id(7), created, nil).Times(1)

	var reply kitty.NewKittyReply
	err := k.Create(&arg, &reply)
	assert.Nil(t, err, "wrong Create")
	assert.Equal(t, entity.Id(7), reply.Id, "wrong id")
	assert.Equal(t, created, reply.Kitty, "wrong kitty")
}

func TestSequenceAdvances(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	k, os, ctl := setup(t)
	defer ctl.Finish()

	key := fixtures.NewKey()
	arg := kitty.IdArguments{
		Caller:    key.Account(),
		Id:        3,
		Signature: request.Sign(key, request.List{Id: 3}),
	}

	gomock.InOrder(
		os.EXPECT().List(ownership.Origin{Caller: key.Account(), Sequence: 1}, entity.Id(3)).Return(nil),
		os.EXPECT().List(ownership.Origin{Caller: key.Account(), Sequence: 2}, entity.Id(3)).Return(fault.AlreadyListed),
	)

	assert.Nil(t, k.List(&arg, &kitty.EmptyReply{}), "first list")
	assert.Equal(t, fault.AlreadyListed, k.List(&arg, &kitty.EmptyReply{}), "second list")
}

func TestBadSignatureNeverReachesStore(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	k, _, ctl := setup(t)
	defer ctl.Finish()

	key := fixtures.NewKey()
	other := fixtures.NewKey()

	// signed for a different kitty
	transfer := kitty.TransferArguments{
		Caller:    key.Account(),
		Recipient: other.Account(),
		Id:        5,
		Signature: request.Sign(key, request.Transfer{Recipient: other.Account(), Id: 6}),
	}
	err := k.Transfer(&transfer, &kitty.EmptyReply{})
	assert.Equal(t, fault.InvalidSignature, err, "wrong id signed")

	// signed by someone else
	purchase := kitty.IdArguments{
		Caller:    key.Account(),
		Id:        5,
		Signature: request.Sign(other, request.Purchase{Id: 5}),
	}
	err = k.Purchase(&purchase, &kitty.EmptyReply{})
	assert.Equal(t, fault.InvalidSignature, err, "wrong signer")

	// no caller
	err = k.Purchase(&kitty.IdArguments{Id: 5}, &kitty.EmptyReply{})
	assert.Equal(t, fault.InvalidAccount, err, "zero caller")
}

func TestLabelTooLong(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	k, _, ctl := setup(t)
	defer ctl.Finish()

	key := fixtures.NewKey()
	arg := kitty.BreedArguments{
		Caller: key.Account(),
		First:  1,
		Second: 2,
		Label:  "much too long",
	}
	err := k.Breed(&arg, &kitty.NewKittyReply{})
	assert.Equal(t, fault.InvalidLabel, err, "wrong error")
}

func TestBreedPassesStoreError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	k, os, ctl := setup(t)
	defer ctl.Finish()

	key := fixtures.NewKey()
	r := request.Breed{First: 4, Second: 4}
	arg := kitty.BreedArguments{
		Caller:    key.Account(),
		First:     4,
		Second:    4,
		Signature: request.Sign(key, r),
	}

	os.EXPECT().Breed(gomock.Any(), entity.Id(4), entity.Id(4), entity.Label{}).Return(entity.Id(0), entity.Entity{}, fault.SameEntity).Times(1)

	err := k.Breed(&arg, &kitty.NewKittyReply{})
	assert.Equal(t, fault.SameEntity, err, "wrong error")
}

func TestNotAvailableDuringUpgrade(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise(chain.Testing)
	assert.Nil(t, err, "mode")
	defer mode.Finalise()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	sequence := counter.Counter(0)
	k := kitty.New(logger.New(fixtures.LogCategory), mode.Is, mocks.NewMockOwnership(ctl), &sequence)

	key := fixtures.NewKey()
	arg := kitty.CreateArguments{
		Caller:    key.Account(),
		Signature: request.Sign(key, request.Create{}),
	}
	err = k.Create(&arg, &kitty.NewKittyReply{})
	assert.Equal(t, fault.NotAvailableDuringUpgrade, err, "wrong error")
}

func TestGet(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	k, os, ctl := setup(t)
	defer ctl.Finish()

	r := ownership.Record{
		Id:      9,
		Kitty:   entity.Entity{DNA: entity.DNA{9}},
		Owner:   account.Account{1},
		Parents: &ownership.Parents{First: 2, Second: 3},
		Listed:  true,
	}
	os.EXPECT().Kitty(entity.Id(9)).Return(r, true).Times(1)
	os.EXPECT().Kitty(entity.Id(10)).Return(ownership.Record{}, false).Times(1)

	var reply kitty.GetReply
	err := k.Get(&kitty.GetArguments{Id: 9}, &reply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, r, reply.Record, "wrong record")

	err = k.Get(&kitty.GetArguments{Id: 10}, &reply)
	assert.Equal(t, fault.UnknownEntity, err, "unknown kitty")
}

func TestOwnedPaging(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	k, os, ctl := setup(t)
	defer ctl.Finish()

	owner := account.Account{2}

	os.EXPECT().OwnedBy(owner, entity.Id(0), 2).Return([]entity.Id{1, 4}, nil).Times(1)
	os.EXPECT().OwnedBy(owner, entity.Id(5), 2).Return([]entity.Id{8}, nil).Times(1)

	var reply kitty.IdsReply
	err := k.Owned(&kitty.OwnedArguments{Owner: owner, Start: 0, Count: 2}, &reply)
	assert.Nil(t, err, "first page")
	assert.Equal(t, []entity.Id{1, 4}, reply.Ids, "first ids")
	assert.Equal(t, entity.Id(5), reply.Next, "first next")

	err = k.Owned(&kitty.OwnedArguments{Owner: owner, Start: reply.Next, Count: 2}, &reply)
	assert.Nil(t, err, "second page")
	assert.Equal(t, []entity.Id{8}, reply.Ids, "second ids")
	assert.Equal(t, entity.Id(0), reply.Next, "no more")
}

func TestListedCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	k, os, ctl := setup(t)
	defer ctl.Finish()

	err := k.Listed(&kitty.ListedArguments{Count: 0}, &kitty.IdsReply{})
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	err = k.Listed(&kitty.ListedArguments{Count: 101}, &kitty.IdsReply{})
	assert.Equal(t, fault.InvalidCount, err, "count too large")

	os.EXPECT().Listed(entity.Id(3), 10).Return([]entity.Id{3, 6}, nil).Times(1)

	var reply kitty.IdsReply
	err = k.Listed(&kitty.ListedArguments{Start: 3, Count: 10}, &reply)
	assert.Nil(t, err, "listed")
	assert.Equal(t, []entity.Id{3, 6}, reply.Ids, "ids")
}
