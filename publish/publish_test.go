// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"testing"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/kittyd/account"
	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/fixtures"
	"github.com/bitmark-inc/kittyd/messagebus"
	"github.com/bitmark-inc/kittyd/ownership"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	result := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(result)
}

func TestCanonicalEndpoint(t *testing.T) {
	items := []struct {
		address  string
		endpoint string
		v6       bool
	}{
		{"*:2135", "tcp://*:2135", true},
		{"[::1]:2135", "tcp://[::1]:2135", true},
		{"127.0.0.1:2135", "tcp://127.0.0.1:2135", false},
	}
	for _, item := range items {
		endpoint, v6, err := canonicalEndpoint(item.address)
		assert.Nil(t, err, "address: %s", item.address)
		assert.Equal(t, item.endpoint, endpoint, "address: %s", item.address)
		assert.Equal(t, item.v6, v6, "address: %s", item.address)
	}

	for _, address := range []string{"", "2135", "127.0.0.1:"} {
		_, _, err := canonicalEndpoint(address)
		assert.Equal(t, fault.InvalidIpAddress, err, "address: %q", address)
	}
}

func TestDisabled(t *testing.T) {
	err := Initialise(&Configuration{})
	assert.Nil(t, err, "initialise")
	assert.Equal(t, fault.AlreadyInitialised, Initialise(&Configuration{}), "second initialise")
	assert.Nil(t, Finalise(), "finalise")
	assert.Equal(t, fault.NotInitialised, Finalise(), "second finalise")
}

func TestPublishEvent(t *testing.T) {
	address := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)

	err := Initialise(&Configuration{Broadcast: []string{address}})
	assert.Nil(t, err, "initialise")
	defer Finalise()

	sub, err := zmq.NewSocket(zmq.SUB)
	assert.Nil(t, err, "socket")
	defer sub.Close()
	_ = sub.SetRcvtimeo(200 * time.Millisecond)
	_ = sub.SetSubscribe(ownership.TransferredCommand)
	assert.Nil(t, sub.Connect("tcp://"+address), "connect")

	event := ownership.TransferredEvent{
		From: account.Account{1},
		To:   account.Account{2},
		Id:   7,
	}

	// a subscription takes effect asynchronously so keep sending
	var parts [][]byte
	for i := 0; i < 25 && 0 == len(parts); i += 1 {
		messagebus.Bus.Events.Send(ownership.TransferredCommand, event)
		parts, _ = sub.RecvMessageBytes(0)
	}

	if assert.Equal(t, 2, len(parts), "parts") {
		assert.Equal(t, ownership.TransferredCommand, string(parts[0]), "command")

		var received ownership.TransferredEvent
		assert.Nil(t, json.Unmarshal(parts[1], &received), "decode")
		assert.Equal(t, event, received, "event")
	}
}
