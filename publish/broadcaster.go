// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"
	"strings"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/kittyd/fault"
	"github.com/bitmark-inc/kittyd/messagebus"
)

type broadcaster struct {
	log    *logger.L
	socket *zmq.Socket
	queue  <-chan messagebus.Message
	events *messagebus.BroadcastQueue
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(log *logger.L, broadcast []string, events *messagebus.BroadcastQueue) error {

	brdc.log = log

	endpoints := make([]string, len(broadcast))
	ipv6 := false
	for i, address := range broadcast {
		endpoint, v6, err := canonicalEndpoint(address)
		if nil != err {
			log.Errorf("broadcast: %q  error: %s", address, err)
			return err
		}
		endpoints[i] = endpoint
		ipv6 = ipv6 || v6
	}

	socket, err := zmq.NewSocket(zmq.PUB)
	if nil != err {
		log.Errorf("socket error: %s", err)
		return err
	}
	_ = socket.SetLinger(0)
	_ = socket.SetIpv6(ipv6)

	for i, endpoint := range endpoints {
		err := socket.Bind(endpoint)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, endpoint, err)
			socket.Close()
			return err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, endpoint, ipv6)
	}

	brdc.socket = socket
	brdc.events = events
	brdc.queue = events.Chan(0)
	return nil
}

// Run - forward events until shutdown
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item, ok := <-brdc.queue:
			if !ok {
				break loop
			}
			brdc.process(&item)
		}
	}

	brdc.events.Release(brdc.queue)
	brdc.socket.Close()
	log.Info("stopped")
}

// send one event, a failed send is logged and the event dropped
func (brdc *broadcaster) process(item *messagebus.Message) {
	data, err := json.Marshal(item.Item)
	if nil != err {
		brdc.log.Errorf("encode: %s  error: %s", item.Command, err)
		return
	}

	brdc.log.Debugf("sending: %s  data: %s", item.Command, data)

	_, err = brdc.socket.Send(item.Command, zmq.SNDMORE|zmq.DONTWAIT)
	if nil == err {
		_, err = brdc.socket.SendBytes(data, zmq.DONTWAIT)
	}
	if nil != err {
		brdc.log.Warnf("send: %s  error: %s", item.Command, err)
	}
}

// convert a listen style address to a ZeroMQ endpoint
//
//   *:PORT       → tcp://*:PORT (IPv4 and IPv6)
//   [ADDR]:PORT  → tcp://[ADDR]:PORT
//   ADDR:PORT    → tcp://ADDR:PORT
func canonicalEndpoint(address string) (string, bool, error) {
	n := strings.LastIndex(address, ":")
	if n <= 0 || n == len(address)-1 {
		return "", false, fault.InvalidIpAddress
	}
	v6 := '*' == address[0] || '[' == address[0]
	return "tcp://" + address, v6, nil
}
