// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// default listener queue size
const (
	queueSize = 1000
)

// Message - a single event
type Message struct {
	Command string
	Item    interface{}
}

// BroadcastQueue - every listener receives a copy of every message
//
// a listener whose queue is full misses messages, senders never block
type BroadcastQueue struct {
	sync.Mutex
	listeners []chan Message
}

// Bus - the queues used by the daemon
var Bus = struct {
	Events *BroadcastQueue
}{
	Events: &BroadcastQueue{},
}

// Send - queue a message to all current listeners
//
// returns the number of listeners that received it
func (q *BroadcastQueue) Send(command string, item interface{}) int {
	m := Message{
		Command: command,
		Item:    item,
	}

	q.Lock()
	defer q.Unlock()

	n := 0
	for _, c := range q.listeners {
		select {
		case c <- m:
			n += 1
		default:
		}
	}
	return n
}

// Chan - register a new listener, size <= 0 selects the default size
func (q *BroadcastQueue) Chan(size int) <-chan Message {
	if size <= 0 {
		size = queueSize
	}
	c := make(chan Message, size)

	q.Lock()
	q.listeners = append(q.listeners, c)
	q.Unlock()

	return c
}

// Release - stop delivering to a listener and close its channel
func (q *BroadcastQueue) Release(listener <-chan Message) {
	q.Lock()
	defer q.Unlock()

	for i, c := range q.listeners {
		if (<-chan Message)(c) == listener {
			q.listeners = append(q.listeners[:i], q.listeners[i+1:]...)
			close(c)
			return
		}
	}
}
