// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/kittyd/rpc/node"
)

// GetKittydInfo - status of the connected kittyd
func (c *Client) GetKittydInfo() (*node.InfoReply, error) {
	reply := &node.InfoReply{}
	err := c.call("Info", "Node.Info", node.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
