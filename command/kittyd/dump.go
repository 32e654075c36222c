// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bitmark-inc/kittyd/entity"
	"github.com/bitmark-inc/kittyd/ownership"
)

// write every kitty as an element of a JSON array
func dumpKitties(w io.Writer) (int, error) {
	o := ownership.Get()
	next := o.NextId()

	fmt.Fprintf(w, "[\n")
	n := 0
	for id := entity.Id(0); id < next; id += 1 {
		record, ok := o.Kitty(id)
		if !ok {
			continue
		}
		s, err := json.MarshalIndent(record, "  ", "  ")
		if nil != err {
			return n, err
		}
		if n > 0 {
			fmt.Fprintf(w, ",\n")
		}
		fmt.Fprintf(w, "  %s", s)
		n += 1
	}
	fmt.Fprintf(w, "\n]\n")
	return n, nil
}
