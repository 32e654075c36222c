// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package migration

import (
	"github.com/bitmark-inc/kittyd/entity"
)

// every layout that kitty records have had on disk
//
//   V0: dna(16)
//   V1: dna(16) ++ label(4)
//   V2: dna(16) ++ label(8)   (current)

const (
	labelV1Length = 4

	lengthV0 = entity.DNALength
	lengthV1 = entity.DNALength + labelV1Length
	lengthV2 = entity.DNALength + entity.LabelLength
)

type recordV0 struct {
	dna entity.DNA
}

type recordV1 struct {
	dna   entity.DNA
	label [labelV1Length]byte
}

type recordV2 struct {
	dna   entity.DNA
	label entity.Label
}

func decodeV0(buffer []byte) (recordV0, bool) {
	r := recordV0{}
	if lengthV0 != len(buffer) {
		return r, false
	}
	copy(r.dna[:], buffer)
	return r, true
}

func decodeV1(buffer []byte) (recordV1, bool) {
	r := recordV1{}
	if lengthV1 != len(buffer) {
		return r, false
	}
	copy(r.dna[:], buffer[:entity.DNALength])
	copy(r.label[:], buffer[entity.DNALength:])
	return r, true
}

func (r recordV1) pack() []byte {
	buffer := make([]byte, 0, lengthV1)
	buffer = append(buffer, r.dna[:]...)
	return append(buffer, r.label[:]...)
}

func (r recordV2) pack() []byte {
	return entity.Entity{
		DNA:   r.dna,
		Label: r.label,
	}.Pack()
}

// V0 had no label, the default is all zero bytes
func v0ToV1(r recordV0) recordV1 {
	return recordV1{
		dna: r.dna,
	}
}

// V0 had no label, the default is all zero bytes
func v0ToV2(r recordV0) recordV2 {
	return recordV2{
		dna: r.dna,
	}
}

// the short label is left aligned and zero padded
func v1ToV2(r recordV1) recordV2 {
	n := recordV2{
		dna: r.dna,
	}
	copy(n.label[:], r.label[:])
	return n
}
