// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entity - kitty identifiers and records
package entity

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"

	"github.com/bitmark-inc/kittyd/fault"
)

// record sizes
const (
	IdLength    = 4
	DNALength   = 16
	LabelLength = 8

	// CurrentLayoutVersion - layout of records written by this program
	CurrentLayoutVersion = 2

	// RecordLength - bytes in a current layout record
	RecordLength = DNALength + LabelLength
)

// Id - kitty identifier, allocated in strictly increasing order
type Id uint32

// DNA - genetic payload
type DNA [DNALength]byte

// Label - fixed width name, zero padded on the right
type Label [LabelLength]byte

// Entity - an immutable kitty
type Entity struct {
	DNA   DNA   `json:"dna"`
	Label Label `json:"label"`
}

// Bytes - big endian key form
func (id Id) Bytes() []byte {
	buffer := make([]byte, IdLength)
	binary.BigEndian.PutUint32(buffer, uint32(id))
	return buffer
}

// IdFromBytes - decode a big endian key
func IdFromBytes(buffer []byte) (Id, bool) {
	if IdLength != len(buffer) {
		return 0, false
	}
	return Id(binary.BigEndian.Uint32(buffer)), true
}

// String - decimal form
func (id Id) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// LabelFromString - pad a name of at most LabelLength bytes
func LabelFromString(s string) (Label, error) {
	l := Label{}
	if len(s) > LabelLength {
		return l, fault.InvalidLabel
	}
	copy(l[:], s)
	return l, nil
}

// String - the label without its padding
func (l Label) String() string {
	n := len(l)
	for n > 0 && 0 == l[n-1] {
		n -= 1
	}
	return string(l[:n])
}

// MarshalText - label as plain text
func (l Label) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText - plain text to label
func (l *Label) UnmarshalText(s []byte) error {
	label, err := LabelFromString(string(s))
	if nil != err {
		return err
	}
	*l = label
	return nil
}

// MarshalText - dna as hex
func (dna DNA) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(dna)))
	hex.Encode(buffer, dna[:])
	return buffer, nil
}

// UnmarshalText - hex to dna
func (dna *DNA) UnmarshalText(s []byte) error {
	if hex.EncodedLen(DNALength) != len(s) {
		return fault.InvalidDNA
	}
	_, err := hex.Decode(dna[:], s)
	return err
}

// Pack - current layout: dna ++ label
func (e Entity) Pack() []byte {
	buffer := make([]byte, 0, RecordLength)
	buffer = append(buffer, e.DNA[:]...)
	return append(buffer, e.Label[:]...)
}

// Unpack - decode a current layout record
func Unpack(record []byte) (Entity, error) {
	e := Entity{}
	if RecordLength != len(record) {
		return e, fault.DatabaseInconsistent
	}
	copy(e.DNA[:], record[:DNALength])
	copy(e.Label[:], record[DNALength:])
	return e, nil
}
