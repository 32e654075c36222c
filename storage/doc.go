// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = kitty identifier as big endian uint32 (4 bytes)
// 4. account      = 32 byte ed25519 public key
// 5. balance      = big endian uint64 (8 bytes)
//
// Schema version:
//
//   0x00 ++ "VERSION"          - layout of the records in the K pool
//                                data: big endian uint32
//
// Kitties:
//
//   K ++ id                    - kitty record
//                                data: dna(16) [++ label(4 or 8) depending on version]
//   O ++ id                    - current owner
//                                data: account
//   P ++ id                    - parents of a bred kitty
//                                data: id ++ id
//   S ++ id                    - kitty is listed for sale
//                                data: empty
//
// Ledger:
//
//   B ++ account               - account balance
//                                data: balance
//
// Globals:
//
//   G ++ "next-id"             - next kitty identifier to allocate
//                                data: big endian uint32
//   G ++ "seed"                - rolling random seed
//                                data: 32 bytes
//
// Testing:
//   Z ++ key                   - testing data
package storage
