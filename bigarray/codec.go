// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bigarray

import (
	"encoding/binary"
)

// Uint64Codec - little endian uint64 elements
type Uint64Codec struct{}

func (Uint64Codec) Width() int { return 8 }

func (Uint64Codec) Encode(value uint64, buffer []byte) {
	binary.LittleEndian.PutUint64(buffer, value)
}

func (Uint64Codec) Decode(buffer []byte) uint64 {
	return binary.LittleEndian.Uint64(buffer)
}
