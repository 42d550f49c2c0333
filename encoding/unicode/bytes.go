// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unicode

import "encoding/binary"

// BOM is the byte order mark, U+FEFF.
const BOM = 0xFEFF

// SniffByteOrder inspects the first two bytes of b for a byte order mark. It
// returns the announced order and the length of the mark, or def and 0 if b
// does not start with one.
func SniffByteOrder(b []byte, def binary.ByteOrder) (order binary.ByteOrder, n int) {
	if len(b) < 2 {
		return def, 0
	}
	switch {
	case b[0] == 0xFE && b[1] == 0xFF:
		return binary.BigEndian, 2
	case b[0] == 0xFF && b[1] == 0xFE:
		return binary.LittleEndian, 2
	}
	return def, 0
}

// DecodeUTF16Bytes splits b into 16-bit units using order. A trailing odd
// byte is ignored. No byte order mark is interpreted; see SniffByteOrder.
func DecodeUTF16Bytes(b []byte, order binary.ByteOrder) []uint16 {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = order.Uint16(b[2*i:])
	}
	return units
}

// AppendUTF16Bytes appends units to dst in the given byte order, preceded by
// a byte order mark if bom is set, and returns the extended buffer.
func AppendUTF16Bytes(dst []byte, units []uint16, order binary.ByteOrder, bom bool) []byte {
	var buf [2]byte
	if bom {
		order.PutUint16(buf[:], BOM)
		dst = append(dst, buf[:]...)
	}
	for _, u := range units {
		order.PutUint16(buf[:], u)
		dst = append(dst, buf[:]...)
	}
	return dst
}
