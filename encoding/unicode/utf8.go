// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unicode

import "github.com/dmdpanel/vntext/encoding"

// Highest codepoint encodable with 1, 2 and 3 bytes.
const (
	utf8Max1 = 0x7F
	utf8Max2 = 0x7FF
	utf8Max3 = 0xFFFF
)

// A continuation byte b satisfies b&contMask == contValue and carries contBits
// bits of the codepoint.
const (
	contMask  = 0xC0
	contValue = 0x80
	contBits  = 6
)

// pattern is a bit template for a UTF-8 byte: b matches if b&mask == value.
type pattern struct {
	mask  byte
	value byte
}

// leading holds the lead byte template of an n-byte sequence at index n-1.
var leading = [...]pattern{
	{0x80, 0x00}, // 0xxxxxxx
	{0xE0, 0xC0}, // 110xxxxx
	{0xF0, 0xE0}, // 1110xxxx
	{0xF8, 0xF0}, // 11110xxx
}

// DecodeUTF8 unpacks the first UTF-8 sequence in src and returns its
// codepoint and the number of bytes examined.
//
// Malformed input decodes to encoding.Replacement:
//   - a byte that is not a valid lead byte consumes 1 byte;
//   - a truncated sequence, or one broken by a non-continuation byte,
//     consumes the lead byte and the continuation bytes read before the
//     failure;
//   - an overlong sequence, a surrogate value or a value above
//     encoding.MaxRune consumes the whole sequence.
//
// If src is empty it returns (encoding.Replacement, 0).
func DecodeUTF8(src []byte) (c encoding.Codepoint, size int) {
	c, size, _ = decodeUTF8(src)
	return c, size
}

func decodeUTF8(src []byte) (c encoding.Codepoint, size int, ok bool) {
	if len(src) == 0 {
		return encoding.Replacement, 0, false
	}
	lead := src[0]
	n := 0
	for n < len(leading) && lead&leading[n].mask != leading[n].value {
		n++
	}
	if n == len(leading) {
		return encoding.Replacement, 1, false
	}

	c = encoding.Codepoint(lead &^ leading[n].mask)
	for size = 1; size <= n; size++ {
		if size >= len(src) || src[size]&contMask != contValue {
			return encoding.Replacement, size, false
		}
		c = c<<contBits | encoding.Codepoint(src[size]&^contMask)
	}

	// The shortest form is the only legal one.
	if UTF8Len(c) != size || encoding.IsSurrogate(c) || c > encoding.MaxRune {
		return encoding.Replacement, size, false
	}
	return c, size, true
}

// UTF8Len returns the number of bytes needed to encode c.
func UTF8Len(c encoding.Codepoint) int {
	switch {
	case c <= utf8Max1:
		return 1
	case c <= utf8Max2:
		return 2
	case c <= utf8Max3:
		return 3
	}
	return 4
}

// EncodeUTF8 writes the UTF-8 encoding of c to dst and returns the number of
// bytes written. If dst is too short to hold the whole encoding nothing is
// written and EncodeUTF8 returns 0.
//
// c is not validated; callers pass values produced by a decoder.
func EncodeUTF8(dst []byte, c encoding.Codepoint) int {
	n := UTF8Len(c)
	if len(dst) < n {
		return 0
	}
	// Continuation bytes are filled in from the last one backwards so that
	// the bits left in c afterwards belong to the lead byte.
	for i := n - 1; i > 0; i-- {
		dst[i] = byte(c)&^contMask | contValue
		c >>= contBits
	}
	p := leading[n-1]
	dst[0] = byte(c)&^p.mask | p.value
	return n
}

// FullUTF8 reports whether src begins with a complete UTF-8 sequence. A
// sequence already broken by its lead byte or a non-continuation byte counts
// as complete, since more input cannot repair it.
func FullUTF8(src []byte) bool {
	if len(src) == 0 {
		return false
	}
	n := 0
	for n < len(leading) && src[0]&leading[n].mask != leading[n].value {
		n++
	}
	for i := 1; i <= n && n < len(leading); i++ {
		if i >= len(src) {
			return false
		}
		if src[i]&contMask != contValue {
			return true
		}
	}
	return true
}
