// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unicode

import "github.com/dmdpanel/vntext/encoding"

const (
	// A unit u is a surrogate if u&genericSurrogateMask == encoding.SurrogateMin.
	genericSurrogateMask = 0xF800

	// A surrogate s is a high (low) surrogate if s&surrogateMask equals
	// highSurrogate (lowSurrogate).
	surrogateMask = 0xFC00
	highSurrogate = 0xD800
	lowSurrogate  = 0xDC00

	surrogateOffset    = 0x10000
	surrogateValueMask = 0x03FF
	surrogateValueBits = 10
)

// DecodeUTF16 unpacks the first codepoint in src and returns it together with
// the number of units it occupies, 1 or 2.
//
// A lone low surrogate, a high surrogate in the last position of src and a
// high surrogate not followed by a low surrogate each decode to
// (encoding.Replacement, 1): the unit after the offending one is left for the
// next call. If src is empty it returns (encoding.Replacement, 0).
func DecodeUTF16(src []uint16) (c encoding.Codepoint, size int) {
	c, size, _ = decodeUTF16(src)
	return c, size
}

func decodeUTF16(src []uint16) (c encoding.Codepoint, size int, ok bool) {
	if len(src) == 0 {
		return encoding.Replacement, 0, false
	}
	high := src[0]
	if high&genericSurrogateMask != uint16(encoding.SurrogateMin) {
		return encoding.Codepoint(high), 1, true
	}
	if high&surrogateMask != highSurrogate || len(src) == 1 {
		return encoding.Replacement, 1, false
	}
	low := src[1]
	if low&surrogateMask != lowSurrogate {
		return encoding.Replacement, 1, false
	}
	c = encoding.Codepoint(high&surrogateValueMask) << surrogateValueBits
	c |= encoding.Codepoint(low & surrogateValueMask)
	return c + surrogateOffset, 2, true
}

// UTF16Len returns the number of 16-bit units needed to encode c.
func UTF16Len(c encoding.Codepoint) int {
	if c <= encoding.MaxBMP {
		return 1
	}
	return 2
}

// EncodeUTF16 writes the UTF-16 encoding of c to dst and returns the number
// of units written. If dst is too short to hold the whole encoding nothing is
// written and EncodeUTF16 returns 0; a surrogate pair is never split.
//
// c is not validated beyond the BMP threshold.
func EncodeUTF16(dst []uint16, c encoding.Codepoint) int {
	if len(dst) == 0 {
		return 0
	}
	if c <= encoding.MaxBMP {
		dst[0] = uint16(c)
		return 1
	}
	if len(dst) < 2 {
		return 0
	}
	c -= surrogateOffset
	dst[0] = highSurrogate | uint16(c>>surrogateValueBits)&surrogateValueMask
	dst[1] = lowSurrogate | uint16(c)&surrogateValueMask
	return 2
}
