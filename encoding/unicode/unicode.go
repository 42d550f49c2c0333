// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unicode converts between UTF-16 and UTF-8.
//
// Every conversion comes in two forms that share a single decoding pass. The
// Len form measures: it returns the exact number of destination units the
// conversion needs and writes nothing. The plain form writes into a caller
// supplied buffer and returns the number of units written. The two agree
// whenever the buffer is at least as large as the measured size:
//
//	dst := make([]byte, unicode.UTF16ToUTF8Len(src))
//	n := unicode.UTF16ToUTF8(dst, src) // n == len(dst)
//
// A character that does not fit in the remaining space of dst is skipped
// whole, so a short buffer yields a shorter result rather than a truncated
// sequence. Callers should measure immediately before writing.
package unicode // import "github.com/dmdpanel/vntext/encoding/unicode"

// UTF16ToUTF8 writes the UTF-8 form of the UTF-16 text src into dst and
// returns the number of bytes written. Malformed surrogates are written as
// U+FFFD.
func UTF16ToUTF8(dst []byte, src []uint16) int {
	return utf16ToUTF8(dst, src, false)
}

// UTF16ToUTF8Len returns the number of bytes UTF16ToUTF8 needs for src.
func UTF16ToUTF8Len(src []uint16) int {
	return utf16ToUTF8(nil, src, true)
}

func utf16ToUTF8(dst []byte, src []uint16, measure bool) (n int) {
	for i := 0; i < len(src); {
		c, size := DecodeUTF16(src[i:])
		i += size
		if measure {
			n += UTF8Len(c)
		} else {
			n += EncodeUTF8(dst[n:], c)
		}
	}
	return n
}

// UTF8ToUTF16 writes the UTF-16 form of the UTF-8 text src into dst and
// returns the number of units written. Malformed sequences are written as
// U+FFFD.
func UTF8ToUTF16(dst []uint16, src []byte) int {
	return utf8ToUTF16(dst, src, false)
}

// UTF8ToUTF16Len returns the number of units UTF8ToUTF16 needs for src.
func UTF8ToUTF16Len(src []byte) int {
	return utf8ToUTF16(nil, src, true)
}

func utf8ToUTF16(dst []uint16, src []byte, measure bool) (n int) {
	for i := 0; i < len(src); {
		c, size := DecodeUTF8(src[i:])
		i += size
		if measure {
			n += UTF16Len(c)
		} else {
			n += EncodeUTF16(dst[n:], c)
		}
	}
	return n
}
