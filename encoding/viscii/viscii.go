// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viscii converts UTF-8 text to VISCII, the 8-bit Vietnamese
// character set used by LED matrix fonts, and uppercases VISCII text in place.
//
// The encoder is lossy. The 134 precomposed Vietnamese letters map to their
// VISCII bytes; any other codepoint below U+00FF is written as its Latin-1
// byte, and everything else, including all characters outside the Basic
// Multilingual Plane, becomes a single '?'. Latin-1 passthrough shares the
// range 0x80-0xFF with the Vietnamese letters, so for example U+00C4 and
// U+1EA2 both encode to 0xC4.
//
// Every codepoint occupies exactly one destination byte, so the measured size
// of a conversion equals the number of decoded characters in the source.
package viscii // import "github.com/dmdpanel/vntext/encoding/viscii"

import (
	"fmt"

	"github.com/dmdpanel/vntext/encoding"
	"github.com/dmdpanel/vntext/encoding/unicode"
)

var (
	encodeIndex = newEncodeIndex(encodeTable[:])
	decodeIndex = newDecodeIndex(encodeTable[:])
)

func newEncodeIndex(rows []mapping) map[encoding.Codepoint]byte {
	m := make(map[encoding.Codepoint]byte, len(rows))
	for _, r := range rows {
		if _, dup := m[r.c]; dup {
			panic(fmt.Sprintf("viscii: duplicate codepoint %v in encode table", r.c))
		}
		m[r.c] = r.b
	}
	return m
}

func newDecodeIndex(rows []mapping) *[256]encoding.Codepoint {
	var t [256]encoding.Codepoint
	var seen [256]bool
	for i := range t {
		t[i] = encoding.Codepoint(i)
	}
	for _, r := range rows {
		if seen[r.b] {
			panic(fmt.Sprintf("viscii: duplicate byte %#02x in encode table", r.b))
		}
		seen[r.b] = true
		t[r.b] = r.c
	}
	return &t
}

// Encode returns the VISCII byte for c.
func Encode(c encoding.Codepoint) byte {
	if b, ok := encodeIndex[c]; ok {
		return b
	}
	if c < 0xFF {
		return byte(c)
	}
	return encoding.Fallback
}

// EncodeTo writes the VISCII byte for c to dst and returns 1, or returns 0 if
// dst is empty.
func EncodeTo(dst []byte, c encoding.Codepoint) int {
	if len(dst) == 0 {
		return 0
	}
	dst[0] = Encode(c)
	return 1
}

// Decode returns the codepoint of the Vietnamese letter encoded as b, or b
// itself read as Latin-1 if b does not encode one.
func Decode(b byte) encoding.Codepoint {
	return decodeIndex[b]
}

// UTF8ToVISCII writes the VISCII form of the UTF-8 text src into dst and
// returns the number of bytes written. Malformed UTF-8 is written as '?'.
func UTF8ToVISCII(dst, src []byte) int {
	return utf8ToVISCII(dst, src, false)
}

// UTF8ToVISCIILen returns the number of bytes UTF8ToVISCII needs for src.
func UTF8ToVISCIILen(src []byte) int {
	return utf8ToVISCII(nil, src, true)
}

func utf8ToVISCII(dst, src []byte, measure bool) (n int) {
	for i := 0; i < len(src); {
		c, size := unicode.DecodeUTF8(src[i:])
		i += size
		if measure {
			n++
		} else {
			n += EncodeTo(dst[n:], c)
		}
	}
	return n
}

// VISCIIToUTF8 writes the UTF-8 form of the VISCII text src into dst and
// returns the number of bytes written.
func VISCIIToUTF8(dst, src []byte) int {
	return visciiToUTF8(dst, src, false)
}

// VISCIIToUTF8Len returns the number of bytes VISCIIToUTF8 needs for src.
func VISCIIToUTF8Len(src []byte) int {
	return visciiToUTF8(nil, src, true)
}

func visciiToUTF8(dst, src []byte, measure bool) (n int) {
	for _, b := range src {
		c := Decode(b)
		if measure {
			n += unicode.UTF8Len(c)
		} else {
			n += unicode.EncodeUTF8(dst[n:], c)
		}
	}
	return n
}

// DisplayBytes converts the UTF-8 text src for a display driver that expects
// a zero-terminated VISCII string. It measures, converts, optionally
// uppercases and appends a NUL byte; the result has length
// UTF8ToVISCIILen(src)+1.
func DisplayBytes(src []byte, upper bool) []byte {
	n := UTF8ToVISCIILen(src)
	buf := make([]byte, n+1)
	UTF8ToVISCII(buf[:n], src)
	if upper {
		Upper(buf[:n])
	}
	return buf
}
