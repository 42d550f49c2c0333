// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unicode

import (
	"testing"
	"unicode/utf16"

	"github.com/dmdpanel/vntext/encoding"
)

func TestUTF16RoundTripBMP(t *testing.T) {
	var buf [2]uint16
	for c := encoding.Codepoint(0); c <= encoding.MaxBMP; c++ {
		if encoding.IsSurrogate(c) {
			continue
		}
		if n := UTF16Len(c); n != 1 {
			t.Fatalf("UTF16Len(%v) = %d; want 1", c, n)
		}
		if n := EncodeUTF16(buf[:], c); n != 1 {
			t.Fatalf("EncodeUTF16(%v) = %d; want 1", c, n)
		}
		got, size := DecodeUTF16(buf[:1])
		if got != c || size != 1 {
			t.Fatalf("DecodeUTF16(%#04x) = %v, %d; want %v, 1", buf[0], got, size, c)
		}
	}
}

func TestUTF16RoundTripSupplementary(t *testing.T) {
	var buf [2]uint16
	for c := encoding.Codepoint(0x10000); c <= encoding.MaxRune; c++ {
		if n := EncodeUTF16(buf[:], c); n != 2 || UTF16Len(c) != 2 {
			t.Fatalf("EncodeUTF16(%v) = %d; want 2", c, n)
		}
		r1, r2 := utf16.EncodeRune(rune(c))
		if buf[0] != uint16(r1) || buf[1] != uint16(r2) {
			t.Fatalf("EncodeUTF16(%v) = %#04x; want [%#04x %#04x]", c, buf, r1, r2)
		}
		if buf[0]&surrogateMask != highSurrogate || buf[1]&surrogateMask != lowSurrogate {
			t.Fatalf("EncodeUTF16(%v) = %#04x: not a high/low pair", c, buf)
		}
		got, size := DecodeUTF16(buf[:])
		if got != c || size != 2 {
			t.Fatalf("DecodeUTF16(%#04x) = %v, %d; want %v, 2", buf, got, size, c)
		}
	}
}

func TestDecodeUTF16(t *testing.T) {
	testCases := []struct {
		desc string
		src  []uint16
		want encoding.Codepoint
		size int
	}{
		{"empty", nil, encoding.Replacement, 0},
		{"ascii", []uint16{0x41}, 0x41, 1},
		{"ascii then lone low", []uint16{0x41, 0xDC00}, 0x41, 1},
		{"genuine replacement", []uint16{0xFFFD}, encoding.Replacement, 1},
		{"pair", []uint16{0xD83D, 0xDE00}, 0x1F600, 2},
		{"max pair", []uint16{0xDBFF, 0xDFFF}, encoding.MaxRune, 2},
		{"min pair", []uint16{0xD800, 0xDC00}, 0x10000, 2},
		{"lone low", []uint16{0xDC00}, encoding.Replacement, 1},
		{"lone low before low", []uint16{0xDFFF, 0xDC00}, encoding.Replacement, 1},
		{"high at end", []uint16{0xD800}, encoding.Replacement, 1},
		{"high then ascii", []uint16{0xD800, 0x0041}, encoding.Replacement, 1},
		{"high then high", []uint16{0xD800, 0xDBFF}, encoding.Replacement, 1},
	}
	for _, tc := range testCases {
		got, size := DecodeUTF16(tc.src)
		if got != tc.want || size != tc.size {
			t.Errorf("%s: DecodeUTF16(%#04x) = %v, %d; want %v, %d", tc.desc, tc.src, got, size, tc.want, tc.size)
		}
	}
}

func TestEncodeUTF16ShortDst(t *testing.T) {
	testCases := []struct {
		c    encoding.Codepoint
		dst  int
		want int
	}{
		{'A', 0, 0},
		{'A', 1, 1},
		{0x1F600, 0, 0},
		{0x1F600, 1, 0},
		{0x1F600, 2, 2},
	}
	for _, tc := range testCases {
		dst := make([]uint16, tc.dst)
		for i := range dst {
			dst[i] = 0xAAAA
		}
		got := EncodeUTF16(dst, tc.c)
		if got != tc.want {
			t.Errorf("EncodeUTF16(len %d, %v) = %d; want %d", tc.dst, tc.c, got, tc.want)
		}
		if got == 0 {
			for i, u := range dst {
				if u != 0xAAAA {
					t.Errorf("EncodeUTF16(len %d, %v) wrote %#04x at %d", tc.dst, tc.c, u, i)
				}
			}
		}
	}
}
