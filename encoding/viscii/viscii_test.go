// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscii

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/dmdpanel/vntext/encoding"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		c    encoding.Codepoint
		want byte
	}{
		{'A', 0x41},
		{0x00, 0x00},
		{0x1EC7, 0xAE}, // ệ
		{0x1EC6, 0x8E}, // Ệ
		{0x00D5, 0xA0}, // Õ
		{0x0111, 0xF0}, // đ
		{0x1EB2, 0x02}, // Ẳ
		{0x1EF4, 0x1E}, // Ỵ

		// Latin-1 passthrough, colliding with Ả.
		{0x00C4, 0xC4},
		{0x00FE, 0xFE},
		{0x00FF, '?'},
		{0x20AC, '?'},
		{encoding.Replacement, '?'},
		{0x1F600, '?'},
		{encoding.MaxRune, '?'},
	}
	for _, tc := range testCases {
		if got := Encode(tc.c); got != tc.want {
			t.Errorf("Encode(%v) = %#02x; want %#02x", tc.c, got, tc.want)
		}
	}
}

func TestEncodeTo(t *testing.T) {
	if n := EncodeTo(nil, 'a'); n != 0 {
		t.Errorf("EncodeTo(nil) = %d; want 0", n)
	}
	dst := make([]byte, 1)
	if n := EncodeTo(dst, 0x1F600); n != 1 || dst[0] != '?' {
		t.Errorf("EncodeTo(%v) = %d, %#02x; want 1, '?'", encoding.Codepoint(0x1F600), n, dst[0])
	}
}

func TestDecode(t *testing.T) {
	for _, r := range encodeTable {
		if got := Decode(r.b); got != r.c {
			t.Errorf("Decode(%#02x) = %v; want %v", r.b, got, r.c)
		}
		if got := Decode(Encode(r.c)); got != r.c {
			t.Errorf("Decode(Encode(%v)) = %v", r.c, got)
		}
	}
	for _, b := range []byte{'A', 'z', 0x00, 0x7F} {
		if got := Decode(b); got != encoding.Codepoint(b) {
			t.Errorf("Decode(%#02x) = %v; want %v", b, got, encoding.Codepoint(b))
		}
	}
}

func TestUTF8ToVISCII(t *testing.T) {
	testCases := []struct {
		desc string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"ascii", "Hello", "Hello"},
		{"vietnamese", "Việt", "Vi\xaet"},
		{"non-BMP takes one byte", "a😀b", "a?b"},
		{"overlong", "\xC0\x80", "?"},
		{"broken", "\xE2\x82A", "?A"},
		{"stray continuation", "\x80\x80", "??"},
	}
	for _, tc := range testCases {
		n := UTF8ToVISCIILen([]byte(tc.src))
		if n != len(tc.want) {
			t.Errorf("%s: UTF8ToVISCIILen(%+q) = %d; want %d", tc.desc, tc.src, n, len(tc.want))
		}
		dst := make([]byte, n)
		if m := UTF8ToVISCII(dst, []byte(tc.src)); m != n || string(dst) != tc.want {
			t.Errorf("%s: UTF8ToVISCII(%+q) = %d, %+q; want %d, %+q", tc.desc, tc.src, m, dst[:m], n, tc.want)
		}
	}
}

func TestUTF8ToVISCIIShortDst(t *testing.T) {
	src := []byte("Việt😀")
	for size := 0; size <= 5; size++ {
		dst := make([]byte, size)
		want := "Vi\xaet?"[:size]
		if n := UTF8ToVISCII(dst, src); n != size || string(dst[:n]) != want {
			t.Errorf("UTF8ToVISCII(len %d) = %d, %+q; want %d, %+q", size, n, dst[:n], size, want)
		}
	}
}

func TestVISCIIToUTF8(t *testing.T) {
	src := []byte("Vi\xaet \x02\xc4")
	want := "Việt ẲẢ"
	n := VISCIIToUTF8Len(src)
	if n != len(want) {
		t.Fatalf("VISCIIToUTF8Len(%+q) = %d; want %d", src, n, len(want))
	}
	dst := make([]byte, n)
	if m := VISCIIToUTF8(dst, src); m != n || string(dst) != want {
		t.Errorf("VISCIIToUTF8(%+q) = %d, %q; want %d, %q", src, m, dst[:m], n, want)
	}
}

func TestDisplayBytes(t *testing.T) {
	got := DisplayBytes([]byte("Việt Nam"), true)
	want := "VI\x8eT NAM\x00"
	if string(got) != want {
		t.Errorf("DisplayBytes = %+q; want %+q", got, want)
	}
	if got := DisplayBytes(nil, false); len(got) != 1 || got[0] != 0 {
		t.Errorf("DisplayBytes(nil) = %+q; want \"\\x00\"", got)
	}
}

func TestTxtarFixtures(t *testing.T) {
	a, err := txtar.ParseFile("testdata/convert.txtar")
	if err != nil {
		t.Fatal(err)
	}
	files := map[string][]byte{}
	for _, f := range a.Files {
		files[f.Name] = f.Data
	}
	unhex := func(name string) []byte {
		b, err := hex.DecodeString(strings.Join(strings.Fields(string(files[name])), ""))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		return b
	}
	count := 0
	for name, data := range files {
		base := strings.TrimSuffix(name, ".txt")
		if base == name {
			continue
		}
		count++
		src := bytes.TrimSuffix(data, []byte("\n"))
		want, wantUpper := unhex(base+".hex"), unhex(base+".upper.hex")

		dst := make([]byte, UTF8ToVISCIILen(src))
		n := UTF8ToVISCII(dst, src)
		if !bytes.Equal(dst[:n], want) {
			t.Errorf("%s: UTF8ToVISCII = % x; want % x", base, dst[:n], want)
		}
		Upper(dst)
		if !bytes.Equal(dst, wantUpper) {
			t.Errorf("%s: Upper = % x; want % x", base, dst, wantUpper)
		}
	}
	if count == 0 {
		t.Error("no fixtures found")
	}
}
