// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unicode

import (
	"encoding/binary"
	"reflect"
	"testing"

	xunicode "golang.org/x/text/encoding/unicode"
)

func TestSniffByteOrder(t *testing.T) {
	testCases := []struct {
		src  string
		def  binary.ByteOrder
		want binary.ByteOrder
		n    int
	}{
		{"", binary.LittleEndian, binary.LittleEndian, 0},
		{"\xfe", binary.LittleEndian, binary.LittleEndian, 0},
		{"\xfe\xff\x00A", binary.LittleEndian, binary.BigEndian, 2},
		{"\xff\xfeA\x00", binary.BigEndian, binary.LittleEndian, 2},
		{"A\x00", binary.BigEndian, binary.BigEndian, 0},
	}
	for _, tc := range testCases {
		got, n := SniffByteOrder([]byte(tc.src), tc.def)
		if got != tc.want || n != tc.n {
			t.Errorf("SniffByteOrder(%+q) = %v, %d; want %v, %d", tc.src, got, n, tc.want, tc.n)
		}
	}
}

func TestDecodeUTF16Bytes(t *testing.T) {
	got := DecodeUTF16Bytes([]byte("\x00A\xd8\x3d\xde\x00\x7f"), binary.BigEndian)
	want := []uint16{'A', 0xD83D, 0xDE00}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DecodeUTF16Bytes = %#04x; want %#04x", got, want)
	}
}

func TestAppendUTF16BytesBOM(t *testing.T) {
	for _, tc := range []struct {
		order  binary.ByteOrder
		xorder xunicode.Endianness
	}{
		{binary.BigEndian, xunicode.BigEndian},
		{binary.LittleEndian, xunicode.LittleEndian},
	} {
		s := "Việt 😀"
		want, err := xunicode.UTF16(tc.xorder, xunicode.UseBOM).NewEncoder().String(s)
		if err != nil {
			t.Fatal(err)
		}
		units := make([]uint16, UTF8ToUTF16Len([]byte(s)))
		UTF8ToUTF16(units, []byte(s))
		if got := string(AppendUTF16Bytes(nil, units, tc.order, true)); got != want {
			t.Errorf("%v: AppendUTF16Bytes = %+q; want %+q", tc.order, got, want)
		}
	}
}
