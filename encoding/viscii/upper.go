// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscii

import (
	"fmt"

	"golang.org/x/text/transform"
)

var upperIndex = newUpperIndex(caseTable[:])

// newUpperIndex folds the ASCII rule and the case pairs into a single table.
// ASCII letters take precedence over the pairs.
func newUpperIndex(pairs []casePair) *[256]byte {
	var t [256]byte
	var seen [256]bool
	for i := range t {
		t[i] = byte(i)
	}
	for c := 'a'; c <= 'z'; c++ {
		t[c] = byte(c - 'a' + 'A')
	}
	for _, p := range pairs {
		if seen[p.lower] {
			panic(fmt.Sprintf("viscii: duplicate lowercase byte %#02x in case table", p.lower))
		}
		seen[p.lower] = true
		if 'a' <= p.lower && p.lower <= 'z' {
			continue
		}
		t[p.lower] = p.upper
	}
	return &t
}

// ToUpper returns the uppercase form of the VISCII byte b, or b itself if it
// is not a lowercase letter.
func ToUpper(b byte) byte {
	return upperIndex[b]
}

// Upper uppercases the VISCII text in buf in place. The length of the text
// does not change. Each byte is read once, before it is overwritten, so buf
// needs no copy.
func Upper(buf []byte) {
	for i, b := range buf {
		buf[i] = upperIndex[b]
	}
}

// UpperCaser returns a Transformer that uppercases VISCII text. It keeps no
// state between calls.
func UpperCaser() transform.SpanningTransformer {
	return upperTransform{}
}

type upperTransform struct {
	transform.NopResetter
}

func (upperTransform) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	n := len(src)
	if n > len(dst) {
		n, err = len(dst), transform.ErrShortDst
	}
	for i, b := range src[:n] {
		dst[i] = upperIndex[b]
	}
	return n, n, err
}

func (upperTransform) Span(src []byte, atEOF bool) (n int, err error) {
	for n < len(src) && upperIndex[src[n]] == src[n] {
		n++
	}
	if n < len(src) {
		err = transform.ErrEndOfSpan
	}
	return n, err
}
