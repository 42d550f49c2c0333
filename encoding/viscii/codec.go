// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viscii

import (
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"github.com/dmdpanel/vntext/encoding/unicode"
)

// VISCII is the VISCII character set as a golang.org/x/text Encoding. Its
// encoder writes '?' for characters VISCII cannot represent, as UTF8ToVISCII
// does, instead of returning an error.
var VISCII xencoding.Encoding = &visciiEncoding{}

type visciiEncoding struct{}

func (*visciiEncoding) NewDecoder() *xencoding.Decoder {
	return &xencoding.Decoder{Transformer: decoder{}}
}

func (*visciiEncoding) NewEncoder() *xencoding.Encoder {
	return &xencoding.Encoder{Transformer: encoder{}}
}

func (*visciiEncoding) String() string { return "VISCII" }

type decoder struct{ transform.NopResetter }

func (decoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for ; nSrc < len(src); nSrc++ {
		n := unicode.EncodeUTF8(dst[nDst:], Decode(src[nSrc]))
		if n == 0 {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += n
	}
	return nDst, nSrc, nil
}

type encoder struct{ transform.NopResetter }

func (encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !unicode.FullUTF8(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		c, size := unicode.DecodeUTF8(src[nSrc:])
		dst[nDst] = Encode(c)
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}
