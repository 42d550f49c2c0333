// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unicode

import "github.com/dmdpanel/vntext/encoding"

// ValidUTF16 reports whether src consists entirely of BMP characters and
// correctly paired surrogates.
func ValidUTF16(src []uint16) bool {
	for i := 0; i < len(src); {
		_, size, ok := decodeUTF16(src[i:])
		if !ok {
			return false
		}
		i += size
	}
	return true
}

// CheckUTF16 returns nil if src is valid UTF-16. Otherwise it returns an
// *encoding.InvalidError locating the first unpaired surrogate.
func CheckUTF16(src []uint16) error {
	for i := 0; i < len(src); {
		_, size, ok := decodeUTF16(src[i:])
		if !ok {
			return &encoding.InvalidError{
				Err:    encoding.ErrInvalidUTF16,
				Offset: i,
				Units:  []uint32{uint32(src[i])},
			}
		}
		i += size
	}
	return nil
}

// ValidUTF8 reports whether src consists entirely of valid, shortest-form
// UTF-8 sequences.
func ValidUTF8(src []byte) bool {
	for i := 0; i < len(src); {
		_, size, ok := decodeUTF8(src[i:])
		if !ok {
			return false
		}
		i += size
	}
	return true
}

// CheckUTF8 returns nil if src is valid UTF-8. Otherwise it returns an
// *encoding.InvalidError locating the first malformed sequence.
func CheckUTF8(src []byte) error {
	for i := 0; i < len(src); {
		_, size, ok := decodeUTF8(src[i:])
		if !ok {
			units := make([]uint32, size)
			for j, b := range src[i : i+size] {
				units[j] = uint32(b)
			}
			return &encoding.InvalidError{
				Err:    encoding.ErrInvalidUTF8,
				Offset: i,
				Units:  units,
			}
		}
		i += size
	}
	return nil
}
