// Copyright 2024 The vntext Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package encoding defines the values shared by the UTF-8, UTF-16 and VISCII
// codecs in the subpackages: the Codepoint every decoder produces and every
// encoder consumes, and the errors returned by the validating entry points.
//
// Conversions never fail. Malformed source data decodes to Replacement and
// characters that cannot be represented in a legacy target become Fallback.
// Callers that need to tell a substituted character from a genuine U+FFFD
// should use the Check functions of the codec packages first.
package encoding // import "github.com/dmdpanel/vntext/encoding"

import (
	"errors"
	"fmt"
)

// Codepoint is a Unicode scalar value in [0, MaxRune].
type Codepoint uint32

const (
	// Replacement is substituted for every malformed input sequence.
	Replacement Codepoint = 0xFFFD

	// MaxRune is the highest legal Unicode codepoint.
	MaxRune Codepoint = 0x10FFFF

	// MaxBMP is the last codepoint of the Basic Multilingual Plane, the
	// part of Unicode that UTF-16 encodes without surrogates.
	MaxBMP Codepoint = 0xFFFF

	// SurrogateMin and SurrogateMax bound the range reserved for UTF-16
	// surrogates. These values are never standalone codepoints.
	SurrogateMin Codepoint = 0xD800
	SurrogateMax Codepoint = 0xDFFF

	// Fallback is the byte written by legacy encoders for a codepoint that
	// has no representation in the target character set.
	Fallback byte = '?'
)

// IsSurrogate reports whether c lies in the UTF-16 surrogate range.
func IsSurrogate(c Codepoint) bool {
	return SurrogateMin <= c && c <= SurrogateMax
}

// Valid reports whether c is a Unicode scalar value.
func (c Codepoint) Valid() bool {
	return c <= MaxRune && !IsSurrogate(c)
}

func (c Codepoint) String() string {
	return fmt.Sprintf("U+%04X", uint32(c))
}

var (
	// ErrInvalidUTF8 means that a validator encountered invalid UTF-8.
	ErrInvalidUTF8 = errors.New("encoding: invalid UTF-8")

	// ErrInvalidUTF16 means that a validator encountered an unpaired or
	// misordered UTF-16 surrogate.
	ErrInvalidUTF16 = errors.New("encoding: invalid UTF-16")
)

// InvalidError reports the position of the first malformed code unit in a
// source buffer. It matches ErrInvalidUTF8 or ErrInvalidUTF16 under
// errors.Is, depending on Err.
type InvalidError struct {
	Err    error // ErrInvalidUTF8 or ErrInvalidUTF16
	Offset int   // index of the offending unit, in source units
	Units  []uint32
}

func (e *InvalidError) Error() string {
	if len(e.Units) == 0 {
		return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d: %#x", e.Err, e.Offset, e.Units)
}

func (e *InvalidError) Unwrap() error { return e.Err }
