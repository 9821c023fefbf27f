// Copyright (c) 2020, The Garble Authors.
// See LICENSE for licensing information.

// Package bitcodec converts between fixed-width big-endian ASCII bit strings
// and unsigned integers.
package bitcodec

import (
	"errors"
	"fmt"
)

// ErrInvalidBitString is wrapped by every Parse failure.
var ErrInvalidBitString = errors.New("invalid bit string")

// MaxWidth is the widest bit string the codec handles.
const MaxWidth = 64

// Parse reads s as exactly width big-endian bits.
func Parse(s string, width int) (uint64, error) {
	if width <= 0 || width > MaxWidth {
		return 0, fmt.Errorf("%w: unsupported width %d", ErrInvalidBitString, width)
	}
	if len(s) != width {
		return 0, fmt.Errorf("%w: %q has %d characters, want %d", ErrInvalidBitString, s, len(s), width)
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '0' && c != '1' {
			return 0, fmt.Errorf("%w: %q has %q at offset %d, want only 0 and 1", ErrInvalidBitString, s, c, i)
		}
		n = n<<1 | uint64(c-'0')
	}
	return n, nil
}

// Format renders n mod 2^width as exactly width bits, keeping leading zeroes.
func Format(n uint64, width int) string {
	if width <= 0 {
		return ""
	}
	if width < MaxWidth {
		n &= 1<<width - 1
	}
	return fmt.Sprintf("%0*b", width, n)
}
