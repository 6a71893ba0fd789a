// SPDX-License-Identifier: EPL-2.0

package iff

import (
	"fmt"
	"io"
)

// MaxPStringLen is the longest text a Pascal string can carry.
const MaxPStringLen = 255

// PStringLen returns the encoded size of s: the count byte, the text and a
// pad byte when needed to make the total even.
func PStringLen(s string) int {
	n := min(len(s), MaxPStringLen) + 1
	return n + n&1
}

// AppendPString appends s as an even-padded Pascal string. Text longer than
// MaxPStringLen is truncated.
func AppendPString(dst []byte, s string) []byte {
	if len(s) > MaxPStringLen {
		s = s[:MaxPStringLen]
	}
	dst = append(dst, byte(len(s)))
	dst = append(dst, s...)
	if (len(s)+1)&1 != 0 {
		dst = append(dst, 0)
	}
	return dst
}

// ReadPString reads an even-padded Pascal string.
func ReadPString(r io.Reader) (string, error) {
	var n [1]byte
	if _, err := io.ReadFull(r, n[:]); err != nil {
		return "", fmt.Errorf("reading string length: %w", err)
	}

	size := int(n[0])
	if (size+1)&1 != 0 {
		size++
	}

	buf := make([]byte, size)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("reading string: %w", err)
	}

	return string(buf[:n[0]]), nil
}
