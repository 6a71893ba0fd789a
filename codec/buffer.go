// SPDX-License-Identifier: EPL-2.0

package codec

// Buffer is a reusable scratch area. It grows to fit the largest request
// seen and never shrinks on its own; call Shrink or Release to give memory
// back.
type Buffer struct {
	b []byte
}

// Grow returns a slice of length n, reallocating only when the current
// capacity is too small.
func (b *Buffer) Grow(n int) []byte {
	if cap(b.b) < n {
		b.b = make([]byte, n)
	}
	return b.b[:n]
}

// Cap returns the current capacity.
func (b *Buffer) Cap() int { return cap(b.b) }

// Shrink drops the backing array when it is larger than n bytes.
func (b *Buffer) Shrink(n int) {
	if cap(b.b) > n {
		b.b = make([]byte, n)
	}
}

// Release frees the backing array.
func (b *Buffer) Release() { b.b = nil }
