// SPDX-License-Identifier: EPL-2.0

package iff

import "errors"

var (
	// ErrChunkNotFound indicates the scanner reached the end of the file
	// without meeting the requested chunk
	ErrChunkNotFound = errors.New("chunk not found")

	// ErrNotForm indicates the file does not start with a FORM header
	ErrNotForm = errors.New("not an IFF FORM")

	// ErrEmptyForm indicates a FORM header declaring a zero length
	ErrEmptyForm = errors.New("empty IFF FORM")
)
