// SPDX-License-Identifier: EPL-2.0

// Package iff implements the subset of the Electronic Arts Interchange File
// Format needed by AIFF and AIFF-C: the FORM header, tagged chunk headers,
// a linear chunk scanner and even-padded Pascal strings.
//
// All multi-byte fields are big-endian. A chunk payload always starts at an
// even offset, so an odd-length chunk is followed by one pad byte that is
// not counted in its declared length.
package iff
