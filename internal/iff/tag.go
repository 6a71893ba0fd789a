// SPDX-License-Identifier: EPL-2.0

package iff

// Tag is a four character chunk or type identifier.
type Tag [4]byte

func (t Tag) String() string { return string(t[:]) }

// Container tags.
var (
	TagFORM = Tag{'F', 'O', 'R', 'M'}
	TagAIFF = Tag{'A', 'I', 'F', 'F'}
	TagAIFC = Tag{'A', 'I', 'F', 'C'}
)

// Chunk tags.
var (
	TagFVER = Tag{'F', 'V', 'E', 'R'}
	TagCOMM = Tag{'C', 'O', 'M', 'M'}
	TagSSND = Tag{'S', 'S', 'N', 'D'}
	TagMARK = Tag{'M', 'A', 'R', 'K'}
	TagINST = Tag{'I', 'N', 'S', 'T'}
	TagNAME = Tag{'N', 'A', 'M', 'E'}
	TagAUTH = Tag{'A', 'U', 'T', 'H'}
	TagCOPY = Tag{'(', 'c', ')', ' '}
	TagANNO = Tag{'A', 'N', 'N', 'O'}
)

// Attributes lists the text chunks carried as raw, unprefixed bytes.
var Attributes = [...]Tag{TagNAME, TagAUTH, TagCOPY, TagANNO}

// IsAttribute reports whether t names a text attribute chunk.
func IsAttribute(t Tag) bool {
	for _, a := range Attributes {
		if a == t {
			return true
		}
	}
	return false
}
