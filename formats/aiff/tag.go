// SPDX-License-Identifier: EPL-2.0

package aiff

import "github.com/musicinmybrain/libaiff2/internal/iff"

// Tag is a four character chunk or compression identifier.
type Tag = iff.Tag

// Text attribute chunks accepted by Reader.Attribute and Writer.SetAttribute.
var (
	Name       = iff.TagNAME
	Author     = iff.TagAUTH
	Copyright  = iff.TagCOPY
	Annotation = iff.TagANNO
)

// Form types.
var (
	FormAIFF = iff.TagAIFF
	FormAIFC = iff.TagAIFC
)
