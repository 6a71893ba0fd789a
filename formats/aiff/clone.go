// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"errors"
	"fmt"
	"io"

	"github.com/musicinmybrain/libaiff2/internal/iff"
)

// CloneAttributes copies the text attributes of r into w. With
// withMarkers it also copies every marker into a new MARK chunk, which
// requires w to have finished its sound data. Copied markers are
// renumbered from 1.
func CloneAttributes(w *Writer, r *Reader, withMarkers bool) error {
	for _, tag := range iff.Attributes {
		text, ok, err := r.Attribute(tag)
		if err != nil {
			return fmt.Errorf("cloning %s: %w", tag, err)
		}
		if !ok {
			continue
		}
		if err := w.SetAttribute(tag, text); err != nil {
			return fmt.Errorf("cloning %s: %w", tag, err)
		}
	}

	if !withMarkers {
		return nil
	}

	if err := w.StartMarkers(); err != nil {
		return err
	}

	// Attribute left r unprepared, so the marker scan starts at the top
	for {
		m, err := r.ReadMarker()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("cloning markers: %w", err)
		}
		if _, err := w.WriteMarker(m.Position, m.Name); err != nil {
			return fmt.Errorf("cloning markers: %w", err)
		}
	}

	return w.EndMarkers()
}
