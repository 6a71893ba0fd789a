// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/musicinmybrain/libaiff2/internal/iff"
)

// MaxMarkers is the number of markers a MARK chunk can hold.
const MaxMarkers = 0xFFFF

// Marker is a named position in the sound data, counted in frames.
type Marker struct {
	ID       uint16
	Position uint32
	Name     string
}

// ReadMarker returns the next marker of the MARK chunk. It returns io.EOF
// once all markers were read, or when the file has none; the call after
// that starts over with the first marker.
//
// Reading markers moves the file position, so the next sample read
// repositions on the sound data.
func (r *Reader) ReadMarker() (Marker, error) {
	if r.closed {
		return Marker{}, ErrClosed
	}

	if r.state != scanningMarkers {
		r.state = unprepared

		n, err := iff.Find(r.rs, iff.TagMARK)
		if errors.Is(err, iff.ErrChunkNotFound) {
			return Marker{}, io.EOF
		}
		if err != nil {
			return Marker{}, fmt.Errorf("locating MARK chunk: %w", err)
		}
		if n < 2 {
			offset, _ := r.rs.Seek(0, io.SeekCurrent)
			return Marker{}, &ChunkError{Tag: iff.TagMARK, Offset: offset, Reason: "missing marker count"}
		}

		var b [2]byte
		if _, err := io.ReadFull(r.rs, b[:]); err != nil {
			return Marker{}, fmt.Errorf("reading marker count: %w", err)
		}

		r.markers = int(binary.BigEndian.Uint16(b[:]))
		r.markerPos = 0
		r.state = scanningMarkers
	}

	if r.markerPos >= r.markers {
		r.state = unprepared
		return Marker{}, io.EOF
	}

	m, err := readMarker(r.rs)
	if err != nil {
		r.state = unprepared
		if errors.Is(err, io.EOF) {
			// the chunk holds fewer records than it declares
			err = io.ErrUnexpectedEOF
		}
		return Marker{}, fmt.Errorf("reading marker %d: %w", r.markerPos, err)
	}
	r.markerPos++

	return m, nil
}

func readMarker(rd io.Reader) (Marker, error) {
	var b [6]byte
	if _, err := io.ReadFull(rd, b[:]); err != nil {
		return Marker{}, err
	}

	name, err := iff.ReadPString(rd)
	if err != nil {
		return Marker{}, err
	}

	return Marker{
		ID:       binary.BigEndian.Uint16(b[0:2]),
		Position: binary.BigEndian.Uint32(b[2:6]),
		Name:     name,
	}, nil
}

// Markers reads every marker from the start of the MARK chunk.
func (r *Reader) Markers() ([]Marker, error) {
	if r.state == scanningMarkers {
		r.state = unprepared
	}

	var out []Marker
	for {
		m, err := r.ReadMarker()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, m)
	}
}

// StartMarkers opens a MARK chunk. Sound data must be finished first.
func (w *Writer) StartMarkers() error {
	if w.state != samplesDone {
		return fmt.Errorf("start markers: %w", ErrNotReady)
	}

	offset := w.pos()
	b := iff.AppendChunkHeader(nil, iff.TagMARK, 2)
	b = binary.BigEndian.AppendUint16(b, 0)
	if err := w.write(b); err != nil {
		return err
	}

	w.markOffset = offset
	w.markers = 0
	w.state = writingMarkers

	return nil
}

// WriteMarker appends a marker at position, counted in frames, and
// returns the id assigned to it. Ids count up from 1.
func (w *Writer) WriteMarker(position uint32, name string) (uint16, error) {
	if w.state != writingMarkers {
		return 0, fmt.Errorf("write marker: %w", ErrNotReady)
	}
	if w.markers >= MaxMarkers {
		return 0, ErrTooManyMarkers
	}

	id := uint16(w.markers + 1)
	b := binary.BigEndian.AppendUint16(nil, id)
	b = binary.BigEndian.AppendUint32(b, position)
	b = iff.AppendPString(b, name)
	if err := w.write(b); err != nil {
		return 0, err
	}
	w.markers++

	return id, nil
}

// EndMarkers completes the MARK chunk, patching its length and count.
func (w *Writer) EndMarkers() error {
	if w.state != writingMarkers {
		return fmt.Errorf("end markers: %w", ErrNotReady)
	}

	end := w.pos()
	b := binary.BigEndian.AppendUint32(nil, uint32(end-w.markOffset-iff.ChunkHeaderSize))
	b = binary.BigEndian.AppendUint16(b, uint16(w.markers))
	if err := w.patch(w.markOffset+4, b, end); err != nil {
		return err
	}

	w.state = samplesDone
	return nil
}
