// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/musicinmybrain/libaiff2/internal/iff"
)

const instSize = 20

// PlayMode says how a loop is played.
type PlayMode int16

const (
	NoLooping PlayMode = iota
	ForwardLooping
	ForwardBackwardLooping
)

func (m PlayMode) String() string {
	switch m {
	case NoLooping:
		return "no looping"
	case ForwardLooping:
		return "forward"
	case ForwardBackwardLooping:
		return "forward/backward"
	default:
		return fmt.Sprintf("PlayMode(%d)", int16(m))
	}
}

// Loop is a section of the sound data played repeatedly. Begin and End are
// marker positions, or 0 when the marker does not exist.
type Loop struct {
	PlayMode PlayMode
	Begin    uint32
	End      uint32
}

// Instrument holds the sampler settings of an INST chunk.
type Instrument struct {
	BaseNote     int8
	Detune       int8
	LowNote      int8
	HighNote     int8
	LowVelocity  int8
	HighVelocity int8
	Gain         int16
	SustainLoop  Loop
	ReleaseLoop  Loop
}

// Instrument reads the INST chunk and resolves its loop markers to
// positions. ok is false when the file has no INST chunk.
func (r *Reader) Instrument() (inst Instrument, ok bool, err error) {
	if r.closed {
		return Instrument{}, false, ErrClosed
	}
	r.state = unprepared

	n, err := iff.Find(r.rs, iff.TagINST)
	if errors.Is(err, iff.ErrChunkNotFound) {
		return Instrument{}, false, nil
	}
	if err != nil {
		return Instrument{}, false, fmt.Errorf("locating INST chunk: %w", err)
	}
	if n != instSize {
		offset, _ := r.rs.Seek(0, io.SeekCurrent)
		return Instrument{}, false, &ChunkError{Tag: iff.TagINST, Offset: offset, Reason: fmt.Sprintf("%d bytes, want %d", n, instSize)}
	}

	var b [instSize]byte
	if _, err := io.ReadFull(r.rs, b[:]); err != nil {
		return Instrument{}, false, fmt.Errorf("reading INST chunk: %w", err)
	}

	inst = Instrument{
		BaseNote:     int8(b[0]),
		Detune:       int8(b[1]),
		LowNote:      int8(b[2]),
		HighNote:     int8(b[3]),
		LowVelocity:  int8(b[4]),
		HighVelocity: int8(b[5]),
		Gain:         int16(binary.BigEndian.Uint16(b[6:8])),
	}
	inst.SustainLoop.PlayMode = PlayMode(binary.BigEndian.Uint16(b[8:10]))
	inst.ReleaseLoop.PlayMode = PlayMode(binary.BigEndian.Uint16(b[14:16]))

	ids := [4]uint16{
		binary.BigEndian.Uint16(b[10:12]),
		binary.BigEndian.Uint16(b[12:14]),
		binary.BigEndian.Uint16(b[16:18]),
		binary.BigEndian.Uint16(b[18:20]),
	}

	markers, err := r.Markers()
	if err != nil {
		return Instrument{}, false, err
	}

	var positions [4]uint32
	for _, m := range markers {
		for i, id := range ids {
			if m.ID == id {
				positions[i] = m.Position
			}
		}
	}

	inst.SustainLoop.Begin, inst.SustainLoop.End = positions[0], positions[1]
	inst.ReleaseLoop.Begin, inst.ReleaseLoop.End = positions[2], positions[3]

	return inst, true, nil
}
