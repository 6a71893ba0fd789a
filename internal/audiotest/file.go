// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
)

// File is an in-memory io.ReadWriteSeeker. Writes past the end grow the
// data, filling any gap with zeros.
type File struct {
	data   []byte
	offset int64
}

// NewFile returns a File holding a copy of data, positioned at the start.
func NewFile(data []byte) *File {
	return &File{data: append([]byte(nil), data...)}
}

// Bytes returns the current contents.
func (f *File) Bytes() []byte { return f.data }

func (f *File) Read(p []byte) (int, error) {
	if f.offset >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.offset:])
	f.offset += int64(n)
	return n, nil
}

func (f *File) Write(p []byte) (int, error) {
	end := f.offset + int64(len(p))
	if end > int64(len(f.data)) {
		f.data = append(f.data, make([]byte, end-int64(len(f.data)))...)
	}
	copy(f.data[f.offset:], p)
	f.offset = end
	return len(p), nil
}

func (f *File) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = f.offset + offset
	case io.SeekEnd:
		abs = int64(len(f.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if abs < 0 {
		return 0, errors.New("negative position")
	}

	f.offset = abs
	return abs, nil
}

// FailingWriter is an io.WriteSeeker whose writes fail once Limit bytes
// have been accepted.
type FailingWriter struct {
	File
	Limit int
}

var ErrWriteLimit = errors.New("write limit reached")

func (w *FailingWriter) Write(p []byte) (int, error) {
	if len(w.data)+len(p) > w.Limit {
		return 0, ErrWriteLimit
	}
	return w.File.Write(p)
}
