package io

import (
	"io"
	"strconv"
)

// Stream is a Console writing to an io.Writer.
type Stream struct {
	Output io.Writer

	Written int // Bytes written since the last Rewind.
}

var _ Console = (*Stream)(nil)

// Rewind zeros the written byte count.
func (st *Stream) Rewind() {
	st.Written = 0
}

// write sends data to the output.
func (st *Stream) write(data []byte) (err error) {
	if st.Output == nil {
		err = ErrNoOutput
		return
	}

	n, err := st.Output.Write(data)
	st.Written += n

	return
}

// WriteChar writes c as a single byte.
func (st *Stream) WriteChar(c byte) error {
	return st.write([]byte{c})
}

// WriteInt writes value in decimal, followed by a line break.
func (st *Stream) WriteInt(value int16) error {
	data := strconv.AppendInt(nil, int64(value), 10)
	data = append(data, '\n')
	return st.write(data)
}
