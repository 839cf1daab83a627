package io

import (
	"io"
)

// maxEmptyReads bounds the retries of an Input returning no data and no error.
const maxEmptyReads = 100

// Port provides byte-at-a-time I/O over an io.Reader for input and an
// io.Writer for output. A nil Input is an empty stream, and bytes written to a
// nil Output are discarded.
type Port struct {
	Input  io.Reader
	Output io.Writer
}

var _ Source = (*Port)(nil)
var _ Sink = (*Port)(nil)

// ReadByte reads exactly one byte from the input.
func (port *Port) ReadByte() (value byte, err error) {
	if port.Input == nil {
		err = io.EOF
		return
	}

	var one [1]byte
	for range maxEmptyReads {
		var n int
		n, err = port.Input.Read(one[:])
		if n == 1 {
			// A final byte delivered with io.EOF is still a byte.
			value = one[0]
			err = nil
			return
		}
		if err != nil {
			return
		}
	}

	err = io.ErrNoProgress
	return
}

// WriteByte writes one byte to the output.
func (port *Port) WriteByte(value byte) (err error) {
	if port.Output == nil {
		return
	}

	n, err := port.Output.Write([]byte{value})
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}

	return
}
