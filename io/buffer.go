package io

import (
	"io"
)

// Buffer is a circular FIFO of bytes with a fixed capacity. It is both a
// Source and a Sink.
type Buffer struct {
	Capacity int // Capacity in bytes.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []byte
}

var _ Source = (*Buffer)(nil)
var _ Sink = (*Buffer)(nil)

// NewBuffer creates a buffer holding the initial bytes, with room for at
// least capacity bytes.
func NewBuffer(capacity int, initial ...byte) (buf *Buffer) {
	buf = &Buffer{Capacity: max(capacity, len(initial))}
	buf.Rewind()
	for _, value := range initial {
		buf.WriteByte(value)
	}
	return
}

// Rewind empties the buffer and reallocates its storage.
func (buf *Buffer) Rewind() {
	buf.ReadIndex = 0
	buf.WriteIndex = 0
	buf.Size = 0
	buf.Data = make([]byte, buf.Capacity)
}

// ReadByte removes the oldest byte, or returns io.EOF once empty.
func (buf *Buffer) ReadByte() (value byte, err error) {
	if buf.Size == 0 {
		err = io.EOF
		return
	}

	value = buf.Data[buf.ReadIndex]
	buf.ReadIndex++
	if buf.ReadIndex == buf.Capacity {
		buf.ReadIndex = 0
	}
	buf.Size--

	return
}

// WriteByte appends a byte. Returns ErrChannelFull if the buffer has reached
// capacity.
func (buf *Buffer) WriteByte(value byte) (err error) {
	if buf.Size >= buf.Capacity {
		err = ErrChannelFull
		return
	}
	if len(buf.Data) != buf.Capacity {
		buf.Rewind()
	}

	buf.Data[buf.WriteIndex] = value

	buf.WriteIndex++
	if buf.WriteIndex == buf.Capacity {
		buf.WriteIndex = 0
	}
	buf.Size++

	return
}

// Bytes returns a copy of the buffered bytes, oldest first, without
// consuming them.
func (buf *Buffer) Bytes() (data []byte) {
	data = make([]byte, 0, buf.Size)
	for n := range buf.Size {
		data = append(data, buf.Data[(buf.ReadIndex+n)%buf.Capacity])
	}
	return
}
