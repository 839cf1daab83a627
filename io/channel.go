// Package io provides the byte endpoints the interpreter reads from and
// writes to. Any io.ByteReader is a Source and any io.ByteWriter is a Sink,
// so bufio and bytes types plug in directly. Port adapts plain readers and
// writers such as os.Stdin, and Buffer is a bounded in-memory FIFO.
package io

// Source supplies input bytes one at a time. At end of stream ReadByte
// returns io.EOF.
type Source interface {
	ReadByte() (value byte, err error)
}

// Sink accepts output bytes one at a time.
type Sink interface {
	WriteByte(value byte) error
}
