// Package stream frames agent events for transport to remote clients.
// Each record is tag (1 byte), big-endian length (4 bytes), payload.
package stream

import (
	"encoding/binary"
	"io"
)

// Record tags.
const (
	TagText   = 'T' // assistant text delta
	TagTool   = 't' // tool call progress
	TagSystem = 'S' // status messages from the server itself
	TagError  = 'E' // error messages
	TagDone   = 'D' // end of one response
)

// Output is a flushable byte sink for framed records.
type Output interface {
	io.Writer
	WriteString(s string) (int, error)
	Flush() error
}

// WriteTLV writes one framed record in a single Write call.
func WriteTLV(w io.Writer, tag byte, value string) error {
	data := []byte(value)
	msg := make([]byte, 5+len(data))
	msg[0] = tag
	binary.BigEndian.PutUint32(msg[1:], uint32(len(data)))
	copy(msg[5:], data)

	_, err := w.Write(msg)
	return err
}

// ReadTLV reads one framed record.
func ReadTLV(r io.Reader) (byte, string, error) {
	var header [5]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return 0, "", err
	}
	length := binary.BigEndian.Uint32(header[1:])

	value := make([]byte, length)
	if _, err := io.ReadFull(r, value); err != nil {
		return 0, "", err
	}
	return header[0], string(value), nil
}

// GenericWriter adapts any io.Writer into an Output.
type GenericWriter struct {
	io.Writer
}

func (w *GenericWriter) WriteString(s string) (int, error) {
	return w.Writer.Write([]byte(s))
}

func (w *GenericWriter) Flush() error {
	if f, ok := w.Writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
