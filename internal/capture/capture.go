// Package capture reads and writes offline packet captures.
//
// A capture is a sequence of records. Each record is one direction byte
// (0 serverbound, 1 clientbound), a VarInt length, and that many bytes of
// uncompressed packet: a VarInt packet id followed by the packet fields.
package capture

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/gstoney/mcwire/packet"
	"github.com/gstoney/mcwire/wire"
)

var (
	ErrFrameTooLarge  = errors.New("frame too large")
	ErrBadFrameLength = errors.New("invalid frame length")
	ErrBadDirection   = errors.New("invalid direction")
)

// Record is one captured packet. Body is owned by the record.
type Record struct {
	Direction packet.Direction
	ID        int32
	Body      []byte
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

type byteWriter interface {
	io.Writer
	io.ByteWriter
}

// Reader iterates over the records of a capture.
type Reader struct {
	src    byteReader
	maxLen int32
}

// NewReader creates a Reader. Sources that do not implement io.ByteReader
// are wrapped with bufio. Frames longer than maxLen are rejected.
func NewReader(r io.Reader, maxLen int32) *Reader {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{src: br, maxLen: maxLen}
}

// Next returns the next record, or io.EOF once the capture ends on a record
// boundary. A capture cut inside a record fails with wire.ErrEOF.
func (c *Reader) Next() (rec Record, err error) {
	d, err := c.src.ReadByte()
	if err != nil {
		return rec, err
	}
	if d > byte(packet.ClientBound) {
		return rec, fmt.Errorf("%w: 0x%02x", ErrBadDirection, d)
	}
	rec.Direction = packet.Direction(d)

	length, err := wire.ReadVarIntFromReader(c.src)
	if err != nil {
		return rec, err
	}
	if length <= 0 {
		return rec, fmt.Errorf("%w: %d", ErrBadFrameLength, length)
	}
	if length > c.maxLen {
		return rec, fmt.Errorf("%w: %d > %d", ErrFrameTooLarge, length, c.maxLen)
	}

	frame := make([]byte, length)
	if _, err = io.ReadFull(c.src, frame); err != nil {
		if err == io.EOF {
			err = wire.ErrEOF
		}
		return rec, err
	}

	rec.ID, rec.Body, err = packet.Split(frame)
	return rec, err
}

// Writer appends records to a capture.
type Writer struct {
	dst byteWriter
}

// NewWriter creates a Writer. Destinations that do not implement
// io.ByteWriter are wrapped with bufio and flushed after every record.
func NewWriter(w io.Writer) *Writer {
	bw, ok := w.(byteWriter)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	return &Writer{dst: bw}
}

// WritePacket writes p as a record in direction d.
func (c *Writer) WritePacket(d packet.Direction, p packet.Packet) error {
	b, err := packet.Marshal(p)
	if err != nil {
		return err
	}
	return c.WriteFrame(d, b)
}

// WriteFrame writes an already marshaled packet, id included.
func (c *Writer) WriteFrame(d packet.Direction, frame []byte) error {
	if len(frame) == 0 {
		return fmt.Errorf("%w: 0", ErrBadFrameLength)
	}

	if err := c.dst.WriteByte(byte(d)); err != nil {
		return err
	}
	if err := wire.WriteVarInt(c.dst, int32(len(frame))); err != nil {
		return err
	}
	if _, err := c.dst.Write(frame); err != nil {
		return err
	}

	if bw, ok := c.dst.(*bufio.Writer); ok {
		return bw.Flush()
	}
	return nil
}
