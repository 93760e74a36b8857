// Package bitstream is the external bit-level collaborator the driver
// writes its code words through and reads them back from. It is a thin
// adapter over github.com/icza/bitio, exposing write_bits, read_bits,
// write_u32 and read_u32, plus single-bit WriteBit/ReadBit and Close.
package bitstream

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Writer appends bits to an underlying byte sink. The last byte is
// padded with zero bits on Close.
type Writer struct {
	w *bitio.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bitio.NewWriter(w)}
}

// WriteBit writes a single 0/1 bit.
func (bw *Writer) WriteBit(bit int) error {
	return bw.w.WriteBool(bit != 0)
}

// WriteBits writes the low n bits of v, most significant of those n
// first.
func (bw *Writer) WriteBits(v uint64, n byte) error {
	if n == 0 {
		return nil
	}
	return bw.w.WriteBits(v, n)
}

// WriteU32 writes a little-endian 32-bit value as four bytes, each byte
// written through WriteBits.
func (bw *Writer) WriteU32(v uint32) error {
	for i := 0; i < 4; i++ {
		if err := bw.WriteBits(uint64(byte(v>>uint(8*i))), 8); err != nil {
			return errors.Wrap(err, "bitstream: write u32")
		}
	}
	return nil
}

// Close flushes any partial byte (padded with zero bits) and closes the
// underlying writer.
func (bw *Writer) Close() error {
	bw.w.Align()
	return bw.w.Close()
}

// Reader consumes bits from an underlying byte source.
type Reader struct {
	r *bitio.Reader
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bitio.NewReader(r)}
}

// ReadBit reads a single 0/1 bit. A truncated stream surfaces as
// io.ErrUnexpectedEOF, matching the decoding-desync error kind.
func (br *Reader) ReadBit() (int, error) {
	b, err := br.r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, errors.Wrap(err, "bitstream: read bit")
	}
	if b {
		return 1, nil
	}
	return 0, nil
}

// ReadBits reads the next n bits and returns them as the low n bits of
// the result, most significant of those n first — the mirror of
// WriteBits. A truncated stream surfaces as io.ErrUnexpectedEOF.
func (br *Reader) ReadBits(n byte) (uint64, error) {
	if n == 0 {
		return 0, nil
	}
	v, err := br.r.ReadBits(n)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.ErrUnexpectedEOF
		}
		return 0, errors.Wrap(err, "bitstream: read bits")
	}
	return v, nil
}

// ReadU32 reads a little-endian 32-bit value from four bytes, each byte
// read through ReadBits.
func (br *Reader) ReadU32() (uint32, error) {
	var v uint32
	for i := 0; i < 4; i++ {
		b, err := br.ReadBits(8)
		if err != nil {
			return 0, errors.Wrap(err, "bitstream: read u32")
		}
		v |= uint32(b) << uint(8*i)
	}
	return v, nil
}
