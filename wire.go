package mxe

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// reader wraps the decompressed MXE byte stream and tracks the offset of the
// read cursor so truncation errors can report where the stream ran out.
type reader struct {
	r   io.Reader
	off int64
}

// readFull reads exactly len(buf) bytes. A short read at any point is a hard
// failure naming the field being read and the offset reached; end-of-stream
// is never treated as padding.
func (r *reader) readFull(buf []byte, field string) error {
	n, err := io.ReadFull(r.r, buf)
	r.off += int64(n)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: reading %s at offset %d", ErrTruncatedStream, field, r.off)
	default:
		return fmt.Errorf("mxe: reading %s at offset %d: %w", field, r.off, err)
	}
}

func (r *reader) float64BE(field string) (float64, error) {
	var buf [8]byte
	if err := r.readFull(buf[:], field); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(buf[:])), nil
}

func (r *reader) int32BE(field string) (int32, error) {
	var buf [4]byte
	if err := r.readFull(buf[:], field); err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(buf[:])), nil
}

// readPreamble consumes the 5-byte serialization preamble plus the filler
// bytes the block marker implies. The block length that follows the marker
// has no meaning to the raster; only its width matters, since it decides
// where the header fields start.
func readPreamble(r *reader, validateMagic bool) error {
	var buf [5]byte
	if err := r.readFull(buf[:], "preamble"); err != nil {
		return err
	}
	if validateMagic {
		if buf[0] != streamMagic0 || buf[1] != streamMagic1 {
			return fmt.Errorf("%w: stream magic 0x%02X%02X", ErrUnrecognizedFormat, buf[0], buf[1])
		}
		if buf[2] != streamVersion0 || buf[3] != streamVersion1 {
			return fmt.Errorf("%w: stream version 0x%02X%02X", ErrUnrecognizedFormat, buf[2], buf[3])
		}
	}
	switch buf[4] {
	case blockShort:
		var skip [1]byte
		return r.readFull(skip[:], "short block length")
	case blockLong:
		var skip [4]byte
		return r.readFull(skip[:], "long block length")
	default:
		return fmt.Errorf("%w: block marker 0x%02X", ErrUnrecognizedFormat, buf[4])
	}
}

// readHeader reads the seven raster fields in their fixed on-disk order.
func readHeader(r *reader) (Header, error) {
	var h Header
	var err error
	if h.OriginX, err = r.float64BE("origin x"); err != nil {
		return Header{}, err
	}
	if h.OriginY, err = r.float64BE("origin y"); err != nil {
		return Header{}, err
	}
	if h.CellSize, err = r.float64BE("cell size"); err != nil {
		return Header{}, err
	}
	if h.Rows, err = r.int32BE("row count"); err != nil {
		return Header{}, err
	}
	if h.Cols, err = r.int32BE("column count"); err != nil {
		return Header{}, err
	}
	if h.NoData, err = r.int32BE("no-data value"); err != nil {
		return Header{}, err
	}
	if h.TypeTag, err = r.int32BE("data-type tag"); err != nil {
		return Header{}, err
	}
	return h, nil
}
