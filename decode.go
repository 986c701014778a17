package mxe

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
)

// DecodeFile decodes the MXE raster at path.
//
// It fails with ErrNotFound if the path does not resolve to a readable file.
// The file handle is released on every exit path.
func DecodeFile(path string, opts ...ReadOption) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	defer f.Close()
	return Decode(f, opts...)
}

// Decode reads an MXE raster from r, which must supply the gzip-compressed
// file bytes.
//
// The decoding process:
//  1. Wraps r in the gzip decompression layer
//  2. Consumes the 5-byte serialization preamble and its filler bytes
//  3. Reads the seven fixed header fields, big-endian, in on-disk order
//  4. Validates the declared geometry against the configured limits
//  5. Reads Rows*Cols cells, decoded per the header's data-type tag
//
// By default, Decode will:
//   - Use safe default size limits (see Limits)
//   - Skip validation of the serialization magic/version bytes
//
// Use ReadOption functions to customize this behavior:
//   - WithReadLimits(l): set custom size limits
//   - WithValidateMagic(true): reject unknown magic/version bytes
//
// Decode returns ErrUnrecognizedFormat if the stream is not gzip or the
// block marker is unknown, ErrTruncatedStream if the stream ends inside any
// field or the payload, ErrInvalidHeader for impossible geometry, and
// ErrLimitExceeded when a size limit is exceeded. An unrecognized data-type
// tag is not an error: the returned grid carries the header with DataType
// TypeUnknown and no data. Decoding is all-or-nothing; no partially filled
// grid is ever returned.
func Decode(r io.Reader, opts ...ReadOption) (*Grid, error) {
	cfg := newReadConfig(opts)

	zr, err := openStream(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	sr := &reader{r: zr}
	if err := readPreamble(sr, cfg.validateMagic); err != nil {
		return nil, err
	}
	h, err := readHeader(sr)
	if err != nil {
		return nil, err
	}
	if err := validateHeader(h, cfg.limits); err != nil {
		return nil, err
	}

	grid := &Grid{Header: h, DataType: h.DataType()}
	if grid.DataType == TypeUnknown {
		return grid, nil
	}
	data, err := readCells(sr, grid.DataType, int(h.Rows)*int(h.Cols))
	if err != nil {
		return nil, err
	}
	grid.Data = data
	return grid, nil
}

// DecodeHeader reads only the raster header from r, stopping before the
// payload. It applies the same framing and field rules as Decode.
func DecodeHeader(r io.Reader, opts ...ReadOption) (Header, error) {
	cfg := newReadConfig(opts)

	zr, err := openStream(r)
	if err != nil {
		return Header{}, err
	}
	defer zr.Close()

	sr := &reader{r: zr}
	if err := readPreamble(sr, cfg.validateMagic); err != nil {
		return Header{}, err
	}
	return readHeader(sr)
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

// readCells reads n cells of type t as one contiguous big-endian sequence in
// row-major order and widens each to float64.
func readCells(r *reader, t DataType, n int) ([]float64, error) {
	buf := make([]byte, n*t.elementSize())
	if err := r.readFull(buf, "cell data"); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	switch t {
	case TypeFloat:
		for i := range out {
			out[i] = float64(math.Float32frombits(binary.BigEndian.Uint32(buf[i*4:])))
		}
	case TypeByte:
		for i := range out {
			out[i] = float64(int8(buf[i]))
		}
	case TypeInt:
		for i := range out {
			out[i] = float64(int32(binary.BigEndian.Uint32(buf[i*4:])))
		}
	}
	return out, nil
}
