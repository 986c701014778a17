package mxe

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestOpenStream_ReaderInitError(t *testing.T) {
	orig := newGzipReader
	newGzipReader = func(r io.Reader) (*gzip.Reader, error) { return nil, io.ErrClosedPipe }
	defer func() { newGzipReader = orig }()

	_, err := Decode(bytes.NewReader(nil))
	if !errors.Is(err, ErrUnrecognizedFormat) {
		t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
	}
}

func TestOpenStream_RoundTrip(t *testing.T) {
	raw := []byte("mxe stream bytes")
	zr, err := openStream(bytes.NewReader(gzipBytes(t, raw)))
	if err != nil {
		t.Fatal(err)
	}
	defer zr.Close()
	got, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("got %q want %q", got, raw)
	}
}
