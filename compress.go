package mxe

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Function variable for testing injection.
var newGzipReader = func(r io.Reader) (*gzip.Reader, error) { return gzip.NewReader(r) }

// openStream wraps r in the gzip layer the producing application compresses
// every MXE file with. A stream that does not start with a gzip header is
// not an MXE file at all.
func openStream(r io.Reader) (*gzip.Reader, error) {
	zr, err := newGzipReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: gzip: %v", ErrUnrecognizedFormat, err)
	}
	return zr, nil
}
