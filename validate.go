package mxe

import (
	"fmt"
	"math"
)

// validateHeader rejects geometrically impossible headers before any payload
// allocation happens. Dimensions come straight off the wire and must not be
// trusted to size a buffer.
func validateHeader(h Header, limits Limits) error {
	if h.Rows < 0 || h.Cols < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidHeader, h.Rows, h.Cols)
	}
	cells := uint64(h.Rows) * uint64(h.Cols)
	if cells > uint64(math.MaxInt) {
		return fmt.Errorf("%w: %d cells overflows addressable size", ErrInvalidHeader, cells)
	}
	if cells > limits.MaxCells {
		return fmt.Errorf("%w: %d cells", ErrLimitExceeded, cells)
	}
	if size := h.DataType().elementSize(); size > 0 {
		if cells > uint64(math.MaxInt)/uint64(size) {
			return fmt.Errorf("%w: payload size for %d cells overflows", ErrInvalidHeader, cells)
		}
		if cells > limits.MaxDataBytes/uint64(size) {
			return fmt.Errorf("%w: payload of %d cells x %d bytes", ErrLimitExceeded, cells, size)
		}
	}
	return nil
}
