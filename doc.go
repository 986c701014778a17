// Package mxe decodes the MXE binary raster container produced by the MaxEnt
// species-distribution modeling application.
//
// An MXE file is a gzip-compressed stream written through Java's object
// serializer in block-data mode. The serializer framing is vestigial: only
// its byte widths matter to the raster. The decompressed stream consists of:
//   - A 5-byte preamble: stream magic (0xAC 0xED), stream version (0x00 0x05)
//     and a block marker selecting the filler width that follows
//   - 1 filler byte (marker 0x77, short block) or 4 filler bytes
//     (marker 0x7A, long block), carrying no raster information
//   - Seven big-endian header fields: three float64 values (origin x,
//     origin y, cell size) and four int32 values (rows, columns, no-data
//     sentinel, data-type tag)
//   - Rows*Cols cells, contiguous and row-major, encoded per the data-type
//     tag: 1 = big-endian float32, 2 = signed byte, 3 = big-endian int32
//
// # Basic Usage
//
// To read an MXE file:
//
//	grid, err := mxe.DecodeFile("habitat.mxe")
//	if err != nil {
//		// handle error
//	}
//	rows, cols := grid.Dims()
//	v := grid.Value(0, 0)
//
// To inspect only the header of a stream:
//
//	f, _ := os.Open("habitat.mxe")
//	defer f.Close()
//	h, err := mxe.DecodeHeader(f)
//
// Cell values are widened to float64, which represents every float32, int8
// and int32 cell exactly; Grid.DataType records the on-disk encoding. A file
// whose data-type tag is outside the known set still yields its header, with
// Grid.HasData reporting false.
//
// # Security Considerations
//
// Header dimensions come from untrusted input and are validated before any
// payload allocation. Configurable Limits cap the cell count and payload
// size to prevent resource exhaustion from corrupted or hostile headers.
package mxe
