package mxe

// Grid is a decoded MXE raster: the header plus the cell values in row-major
// order, row 0 being the northernmost row. Cells are widened to float64,
// which represents every float32, int8 and int32 value exactly; DataType
// records the original on-disk encoding.
//
// When the file carries a data-type tag outside the known set the header is
// still returned, Data is nil and DataType is TypeUnknown. Use HasData to
// tell that case apart from an empty raster.
type Grid struct {
	Header
	DataType DataType
	Data     []float64 // len Rows*Cols; nil when DataType is TypeUnknown
}

// HasData reports whether the payload was decoded. It is false only for
// unrecognized data-type tags; a 0-cell raster still has (empty) data.
func (g *Grid) HasData() bool {
	return g.Data != nil
}

// Dims returns the raster dimensions.
func (g *Grid) Dims() (rows, cols int) {
	return int(g.Rows), int(g.Cols)
}

// Value returns the cell at (row, col). It panics if the indices are out of
// bounds or the grid has no data.
func (g *Grid) Value(row, col int) float64 {
	if row < 0 || row >= int(g.Rows) || col < 0 || col >= int(g.Cols) {
		panic("mxe: cell index out of range")
	}
	return g.Data[row*int(g.Cols)+col]
}

// IsNoData reports whether v equals the raster's no-data sentinel.
func (g *Grid) IsNoData(v float64) bool {
	return v == float64(g.NoData)
}

// X returns the x coordinate of the center of column col.
func (g *Grid) X(col int) float64 {
	return g.OriginX + (float64(col)+0.5)*g.CellSize
}

// Y returns the y coordinate of the center of row row. Row 0 is the top of
// the raster, farthest from the origin.
func (g *Grid) Y(row int) float64 {
	return g.OriginY + (float64(int(g.Rows)-row)-0.5)*g.CellSize
}
