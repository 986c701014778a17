package mxe

// Java object-serialization framing constants. An MXE stream begins with the
// serializer's two-byte stream magic and two-byte stream version, followed by
// a block-data marker whose shape decides how many filler bytes precede the
// raster header.
const (
	streamMagic0 byte = 0xAC
	streamMagic1 byte = 0xED

	streamVersion0 byte = 0x00
	streamVersion1 byte = 0x05

	blockShort byte = 0x77 // 1-byte block length follows
	blockLong  byte = 0x7A // 4-byte block length follows
)

// DataType identifies the per-cell encoding of the payload.
type DataType int32

const (
	// TypeUnknown marks a data-type tag outside the known set. The header
	// still decodes; the payload is not read.
	TypeUnknown DataType = 0
	// TypeFloat cells are big-endian IEEE-754 32-bit floats.
	TypeFloat DataType = 1
	// TypeByte cells are signed 8-bit integers.
	TypeByte DataType = 2
	// TypeInt cells are big-endian signed 32-bit integers.
	TypeInt DataType = 3
)

func (t DataType) String() string {
	switch t {
	case TypeFloat:
		return "float"
	case TypeByte:
		return "byte"
	case TypeInt:
		return "int"
	default:
		return "unknown"
	}
}

// elementSize returns the on-disk width of one cell in bytes, or 0 for
// TypeUnknown.
func (t DataType) elementSize() int {
	switch t {
	case TypeFloat, TypeInt:
		return 4
	case TypeByte:
		return 1
	default:
		return 0
	}
}

// Header holds the seven fixed raster fields, in the order they appear on
// disk. All values are big-endian in the stream.
type Header struct {
	OriginX  float64 // x coordinate of the lower-left corner (xll)
	OriginY  float64 // y coordinate of the lower-left corner (yll)
	CellSize float64 // side length of a square cell
	Rows     int32
	Cols     int32
	NoData   int32 // sentinel marking absent cells
	TypeTag  int32 // raw data-type selector as stored in the file
}

// DataType maps the raw TypeTag to a DataType, yielding TypeUnknown for any
// tag outside {1, 2, 3}.
func (h Header) DataType() DataType {
	switch h.TypeTag {
	case int32(TypeFloat), int32(TypeByte), int32(TypeInt):
		return DataType(h.TypeTag)
	default:
		return TypeUnknown
	}
}
