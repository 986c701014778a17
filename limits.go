package mxe

type Limits struct {
	MaxCells     uint64 // rows*cols as declared in the header
	MaxDataBytes uint64 // on-disk payload bytes (cells * element width)
}

func defaultLimits() Limits {
	return Limits{
		MaxCells:     256 << 20, // 268M cells
		MaxDataBytes: 1 << 30,   // 1 GiB stored payload cap
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxCells == 0 {
		l.MaxCells = d.MaxCells
	}
	if l.MaxDataBytes == 0 {
		l.MaxDataBytes = d.MaxDataBytes
	}
	return l
}
