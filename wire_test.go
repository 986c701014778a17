package mxe

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReader_OffsetTracking(t *testing.T) {
	r := &reader{r: bytes.NewReader([]byte{
		0x40, 0x59, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // float64 100.0
		0xFF, 0xFF, 0xD8, 0xF1, // int32 -9999
	})}

	f, err := r.float64BE("origin x")
	if err != nil {
		t.Fatal(err)
	}
	if f != 100.0 {
		t.Fatalf("got %v want 100.0", f)
	}
	if r.off != 8 {
		t.Fatalf("offset after float64: %d", r.off)
	}

	n, err := r.int32BE("no-data value")
	if err != nil {
		t.Fatal(err)
	}
	if n != -9999 {
		t.Fatalf("got %d want -9999", n)
	}
	if r.off != 12 {
		t.Fatalf("offset after int32: %d", r.off)
	}

	_, err = r.int32BE("data-type tag")
	if !errors.Is(err, ErrTruncatedStream) {
		t.Fatalf("expected ErrTruncatedStream, got %v", err)
	}
	if !strings.Contains(err.Error(), "data-type tag") || !strings.Contains(err.Error(), "offset 12") {
		t.Fatalf("error should carry field and offset: %v", err)
	}
}

func TestDataType_String(t *testing.T) {
	cases := map[DataType]string{
		TypeFloat:    "float",
		TypeByte:     "byte",
		TypeInt:      "int",
		TypeUnknown:  "unknown",
		DataType(99): "unknown",
	}
	for dt, want := range cases {
		if got := dt.String(); got != want {
			t.Fatalf("%d: got %q want %q", dt, got, want)
		}
	}
}

func TestDataType_ElementSize(t *testing.T) {
	cases := map[DataType]int{
		TypeFloat:    4,
		TypeByte:     1,
		TypeInt:      4,
		TypeUnknown:  0,
		DataType(99): 0,
	}
	for dt, want := range cases {
		if got := dt.elementSize(); got != want {
			t.Fatalf("%v: got %d want %d", dt, got, want)
		}
	}
}

func TestHeader_DataType(t *testing.T) {
	for tag, want := range map[int32]DataType{
		1:  TypeFloat,
		2:  TypeByte,
		3:  TypeInt,
		0:  TypeUnknown,
		4:  TypeUnknown,
		-3: TypeUnknown,
	} {
		h := Header{TypeTag: tag}
		if got := h.DataType(); got != want {
			t.Fatalf("tag %d: got %v want %v", tag, got, want)
		}
	}
}
